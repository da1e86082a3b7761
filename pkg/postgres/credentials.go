package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// InsertPatient persists a new patient credential record.
// Returns db.ErrDuplicate if the username is already taken.
func (d *DB) InsertPatient(ctx context.Context, patient db.Patient) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO patients (username, salt, hash)
		VALUES ($1, $2, $3)
	`, patient.Username, patient.Salt, patient.Hash)
	if isUniqueViolation(err, "") {
		return fmt.Errorf("patient %q: %w", patient.Username, db.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}
	return nil
}

// GetPatient retrieves a patient credential record by username.
func (d *DB) GetPatient(ctx context.Context, username string) (db.Patient, error) {
	var p db.Patient
	err := d.pool.QueryRow(ctx, `
		SELECT username, salt, hash FROM patients WHERE username = $1
	`, username).Scan(&p.Username, &p.Salt, &p.Hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Patient{}, fmt.Errorf("patient %q: %w", username, db.ErrNotFound)
	}
	if err != nil {
		return db.Patient{}, fmt.Errorf("failed to query patient: %w", err)
	}
	return p, nil
}

// InsertCaregiver persists a new caregiver credential record.
// Returns db.ErrDuplicate if the username is already taken.
func (d *DB) InsertCaregiver(ctx context.Context, caregiver db.Caregiver) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO caregivers (username, salt, hash)
		VALUES ($1, $2, $3)
	`, caregiver.Username, caregiver.Salt, caregiver.Hash)
	if isUniqueViolation(err, "") {
		return fmt.Errorf("caregiver %q: %w", caregiver.Username, db.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert caregiver: %w", err)
	}
	return nil
}

// GetCaregiver retrieves a caregiver credential record by username.
func (d *DB) GetCaregiver(ctx context.Context, username string) (db.Caregiver, error) {
	var c db.Caregiver
	err := d.pool.QueryRow(ctx, `
		SELECT username, salt, hash FROM caregivers WHERE username = $1
	`, username).Scan(&c.Username, &c.Salt, &c.Hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Caregiver{}, fmt.Errorf("caregiver %q: %w", username, db.ErrNotFound)
	}
	if err != nil {
		return db.Caregiver{}, fmt.Errorf("failed to query caregiver: %w", err)
	}
	return c, nil
}
