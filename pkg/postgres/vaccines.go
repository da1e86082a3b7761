package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// TotalDoses returns the sum of doses across all vaccine types.
func (d *DB) TotalDoses(ctx context.Context) (int, error) {
	var total int
	err := d.pool.QueryRow(ctx, `SELECT COALESCE(SUM(doses), 0) FROM vaccines`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum doses: %w", err)
	}
	return total, nil
}

// ListVaccines returns all vaccine types ordered by ascending dose count.
func (d *DB) ListVaccines(ctx context.Context) ([]db.Vaccine, error) {
	rows, err := d.pool.Query(ctx, `SELECT name, doses FROM vaccines ORDER BY doses`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vaccines: %w", err)
	}
	defer rows.Close()

	var vaccines []db.Vaccine
	for rows.Next() {
		var v db.Vaccine
		if err := rows.Scan(&v.Name, &v.Doses); err != nil {
			return nil, fmt.Errorf("failed to scan vaccine: %w", err)
		}
		vaccines = append(vaccines, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vaccines: %w", err)
	}
	return vaccines, nil
}

// GetVaccine retrieves a vaccine type by name.
func (d *DB) GetVaccine(ctx context.Context, name string) (db.Vaccine, error) {
	var v db.Vaccine
	err := d.pool.QueryRow(ctx, `SELECT name, doses FROM vaccines WHERE name = $1`, name).
		Scan(&v.Name, &v.Doses)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Vaccine{}, fmt.Errorf("vaccine %q: %w", name, db.ErrNotFound)
	}
	if err != nil {
		return db.Vaccine{}, fmt.Errorf("failed to query vaccine: %w", err)
	}
	return v, nil
}

// AddDoses creates the vaccine type if absent, otherwise adds to its
// existing count.
func (d *DB) AddDoses(ctx context.Context, name string, doses int) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO vaccines (name, doses)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET doses = vaccines.doses + EXCLUDED.doses
	`, name, doses)
	if err != nil {
		return fmt.Errorf("failed to add doses: %w", err)
	}
	return nil
}
