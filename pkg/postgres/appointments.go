package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// Appointment ids are random, so a fresh insert can collide with an existing
// row. A handful of retries makes the chance of overall failure negligible.
const maxIDAttempts = 5

// Reserve claims the earliest open slot on date for the patient, binds an
// appointment to it, and decrements the vaccine's dose count, all in a
// single transaction. Either every write is durable or none is.
//
// Race outcomes map to sentinel errors: db.ErrNoOpenSlots when no slot is
// left on the date, db.ErrNoDoses when the last dose went to a concurrent
// reservation, db.ErrPatientBooked when the patient already holds an
// appointment.
func (d *DB) Reserve(ctx context.Context, patientUsername string, date time.Time, vaccineName string) (db.Appointment, error) {
	tx, err := d.begin(ctx)
	if err != nil {
		return db.Appointment{}, err
	}
	defer tx.Rollback(ctx)

	// Earliest open slot = lexicographically-first caregiver username.
	// FOR UPDATE holds the row against concurrent claimants.
	var caregiverUsername string
	err = tx.QueryRow(ctx, `
		SELECT username FROM availabilities
		WHERE time = $1 AND appt_id IS NULL
		ORDER BY username
		LIMIT 1
		FOR UPDATE
	`, date).Scan(&caregiverUsername)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Appointment{}, fmt.Errorf("no open slot on %s: %w", date.Format("2006-01-02"), db.ErrNoOpenSlots)
	}
	if err != nil {
		return db.Appointment{}, fmt.Errorf("failed to find open slot: %w", err)
	}

	appt := db.Appointment{
		PatientUsername:   patientUsername,
		CaregiverUsername: caregiverUsername,
		Date:              date,
		VaccineName:       vaccineName,
	}

	// Insert the appointment, retrying with a fresh id on a pkey conflict.
	for attempt := 0; ; attempt++ {
		appt.ID, err = db.NewAppointmentID()
		if err != nil {
			return db.Appointment{}, err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO appointments (id, patient_username, caregiver_username, time, vaccine_name)
			VALUES ($1, $2, $3, $4, $5)
		`, appt.ID, appt.PatientUsername, appt.CaregiverUsername, appt.Date, appt.VaccineName)
		if err == nil {
			break
		}
		if isUniqueViolation(err, "appointments_patient_username_key") {
			return db.Appointment{}, fmt.Errorf("patient %q: %w", patientUsername, db.ErrPatientBooked)
		}
		if isUniqueViolation(err, "appointments_pkey") && attempt < maxIDAttempts-1 {
			continue
		}
		return db.Appointment{}, fmt.Errorf("failed to insert appointment: %w", err)
	}

	// Claim the slot. The appt_id IS NULL guard keeps a second transaction
	// from claiming the same slot.
	tag, err := tx.Exec(ctx, `
		UPDATE availabilities SET appt_id = $1, vaccine_name = $2
		WHERE username = $3 AND time = $4 AND appt_id IS NULL
	`, appt.ID, appt.VaccineName, appt.CaregiverUsername, appt.Date)
	if err != nil {
		return db.Appointment{}, fmt.Errorf("failed to claim slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.Appointment{}, fmt.Errorf("slot for %q on %s was claimed concurrently: %w",
			appt.CaregiverUsername, date.Format("2006-01-02"), db.ErrNoOpenSlots)
	}

	// Conditional decrement: the doses > 0 guard means the loser of a race
	// for the last dose sees zero rows affected, never a negative count.
	tag, err = tx.Exec(ctx, `
		UPDATE vaccines SET doses = doses - 1
		WHERE name = $1 AND doses > 0
	`, appt.VaccineName)
	if err != nil {
		return db.Appointment{}, fmt.Errorf("failed to decrement doses: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.Appointment{}, fmt.Errorf("vaccine %q: %w", appt.VaccineName, db.ErrNoDoses)
	}

	if err := tx.Commit(ctx); err != nil {
		return db.Appointment{}, fmt.Errorf("failed to commit reservation: %w", err)
	}
	return appt, nil
}

// Cancel removes an appointment and returns its dose to inventory in a
// single transaction. A patient-initiated cancel reopens the slot; a
// caregiver-initiated cancel deletes the slot entirely.
func (d *DB) Cancel(ctx context.Context, appt db.Appointment, byCaregiver bool) error {
	tx, err := d.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Release the slot's claim first so the appointment row can go.
	_, err = tx.Exec(ctx, `
		UPDATE availabilities SET appt_id = NULL, vaccine_name = NULL
		WHERE appt_id = $1
	`, appt.ID)
	if err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, appt.ID)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Cancelled concurrently between lookup and here.
		return fmt.Errorf("appointment %d: %w", appt.ID, db.ErrNotFound)
	}

	if byCaregiver {
		_, err = tx.Exec(ctx, `
			DELETE FROM availabilities WHERE username = $1 AND time = $2
		`, appt.CaregiverUsername, appt.Date)
		if err != nil {
			return fmt.Errorf("failed to delete slot: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE vaccines SET doses = doses + 1 WHERE name = $1
	`, appt.VaccineName)
	if err != nil {
		return fmt.Errorf("failed to restore dose: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}
	return nil
}

// GetAppointment retrieves an appointment by id.
func (d *DB) GetAppointment(ctx context.Context, id int64) (db.Appointment, error) {
	var a db.Appointment
	err := d.pool.QueryRow(ctx, `
		SELECT id, patient_username, caregiver_username, time, vaccine_name
		FROM appointments WHERE id = $1
	`, id).Scan(&a.ID, &a.PatientUsername, &a.CaregiverUsername, &a.Date, &a.VaccineName)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Appointment{}, fmt.Errorf("appointment %d: %w", id, db.ErrNotFound)
	}
	if err != nil {
		return db.Appointment{}, fmt.Errorf("failed to query appointment: %w", err)
	}
	return a, nil
}

// PatientAppointments returns a patient's appointments ordered by id.
func (d *DB) PatientAppointments(ctx context.Context, username string) ([]db.Appointment, error) {
	return d.listAppointments(ctx, `patient_username`, username)
}

// CaregiverAppointments returns the appointments on a caregiver's slots,
// ordered by id.
func (d *DB) CaregiverAppointments(ctx context.Context, username string) ([]db.Appointment, error) {
	return d.listAppointments(ctx, `caregiver_username`, username)
}

func (d *DB) listAppointments(ctx context.Context, column, username string) ([]db.Appointment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, patient_username, caregiver_username, time, vaccine_name
		FROM appointments WHERE `+column+` = $1
		ORDER BY id
	`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appointments []db.Appointment
	for rows.Next() {
		var a db.Appointment
		if err := rows.Scan(&a.ID, &a.PatientUsername, &a.CaregiverUsername, &a.Date, &a.VaccineName); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}
	return appointments, nil
}
