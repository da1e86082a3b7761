package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// InsertAvailability creates a new open slot for a caregiver/date pair.
// Returns db.ErrDuplicate if the caregiver already uploaded that date.
func (d *DB) InsertAvailability(ctx context.Context, caregiverUsername string, date time.Time) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO availabilities (username, time)
		VALUES ($1, $2)
	`, caregiverUsername, date)
	if isUniqueViolation(err, "") {
		return fmt.Errorf("availability for %q on %s: %w",
			caregiverUsername, date.Format("2006-01-02"), db.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert availability: %w", err)
	}
	return nil
}

// OpenCaregiversOn returns the usernames of caregivers with an open slot on
// the given date, in lexicographic order.
func (d *DB) OpenCaregiversOn(ctx context.Context, date time.Time) ([]string, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT username FROM availabilities
		WHERE time = $1 AND appt_id IS NULL
		ORDER BY username
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query open availabilities: %w", err)
	}
	defer rows.Close()

	var caregivers []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		caregivers = append(caregivers, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availabilities: %w", err)
	}
	return caregivers, nil
}
