package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// ScheduleStore defines the database operations needed for schedule search
type ScheduleStore interface {
	TotalDoses(ctx context.Context) (int, error)
	OpenCaregiversOn(ctx context.Context, date time.Time) ([]string, error)
	ListVaccines(ctx context.Context) ([]db.Vaccine, error)
}

// ScheduleResult holds the open caregivers for a date and the current
// vaccine inventory, both in display order.
type ScheduleResult struct {
	Caregivers []string
	Vaccines   []db.Vaccine
}

// SearchSchedule lists caregivers with open slots on a date together with
// the vaccine inventory. Any logged-in principal may search. A fully empty
// inventory short-circuits with ErrNoDoses before touching the calendar.
func SearchSchedule(ctx context.Context, store ScheduleStore, logger *zap.Logger, sess *session.Session, date time.Time) (*ScheduleResult, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	total, err := store.TotalDoses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory: %w", err)
	}
	if total == 0 {
		return nil, ErrNoDoses
	}

	caregivers, err := store.OpenCaregiversOn(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to search schedule: %w", err)
	}
	if len(caregivers) == 0 {
		return nil, ErrNoOpenSlots
	}

	vaccines, err := store.ListVaccines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaccines: %w", err)
	}

	logger.Debug("Schedule searched",
		zap.Time("date", date),
		zap.Int("open_slots", len(caregivers)))

	return &ScheduleResult{Caregivers: caregivers, Vaccines: vaccines}, nil
}

// UploadStore defines the database operations needed for availability upload
type UploadStore interface {
	InsertAvailability(ctx context.Context, caregiverUsername string, date time.Time) error
}

// UploadAvailability opens a new slot for the logged-in caregiver on a date.
// Re-uploading the same date is rejected with ErrDuplicateAvailability.
func UploadAvailability(ctx context.Context, store UploadStore, logger *zap.Logger, sess *session.Session, date time.Time) error {
	if sess.Role() != session.RoleCaregiver {
		return ErrWrongRole
	}

	err := store.InsertAvailability(ctx, sess.Username(), date)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateAvailability
		}
		return fmt.Errorf("failed to upload availability: %w", err)
	}

	logger.Info("Availability uploaded",
		zap.String("caregiver", sess.Username()),
		zap.Time("date", date))
	return nil
}
