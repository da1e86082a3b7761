package db

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	apptIDMin   = 10_000_000
	apptIDRange = 90_000_000
)

// NewAppointmentID returns a random 8-digit appointment id. Ids are not
// guaranteed unique on their own; the store retries insertion with a fresh
// id on a primary-key conflict.
func NewAppointmentID() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(apptIDRange))
	if err != nil {
		return 0, fmt.Errorf("failed to generate appointment id: %w", err)
	}
	return apptIDMin + n.Int64(), nil
}
