package db

import "time"

// Patient is a registered patient account. Salt and Hash hold the PBKDF2
// credential material; the current appointment, if any, lives in the
// appointments table keyed by username.
type Patient struct {
	Username string
	Salt     []byte
	Hash     []byte
}

// Caregiver is a registered caregiver account. Caregiver and patient
// usernames occupy disjoint namespaces.
type Caregiver struct {
	Username string
	Salt     []byte
	Hash     []byte
}

// Vaccine is a named vaccine type with its remaining dose count.
// Doses never goes negative.
type Vaccine struct {
	Name  string
	Doses int
}

// AvailabilitySlot is one caregiver's offered capacity for one calendar date.
// AppointmentID and VaccineName are nil while the slot is open.
type AvailabilitySlot struct {
	CaregiverUsername string
	Date              time.Time
	AppointmentID     *int64
	VaccineName       *string
}

// Appointment binds a patient to a claimed availability slot and a vaccine.
type Appointment struct {
	ID                int64
	PatientUsername   string
	CaregiverUsername string
	Date              time.Time
	VaccineName       string
}
