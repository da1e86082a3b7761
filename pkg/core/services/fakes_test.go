package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// fakeStore is an in-memory db.Store with the same observable semantics as
// the postgres implementation: conditional dose decrement, appt_id-null slot
// claiming, and all-or-nothing reserve/cancel.
type fakeStore struct {
	patients   map[string]db.Patient
	caregivers map[string]db.Caregiver
	vaccines   map[string]int
	slots      map[slotKey]*slotState
	appts      map[int64]db.Appointment
	nextID     int64

	// forced failures
	reserveErr error
	cancelErr  error
}

type slotKey struct {
	caregiver string
	date      string
}

type slotState struct {
	apptID  *int64
	vaccine string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		patients:   make(map[string]db.Patient),
		caregivers: make(map[string]db.Caregiver),
		vaccines:   make(map[string]int),
		slots:      make(map[slotKey]*slotState),
		appts:      make(map[int64]db.Appointment),
		nextID:     10_000_001,
	}
}

func key(caregiver string, date time.Time) slotKey {
	return slotKey{caregiver: caregiver, date: date.Format("2006-01-02")}
}

func (f *fakeStore) InsertPatient(_ context.Context, p db.Patient) error {
	if _, ok := f.patients[p.Username]; ok {
		return fmt.Errorf("patient %q: %w", p.Username, db.ErrDuplicate)
	}
	f.patients[p.Username] = p
	return nil
}

func (f *fakeStore) GetPatient(_ context.Context, username string) (db.Patient, error) {
	p, ok := f.patients[username]
	if !ok {
		return db.Patient{}, fmt.Errorf("patient %q: %w", username, db.ErrNotFound)
	}
	return p, nil
}

func (f *fakeStore) InsertCaregiver(_ context.Context, c db.Caregiver) error {
	if _, ok := f.caregivers[c.Username]; ok {
		return fmt.Errorf("caregiver %q: %w", c.Username, db.ErrDuplicate)
	}
	f.caregivers[c.Username] = c
	return nil
}

func (f *fakeStore) GetCaregiver(_ context.Context, username string) (db.Caregiver, error) {
	c, ok := f.caregivers[username]
	if !ok {
		return db.Caregiver{}, fmt.Errorf("caregiver %q: %w", username, db.ErrNotFound)
	}
	return c, nil
}

func (f *fakeStore) TotalDoses(_ context.Context) (int, error) {
	total := 0
	for _, doses := range f.vaccines {
		total += doses
	}
	return total, nil
}

func (f *fakeStore) ListVaccines(_ context.Context) ([]db.Vaccine, error) {
	var vaccines []db.Vaccine
	for name, doses := range f.vaccines {
		vaccines = append(vaccines, db.Vaccine{Name: name, Doses: doses})
	}
	sort.Slice(vaccines, func(i, j int) bool {
		return vaccines[i].Doses < vaccines[j].Doses
	})
	return vaccines, nil
}

func (f *fakeStore) GetVaccine(_ context.Context, name string) (db.Vaccine, error) {
	doses, ok := f.vaccines[name]
	if !ok {
		return db.Vaccine{}, fmt.Errorf("vaccine %q: %w", name, db.ErrNotFound)
	}
	return db.Vaccine{Name: name, Doses: doses}, nil
}

func (f *fakeStore) AddDoses(_ context.Context, name string, doses int) error {
	f.vaccines[name] += doses
	return nil
}

func (f *fakeStore) InsertAvailability(_ context.Context, caregiver string, date time.Time) error {
	k := key(caregiver, date)
	if _, ok := f.slots[k]; ok {
		return fmt.Errorf("availability: %w", db.ErrDuplicate)
	}
	f.slots[k] = &slotState{}
	return nil
}

func (f *fakeStore) OpenCaregiversOn(_ context.Context, date time.Time) ([]string, error) {
	var caregivers []string
	for k, s := range f.slots {
		if k.date == date.Format("2006-01-02") && s.apptID == nil {
			caregivers = append(caregivers, k.caregiver)
		}
	}
	sort.Strings(caregivers)
	return caregivers, nil
}

func (f *fakeStore) Reserve(_ context.Context, patient string, date time.Time, vaccine string) (db.Appointment, error) {
	if f.reserveErr != nil {
		return db.Appointment{}, f.reserveErr
	}

	for _, a := range f.appts {
		if a.PatientUsername == patient {
			return db.Appointment{}, db.ErrPatientBooked
		}
	}

	var caregivers []string
	for k, s := range f.slots {
		if k.date == date.Format("2006-01-02") && s.apptID == nil {
			caregivers = append(caregivers, k.caregiver)
		}
	}
	if len(caregivers) == 0 {
		return db.Appointment{}, db.ErrNoOpenSlots
	}
	sort.Strings(caregivers)
	caregiver := caregivers[0]

	if f.vaccines[vaccine] <= 0 {
		return db.Appointment{}, db.ErrNoDoses
	}

	appt := db.Appointment{
		ID:                f.nextID,
		PatientUsername:   patient,
		CaregiverUsername: caregiver,
		Date:              date,
		VaccineName:       vaccine,
	}
	f.nextID++

	slot := f.slots[key(caregiver, date)]
	slot.apptID = &appt.ID
	slot.vaccine = vaccine
	f.vaccines[vaccine]--
	f.appts[appt.ID] = appt
	return appt, nil
}

func (f *fakeStore) Cancel(_ context.Context, appt db.Appointment, byCaregiver bool) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	if _, ok := f.appts[appt.ID]; !ok {
		return fmt.Errorf("appointment %d: %w", appt.ID, db.ErrNotFound)
	}

	k := key(appt.CaregiverUsername, appt.Date)
	if byCaregiver {
		delete(f.slots, k)
	} else if slot, ok := f.slots[k]; ok {
		slot.apptID = nil
		slot.vaccine = ""
	}

	delete(f.appts, appt.ID)
	f.vaccines[appt.VaccineName]++
	return nil
}

func (f *fakeStore) GetAppointment(_ context.Context, id int64) (db.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return db.Appointment{}, fmt.Errorf("appointment %d: %w", id, db.ErrNotFound)
	}
	return a, nil
}

func (f *fakeStore) PatientAppointments(_ context.Context, username string) ([]db.Appointment, error) {
	return f.listAppts(func(a db.Appointment) bool { return a.PatientUsername == username }), nil
}

func (f *fakeStore) CaregiverAppointments(_ context.Context, username string) ([]db.Appointment, error) {
	return f.listAppts(func(a db.Appointment) bool { return a.CaregiverUsername == username }), nil
}

func (f *fakeStore) listAppts(match func(db.Appointment) bool) []db.Appointment {
	var appts []db.Appointment
	for _, a := range f.appts {
		if match(a) {
			appts = append(appts, a)
		}
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].ID < appts[j].ID })
	return appts
}

// hasOpenSlot reports whether the caregiver's slot on date exists and is
// unclaimed.
func (f *fakeStore) hasOpenSlot(caregiver string, date time.Time) bool {
	s, ok := f.slots[key(caregiver, date)]
	return ok && s.apptID == nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
