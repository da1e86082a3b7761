package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/services"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// ReserveCmd creates the reserve command
func ReserveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:         "reserve <MM-DD-YYYY> <vaccine>",
		Short:       "Reserve an appointment with the first open caregiver on a date",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"usage": "Invalid input.\nMust enter 'reserve <date> <vaccine name>'"},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				fmt.Println("Please enter a valid date!")
				return nil
			}
			vaccineName := args[1]

			appt, err := services.Reserve(app.Ctx, app.Store, app.Logger, app.Session, date, vaccineName)
			switch {
			case err == nil:
				fmt.Printf("Appointment ID: %d, Caregiver username: %s\n", appt.ID, appt.CaregiverUsername)
			case errors.Is(err, services.ErrWrongRole):
				fmt.Println("You must be a patient to reserve an appointment.")
			case errors.Is(err, services.ErrNotLoggedIn):
				fmt.Println("Please login to reserve an appointment")
			case errors.Is(err, services.ErrUnknownVaccine):
				fmt.Println("Invalid vaccine name, try again.")
			case errors.Is(err, services.ErrNoDoses):
				fmt.Printf("There are no %s vaccines available at this time. Try again later or select a different vaccine.\n", vaccineName)
			case errors.Is(err, services.ErrAlreadyBooked):
				fmt.Println("You already have an appointment.\nTo show existing appointments: show_appointments\nTo cancel an appointment: cancel <appointmentID>")
			case errors.Is(err, services.ErrNoOpenSlots):
				fmt.Printf("There are no appointments available on %s\nTry another date.\n", formatDate(date))
			case errors.Is(err, db.ErrStoreUnavailable):
				return err
			default:
				fmt.Println("An error occurred. No reservation was made.")
			}
			return nil
		},
	}
}
