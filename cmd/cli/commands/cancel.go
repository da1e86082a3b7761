package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/services"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

const unknownAppointmentMsg = "There is no appointment with this appointment ID.\n" +
	"Please ensure appointment ID is correct.\n" +
	"To show an existing appointment and ID, use 'show_appointments'"

// CancelCmd creates the cancel command
func CancelCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:         "cancel <appointmentID>",
		Short:       "Cancel an appointment you own",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"usage": "Please enter the appointment ID to cancel your appointment."},
		RunE: func(cmd *cobra.Command, args []string) error {
			appointmentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Println(unknownAppointmentMsg)
				return nil
			}

			err = services.Cancel(app.Ctx, app.Store, app.Logger, app.Session, appointmentID)
			switch {
			case err == nil:
				fmt.Println("Appointment successfully cancelled.")
			case errors.Is(err, services.ErrNotLoggedIn):
				fmt.Println("Please login first.")
			case errors.Is(err, services.ErrAppointmentNotFound):
				fmt.Println(unknownAppointmentMsg)
			case errors.Is(err, db.ErrStoreUnavailable):
				return err
			default:
				fmt.Printf("An error occurred. Appointment %d was not cancelled. Try again.\n", appointmentID)
			}
			return nil
		},
	}
}
