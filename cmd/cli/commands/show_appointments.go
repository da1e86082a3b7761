package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/services"
	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// ShowAppointmentsCmd creates the show_appointments command
func ShowAppointmentsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show_appointments",
		Short: "List your scheduled appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := services.ShowAppointments(app.Ctx, app.Store, app.Logger, app.Session)
			switch {
			case err == nil:
			case errors.Is(err, services.ErrNotLoggedIn):
				fmt.Println("Please login first!")
				return nil
			case errors.Is(err, db.ErrStoreUnavailable):
				return err
			default:
				fmt.Println("Please try again!")
				return nil
			}

			if len(appts) == 0 {
				fmt.Println("There are no appointments scheduled.")
				return nil
			}

			// Patients see the caregiver on each line, caregivers see the patient
			for _, a := range appts {
				other := a.CaregiverUsername
				if app.Session.Role() == session.RoleCaregiver {
					other = a.PatientUsername
				}
				fmt.Printf("%d %s %s %s\n", a.ID, a.VaccineName, formatDate(a.Date), other)
			}
			return nil
		},
	}
}
