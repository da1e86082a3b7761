package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/services"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// CreatePatientCmd creates the create_patient command
func CreatePatientCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:         "create_patient <username> <password>",
		Short:       "Register a new patient account",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"usage": "Failed to create user."},
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password := args[0], args[1]

			err := services.RegisterPatient(app.Ctx, app.Store, app.Logger, username, password)
			switch {
			case err == nil:
				fmt.Println("Created user", username)
			case errors.Is(err, services.ErrUsernameTaken):
				fmt.Println("Username taken, try again!")
			case errors.Is(err, db.ErrStoreUnavailable):
				return err
			default:
				fmt.Println("Failed to create user.")
			}
			return nil
		},
	}
}
