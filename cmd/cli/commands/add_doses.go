package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/services"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// AddDosesCmd creates the add_doses command
func AddDosesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:         "add_doses <vaccine> <number>",
		Short:       "Add doses of a vaccine to the inventory",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"usage": "Please try again!"},
		RunE: func(cmd *cobra.Command, args []string) error {
			vaccineName := args[0]
			doses, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Error occurred when adding doses")
				return nil
			}

			err = services.AddDoses(app.Ctx, app.Store, app.Logger, app.Session, vaccineName, doses)
			switch {
			case err == nil:
				fmt.Println("Doses updated!")
			case errors.Is(err, services.ErrWrongRole):
				fmt.Println("Please login as a caregiver first!")
			case errors.Is(err, db.ErrStoreUnavailable):
				return err
			default:
				fmt.Println("Error occurred when adding doses")
			}
			return nil
		},
	}
}
