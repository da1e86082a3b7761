package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/services"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// UploadAvailabilityCmd creates the upload_availability command
func UploadAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:         "upload_availability <MM-DD-YYYY>",
		Short:       "Open a new appointment slot on a date",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"usage": "Please try again!"},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				fmt.Println("Please enter a valid date!")
				return nil
			}

			err = services.UploadAvailability(app.Ctx, app.Store, app.Logger, app.Session, date)
			switch {
			case err == nil:
				fmt.Println("Availability uploaded!")
			case errors.Is(err, services.ErrWrongRole):
				fmt.Println("Please login as a caregiver first!")
			case errors.Is(err, services.ErrDuplicateAvailability):
				fmt.Println("Availability already uploaded for this date!")
			case errors.Is(err, db.ErrStoreUnavailable):
				return err
			default:
				fmt.Println("Error occurred when uploading availability")
			}
			return nil
		},
	}
}
