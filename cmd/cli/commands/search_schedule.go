package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/services"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// SearchScheduleCmd creates the search_caregiver_schedule command
func SearchScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:         "search_caregiver_schedule <MM-DD-YYYY>",
		Short:       "List caregivers with open slots on a date, plus vaccine inventory",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"usage": "Please provide a date (MM-DD-YYYY) to search for availability."},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				fmt.Println("Please enter the date in the form MM-DD-YYYY")
				return nil
			}

			result, err := services.SearchSchedule(app.Ctx, app.Store, app.Logger, app.Session, date)
			switch {
			case err == nil:
			case errors.Is(err, services.ErrNotLoggedIn):
				fmt.Println("Please login first!")
				return nil
			case errors.Is(err, services.ErrNoDoses):
				fmt.Println("There are no vaccines available at this time. Try again later.")
				return nil
			case errors.Is(err, services.ErrNoOpenSlots):
				fmt.Printf("There are no appointments available on %s\nTry another date.\n", formatDate(date))
				return nil
			case errors.Is(err, db.ErrStoreUnavailable):
				return err
			default:
				fmt.Println("Please try again!")
				return nil
			}

			fmt.Println("PROVIDERS:")
			for _, caregiver := range result.Caregivers {
				fmt.Println(caregiver)
			}
			fmt.Println("\nVACCINE AVAILABILITY:")
			for _, v := range result.Vaccines {
				fmt.Printf("%s %d\n", v.Name, v.Doses)
			}
			return nil
		},
	}
}
