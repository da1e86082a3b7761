package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccine-scheduler/pkg/core/services"
	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// LoginPatientCmd creates the login_patient command
func LoginPatientCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:         "login_patient <username> <password>",
		Short:       "Log in as a patient",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"usage": "Login failed."},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(app, args[0], func(username, password string) error {
				return services.LoginPatient(app.Ctx, app.Store, app.Logger, app.Session, username, password)
			}, args[1])
		},
	}
}

// LoginCaregiverCmd creates the login_caregiver command
func LoginCaregiverCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:         "login_caregiver <username> <password>",
		Short:       "Log in as a caregiver",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"usage": "Login failed."},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(app, args[0], func(username, password string) error {
				return services.LoginCaregiver(app.Ctx, app.Store, app.Logger, app.Session, username, password)
			}, args[1])
		},
	}
}

func runLogin(app *AppContext, username string, login func(username, password string) error, password string) error {
	err := login(username, password)
	switch {
	case err == nil:
		fmt.Println("Logged in as: " + username)
	case errors.Is(err, services.ErrAlreadyLoggedIn):
		fmt.Println("User already logged in.")
	case errors.Is(err, db.ErrStoreUnavailable):
		return err
	default:
		fmt.Println("Login failed.")
	}
	return nil
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.Logout(app.Logger, app.Session); err != nil {
				fmt.Println("Please login first.")
				return nil
			}
			fmt.Println("Successfully logged out!")
			return nil
		},
	}
}
