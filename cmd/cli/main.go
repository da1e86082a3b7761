package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/vaccine-scheduler/cmd/cli/commands"
	"github.com/jakechorley/vaccine-scheduler/internal/config"
	"github.com/jakechorley/vaccine-scheduler/pkg/core/session"
	"github.com/jakechorley/vaccine-scheduler/pkg/postgres"
	"github.com/jakechorley/vaccine-scheduler/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
	db  *postgres.DB
)

func main() {
	// A local .env may provide DATABASE_URL
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "vaccine-scheduler",
		Short: "COVID-19 vaccine appointment scheduler",
		Long:  `A CLI for scheduling COVID-19 vaccine appointments: patients and caregivers register, browse availability, reserve and cancel appointments, and manage dose inventory.`,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if db != nil {
				db.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment (dev, test, prod, etc.)")

	app = &commands.AppContext{}

	interactive := commands.InteractiveCmd(app)

	// Add all commands
	rootCmd.AddCommand(commands.CreatePatientCmd(app))
	rootCmd.AddCommand(commands.CreateCaregiverCmd(app))
	rootCmd.AddCommand(commands.LoginPatientCmd(app))
	rootCmd.AddCommand(commands.LoginCaregiverCmd(app))
	rootCmd.AddCommand(commands.SearchScheduleCmd(app))
	rootCmd.AddCommand(commands.ReserveCmd(app))
	rootCmd.AddCommand(commands.UploadAvailabilityCmd(app))
	rootCmd.AddCommand(commands.CancelCmd(app))
	rootCmd.AddCommand(commands.AddDosesCmd(app))
	rootCmd.AddCommand(commands.ShowAppointmentsCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(interactive)

	// Running the binary with no subcommand starts an interactive session
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Println()
		fmt.Println("Welcome to the COVID-19 Vaccine Reservation Scheduling Application!")
		return interactive.RunE(interactive, nil)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database, and session
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = app.Logger.With(zap.String("session_id", uuid.NewString()))

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	db, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database initialized successfully")

	app.Store = db
	app.Session = session.New()

	return nil
}
