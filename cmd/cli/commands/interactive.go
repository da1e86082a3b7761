package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jakechorley/vaccine-scheduler/pkg/db"
)

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive scheduling session",
		Long: `Start an interactive session where you can run multiple commands against
one login session. The session keeps running until you type 'quit'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get all sibling commands (excluding interactive itself)
			rootCmd := cmd.Parent()
			commands := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					commands[subCmd.Name()] = subCmd
				}
			}

			printMenu()

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				// Command names are case-insensitive; arguments are not
				parts := strings.Fields(line)
				cmdName := strings.ToLower(parts[0])
				cmdArgs := parts[1:]

				if cmdName == "quit" {
					fmt.Println("Bye!")
					return nil
				}

				if cmdName == "help" {
					printMenu()
					continue
				}

				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Println("Invalid operation name!")
					continue
				}

				// Reset command flags and args
				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Execute the command's RunE directly, bypassing the full Execute() flow
				// This avoids re-running PersistentPreRunE which would call initApp() again
				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					printUsage(targetCmd)
					continue
				}

				// Get non-flag args after parsing flags
				cmdArgs = targetCmd.Flags().Args()

				// A wrong token count gets the command's own usage message, not a crash
				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					printUsage(targetCmd)
					continue
				}

				if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
					if errors.Is(err, db.ErrStoreUnavailable) {
						return err
					}
					fmt.Println("Please try again!")
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func printMenu() {
	fmt.Println()
	fmt.Println(" *** Please enter one of the following commands *** ")
	fmt.Println("> create_patient <username> <password>")
	fmt.Println("> create_caregiver <username> <password>")
	fmt.Println("> login_patient <username> <password>")
	fmt.Println("> login_caregiver <username> <password>")
	fmt.Println("> search_caregiver_schedule <date>")
	fmt.Println("> reserve <date> <vaccine>")
	fmt.Println("> upload_availability <date>")
	fmt.Println("> cancel <appointment_id>")
	fmt.Println("> add_doses <vaccine> <number>")
	fmt.Println("> show_appointments")
	fmt.Println("> logout")
	fmt.Println("> Quit")
	fmt.Println()
}

func printUsage(cmd *cobra.Command) {
	if usage, ok := cmd.Annotations["usage"]; ok {
		fmt.Println(usage)
		return
	}
	fmt.Println("Please try again!")
}
