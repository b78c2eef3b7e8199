package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/format"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	// Today pins "today" for derived dates (YYYY-MM-DD); empty means the wall
	// clock. Useful for scripting and fixtures.
	Today string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "pulserx",
		Short:        "PulseRx pharmacy operations console (TUI + scriptable commands)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive console
  pulserx

  # Scriptable commands (session state always starts from the seed data)
  pulserx prescriptions list
  pulserx inventory status
  pulserx deliveries eta --priority Urgent
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(store.Seed())
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Today, "today", envOr("PULSERX_TODAY", ""), "Override today's date (YYYY-MM-DD) for derived dates")

	cmd.AddCommand(newPrescriptionsCmd(app))
	cmd.AddCommand(newInventoryCmd(app))
	cmd.AddCommand(newDeliveriesCmd(app))
	cmd.AddCommand(newAppointmentsCmd(app))
	cmd.AddCommand(newOrdersCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newMessagesCmd(app))

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
