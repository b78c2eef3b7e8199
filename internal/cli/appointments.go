package cli

import (
	"github.com/antenmanuuel/pulse-rx-sub001/internal/mutate"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/spf13/cobra"
)

func newAppointmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Appointment commands",
	}
	cmd.AddCommand(newAppointmentsListCmd(app))
	cmd.AddCommand(newAppointmentsCheckinCmd(app))
	cmd.AddCommand(newAppointmentsRescheduleCmd(app))
	return cmd
}

func newAppointmentsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			return writeOut(cmd, app, map[string]any{"data": db.Appointments})
		},
	}
	return cmd
}

func newAppointmentsCheckinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin <appointment-id>",
		Short: "Check a patient in (demo: state resets next invocation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			res, err := mutate.CheckIn(db, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res.Appointment, "changed": res.Changed})
		},
	}
	return cmd
}

func newAppointmentsRescheduleCmd(app *App) *cobra.Command {
	var (
		date      string
		timeOfDay string
	)

	cmd := &cobra.Command{
		Use:   "reschedule <appointment-id>",
		Short: "Reschedule an appointment (demo: state resets next invocation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			res, err := mutate.Reschedule(db, args[0], date, timeOfDay)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res.Appointment, "changed": res.Changed})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "New time (HH:MM)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}
