package cli

import (
	"github.com/antenmanuuel/pulse-rx-sub001/internal/derive"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/mutate"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/spf13/cobra"
)

func newDeliveriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliveries",
		Short: "Delivery commands",
	}
	cmd.AddCommand(newDeliveriesListCmd(app))
	cmd.AddCommand(newDeliveriesAssignCmd(app))
	cmd.AddCommand(newDeliveriesSetStatusCmd(app))
	cmd.AddCommand(newDeliveriesEtaCmd(app))
	return cmd
}

func newDeliveriesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deliveries",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			return writeOut(cmd, app, map[string]any{"data": db.Deliveries})
		},
	}
	return cmd
}

func newDeliveriesAssignCmd(app *App) *cobra.Command {
	var driverID string

	cmd := &cobra.Command{
		Use:   "assign <delivery-id>",
		Short: "Assign a driver (demo: state resets next invocation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			res, err := mutate.AssignDriver(db, args[0], driverID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res.Delivery, "changed": res.Changed})
		},
	}

	cmd.Flags().StringVar(&driverID, "driver", "", "Driver id")
	_ = cmd.MarkFlagRequired("driver")
	return cmd
}

func newDeliveriesSetStatusCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "set-status <delivery-id>",
		Short: "Set a delivery's status (demo: state resets next invocation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			res, err := mutate.SetDeliveryStatus(db, args[0], model.DeliveryStatus(status))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res.Delivery, "changed": res.Changed})
		},
	}

	cmd.Flags().StringVar(&status, "status", "",
		"Status (Scheduled|Preparing|Out for Delivery|Delivered|Failed Delivery|Returned)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newDeliveriesEtaCmd(app *App) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "eta",
		Short: "Estimated delivery date for a priority (calendar days from today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := appToday(app)
			est := derive.EstimatedDeliveryDate(today, normalizePriority(priority))
			return writeOut(cmd, app, map[string]any{"data": map[string]string{
				"today":     today.Format("2006-01-02"),
				"priority":  string(normalizePriority(priority)),
				"estimated": est.Format("2006-01-02"),
			}})
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "Normal", "Priority (Urgent|High|Normal|Low)")
	return cmd
}
