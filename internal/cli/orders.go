package cli

import (
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/spf13/cobra"
)

func newOrdersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Purchase order commands",
	}
	cmd.AddCommand(newOrdersListCmd(app))
	cmd.AddCommand(newOrdersShowCmd(app))
	return cmd
}

func newOrdersListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List purchase orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			return writeOut(cmd, app, map[string]any{"data": db.Orders})
		},
	}
	return cmd
}

func newOrdersShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one purchase order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			po, ok := db.FindOrder(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("order", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": po})
		},
	}
	return cmd
}
