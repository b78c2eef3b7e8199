package cli

import (
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/derive"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/mutate"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/spf13/cobra"
)

func newInventoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory commands",
	}
	cmd.AddCommand(newInventoryListCmd(app))
	cmd.AddCommand(newInventoryStatusCmd(app))
	cmd.AddCommand(newInventoryReorderCmd(app))
	cmd.AddCommand(newInventoryReceiveCmd(app))
	return cmd
}

func newInventoryListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			return writeOut(cmd, app, map[string]any{"data": db.Inventory})
		},
	}
	return cmd
}

type inventoryStatusRow struct {
	NDC          string            `json:"ndc"`
	Name         string            `json:"name"`
	Quantity     int               `json:"quantity"`
	MinStock     int               `json:"minStock"`
	Status       model.StockStatus `json:"status"`
	Color        string            `json:"color"`
	ExpiringSoon bool              `json:"expiringSoon,omitempty"`
}

func newInventoryStatusCmd(app *App) *cobra.Command {
	var lowOnly bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Derived stock status per item",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			var rows []inventoryStatusRow
			for _, it := range db.Inventory {
				st := derive.StockStatus(it.Quantity, it.MinStock)
				if lowOnly && st == model.StockInStock {
					continue
				}
				rows = append(rows, inventoryStatusRow{
					NDC:      it.NDC,
					Name:     it.Name,
					Quantity: it.Quantity,
					MinStock: it.MinStock,
					Status:   st,
					Color:    derive.StatusColor(st),
					// Reported independently of the quantity status; an item can
					// be both low and expiring.
					ExpiringSoon: it.ExpiringSoon,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": rows})
		},
	}

	cmd.Flags().BoolVar(&lowOnly, "low-only", false, "Only items at or below minimum stock")
	return cmd
}

func newInventoryReorderCmd(app *App) *cobra.Command {
	var (
		ndc      string
		quantity string
		priority string
	)

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Create a purchase order for an item (demo: state resets next invocation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			res, err := mutate.Reorder(db, ndc, quantity, normalizePriority(priority), appToday(app))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res.Order})
		},
	}

	cmd.Flags().StringVar(&ndc, "ndc", "", "Item NDC")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Units to order")
	cmd.Flags().StringVar(&priority, "priority", "Normal", "Order priority (Urgent|High|Normal|Low)")
	_ = cmd.MarkFlagRequired("ndc")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

func newInventoryReceiveCmd(app *App) *cobra.Command {
	var (
		ndc      string
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Receive stock for an item (demo: state resets next invocation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			item, err := mutate.ReceiveStock(db, ndc, quantity)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := derive.StockStatus(item.Quantity, item.MinStock)
			return writeOut(cmd, app, map[string]any{"data": item, "status": st})
		},
	}

	cmd.Flags().StringVar(&ndc, "ndc", "", "Item NDC")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Units received")
	_ = cmd.MarkFlagRequired("ndc")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

// appToday resolves the pinned or wall-clock "today".
func appToday(app *App) time.Time {
	if app.Today != "" {
		if t, err := time.Parse("2006-01-02", app.Today); err == nil {
			return t
		}
	}
	return time.Now()
}
