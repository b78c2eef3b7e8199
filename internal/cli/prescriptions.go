package cli

import (
	"strings"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/derive"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/spf13/cobra"
)

func newPrescriptionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescriptions",
		Short: "Prescription queue commands",
	}
	cmd.AddCommand(newPrescriptionsListCmd(app))
	cmd.AddCommand(newPrescriptionsShowCmd(app))
	cmd.AddCommand(newPrescriptionsAddCmd(app))
	return cmd
}

func newPrescriptionsListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the prescription queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			out := db.Prescriptions
			if s := strings.TrimSpace(status); s != "" {
				out = nil
				for _, rx := range db.Prescriptions {
					if strings.EqualFold(string(rx.Status), s) {
						out = append(out, rx)
					}
				}
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (e.g. 'Ready for Review')")
	return cmd
}

func newPrescriptionsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <prescription-id>",
		Short: "Show one prescription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			rx, ok := db.FindPrescription(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("prescription", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": rx})
		},
	}
	return cmd
}

func newPrescriptionsAddCmd(app *App) *cobra.Command {
	var (
		patient    string
		medication string
		strength   string
		quantity   string
		prescriber string
		insurance  string
		priority   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Queue a new prescription (demo: state resets next invocation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()

			// Same aggregate guard as the intake wizard: required fields only.
			completion := derive.CompletionPercent([]any{patient, medication, prescriber})
			if completion < 100 {
				return writeErr(cmd, errRequired("patient, medication and prescriber are required"))
			}

			now := time.Now()
			rx := model.Prescription{
				ID:          db.NextID(store.PrefixPrescription, now),
				PatientName: strings.TrimSpace(patient),
				Medication:  strings.TrimSpace(medication),
				Strength:    strings.TrimSpace(strength),
				Quantity:    strings.TrimSpace(quantity),
				Prescriber:  strings.TrimSpace(prescriber),
				Insurance:   strings.TrimSpace(insurance),
				Status:      model.PrescriptionReadyForReview,
				Priority:    normalizePriority(priority),
				SubmittedAt: now,
			}
			db.AddPrescription(rx)
			return writeOut(cmd, app, map[string]any{"data": rx})
		},
	}

	cmd.Flags().StringVar(&patient, "patient", "", "Patient full name")
	cmd.Flags().StringVar(&medication, "medication", "", "Medication name")
	cmd.Flags().StringVar(&strength, "strength", "", "Strength (e.g. 10mg)")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Quantity")
	cmd.Flags().StringVar(&prescriber, "prescriber", "", "Prescriber name")
	cmd.Flags().StringVar(&insurance, "insurance", "", "Insurance plan")
	cmd.Flags().StringVar(&priority, "priority", "Normal", "Priority (Urgent|High|Normal|Low)")
	return cmd
}

func normalizePriority(s string) model.Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urgent":
		return model.PriorityUrgent
	case "high":
		return model.PriorityHigh
	case "low":
		return model.PriorityLow
	default:
		return model.PriorityNormal
	}
}
