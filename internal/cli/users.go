package cli

import (
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/mutate"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User management commands",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersCreateCmd(app))
	cmd.AddCommand(newUsersSetStatusCmd(app))
	cmd.AddCommand(newUsersSetEmailCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			return writeOut(cmd, app, map[string]any{"data": db.Users})
		},
	}
	return cmd
}

func newUsersCreateCmd(app *App) *cobra.Command {
	var (
		name       string
		email      string
		role       string
		department string
		perms      []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user (demo: state resets next invocation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			r := model.RoleUser
			if role == string(model.RoleAdmin) {
				r = model.RoleAdmin
			}
			u, err := mutate.CreateUser(db, mutate.NewUser{
				Name:        name,
				Email:       email,
				Role:        r,
				Department:  department,
				Permissions: perms,
			}, time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": u})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email (must be unique)")
	cmd.Flags().StringVar(&role, "role", "user", "Role (admin|user)")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	cmd.Flags().StringSliceVar(&perms, "permission", nil, "Permission (repeatable; 'all' grants everything)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newUsersSetStatusCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "set-status <user-id>",
		Short: "Set a user's status (demo: state resets next invocation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			res, err := mutate.SetUserStatus(db, args[0], model.UserStatus(status))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res.User, "changed": res.Changed})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Status (active|inactive|on-leave|terminated)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newUsersSetEmailCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "set-email <user-id>",
		Short: "Change a user's email (demo: state resets next invocation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			res, err := mutate.UpdateUserEmail(db, args[0], email)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res.User, "changed": res.Changed})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "New email (must be unique)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
