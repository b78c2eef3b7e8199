package cli

import (
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/spf13/cobra"
)

func newMessagesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Message commands",
	}
	cmd.AddCommand(newMessagesListCmd(app))
	return cmd
}

func newMessagesListCmd(app *App) *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := store.Seed()
			out := db.Messages
			if unreadOnly {
				out = nil
				for _, m := range db.Messages {
					if m.Unread {
						out = append(out, m)
					}
				}
			}
			return writeOut(cmd, app, map[string]any{"data": out, "unread": db.UnreadMessageCount()})
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only unread messages")
	return cmd
}
