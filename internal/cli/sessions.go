package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/replkit/replctl/internal/nrepl/ops"
	"github.com/replkit/replctl/internal/session"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage server-side sessions",
	}
	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsNewCmd(app),
		newSessionsRmCmd(app),
	)
	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List live sessions on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			sessions, err := ops.LsSessions(client)
			if err != nil {
				return err
			}

			stored, _, err := app.Store.Get(app.Config.Addr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range sessions {
				marker := " "
				if id == stored {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, id)
			}
			return nil
		},
	}
}

func newSessionsNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a fresh session and make it current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			id, err := ops.Clone(client, "")
			if err != nil {
				return err
			}
			if err := app.Store.Put(app.Config.Addr, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newSessionsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm",
		Short: "Close and forget the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			return session.Reset(client, app.Store, app.Config.Addr)
		},
	}
}
