package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/replkit/replctl/internal/nrepl/ops"
	"github.com/replkit/replctl/internal/session"
)

func newFindDefCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "find-def NS SYMBOL",
		Short: "Show the source position of a namespace or symbol",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			sess, err := session.Ensure(client, app.Store, app.Config.Addr)
			if err != nil {
				return err
			}

			result, err := ops.Info(client, sess, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case result == nil:
				printParseable(out, [][2]string{{"IS-EMPTY", "TRUE"}})
			case result.IsSymbol():
				printParseable(out, [][2]string{
					{"IS-SYMBOL", "TRUE"},
					{"LINE", strconv.FormatInt(result.Line, 10)},
					{"COLUMN", strconv.FormatInt(result.Column, 10)},
					{"FILE", result.File},
					{"RESOURCE", result.Resource},
				})
			default:
				printParseable(out, [][2]string{
					{"IS-NS", "TRUE"},
					{"LINE", strconv.FormatInt(result.Line, 10)},
					{"FILE", result.File},
					{"RESOURCE", result.Resource},
				})
			}
			return nil
		},
	}
}
