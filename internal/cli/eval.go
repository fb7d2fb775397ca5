package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/replkit/replctl/internal/nrepl/ops"
	"github.com/replkit/replctl/internal/session"
)

var errEvalFailed = errors.New("evaluation failed")

func newEvalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "eval CODE",
		Short: "Evaluate code in the current session",
		Args:  cobra.ExactArgs(1),
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

			result, err := ops.Eval(client, sess, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			if result.Out != "" {
				fmt.Fprint(out, result.Out)
			}
			if result.Err != "" {
				fmt.Fprint(errOut, result.Err)
			}
			for _, value := range result.Values {
				fmt.Fprintln(out, value)
			}
			if result.Failed {
				if result.Ex != "" {
					return fmt.Errorf("%w: %s", errEvalFailed, result.Ex)
				}
				return errEvalFailed
			}
			return nil
		},
	}
}
