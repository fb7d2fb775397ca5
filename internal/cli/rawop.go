package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/replkit/replctl/internal/nrepl"
	"github.com/replkit/replctl/internal/session"
)

func newOpCmd(app *App) *cobra.Command {
	var argPairs []string
	var useSession bool

	cmd := &cobra.Command{
		Use:   "op NAME",
		Short: "Send a raw operation and print each response as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opArgs := make(map[string]string, len(argPairs))
			for _, pair := range argPairs {
				key, value, ok := strings.Cut(pair, "=")
				if !ok || key == "" {
					return fmt.Errorf("malformed --arg %q, want key=value", pair)
				}
				opArgs[key] = value
			}

			client, err := app.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			if useSession {
				sess, err := session.Ensure(client, app.Store, app.Config.Addr)
				if err != nil {
					return err
				}
				opArgs["session"] = sess
			}

			resps, err := client.Do(nrepl.NewRequest(args[0], opArgs))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, resp := range resps {
				if err := printJSON(out, resp.Generic()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&argPairs, "arg", nil, "operation argument as key=value (repeatable)")
	cmd.Flags().BoolVar(&useSession, "session", false, "attach the current session id")
	return cmd
}
