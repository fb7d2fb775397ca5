package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/replkit/replctl/internal/nrepl/ops"
)

func newDescribeCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show server versions and supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Connect()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := ops.Describe(client)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, result)
			}

			versions := make([]string, 0, len(result.Versions))
			for name := range result.Versions {
				versions = append(versions, name)
			}
			sort.Strings(versions)
			for _, name := range versions {
				fmt.Fprintf(out, "VERSION %s %s\n", name, versionString(result.Versions[name]))
			}
			for _, name := range result.OpNames() {
				fmt.Fprintf(out, "OP %s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw description as JSON")
	return cmd
}

// versionString renders a describe version entry, which servers send either
// as a plain string or as a dict with a version-string key.
func versionString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val["version-string"].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v)
}
