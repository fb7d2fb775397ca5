// Package cli wires the replctl command tree.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/replkit/replctl/internal/config"
	"github.com/replkit/replctl/internal/nrepl"
	"github.com/replkit/replctl/internal/session"
)

// App carries the resolved configuration and session store shared by all
// subcommands.
type App struct {
	Config config.Config
	Store  *session.Store
}

// Connect dials the configured server. The caller owns the client and must
// close it; one client serves one command invocation.
func (a *App) Connect() (*nrepl.Client, error) {
	return nrepl.Connect(a.Config.Addr, a.Config.Transport())
}

type rootFlags struct {
	addr       string
	configPath string
	timeout    time.Duration
}

// NewRootCmd builds the replctl command tree. Configuration resolves in
// order: built-in defaults, config file, command-line flags.
func NewRootCmd() *cobra.Command {
	app := &App{}
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "replctl",
		Short:         "Drive a remote nREPL server from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupApp(app, cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.addr, "addr", "", "server address (host:port)")
	pf.StringVar(&flags.configPath, "config", "", "path to replctl.toml")
	pf.DurationVar(&flags.timeout, "timeout", 0, "per-read timeout")

	root.AddCommand(
		newFindDefCmd(app),
		newEvalCmd(app),
		newDescribeCmd(app),
		newSessionsCmd(app),
		newOpCmd(app),
	)
	return root
}

func setupApp(app *App, cmd *cobra.Command, flags *rootFlags) error {
	var cfg config.Config
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfg, err = config.LoadIfPresent(path)
		if err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("addr") {
		cfg.Addr = flags.addr
	}
	if cmd.Flags().Changed("timeout") {
		cfg.ReadTimeout = flags.timeout
	}

	statePath := cfg.StatePath
	if statePath == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return err
		}
		statePath = path
	}

	app.Config = cfg
	app.Store = session.NewStore(statePath)
	return nil
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
