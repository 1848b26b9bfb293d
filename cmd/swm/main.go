// Command swm is the reparenting window manager daemon described by
// spec.md. It wires the xgb-backed display backend (internal/x11) into the
// event-loop core (internal/wm).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rinikkumar/wm/internal/config"
	"github.com/rinikkumar/wm/internal/wm"
	"github.com/rinikkumar/wm/internal/wmlog"
	"github.com/rinikkumar/wm/internal/x11"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		wmlog.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "swm",
		Short: "A reparenting window manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			wmlog.SetDebug(debug)

			path := configPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					wmlog.Debugf("could not resolve default config path: %v", err)
					path = ""
				}
			}
			cfg := config.Default()
			if path != "" {
				var err error
				cfg, err = config.Load(path)
				if err != nil {
					return err
				}
			}

			return run(cfg)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config.toml (defaults to XDG config dir)")
	return cmd
}

func run(cfg config.Config) error {
	conn, err := x11.NewConn()
	if err != nil {
		return fmt.Errorf("could not connect to display server: %w", err)
	}
	defer conn.Close()

	manager, err := wm.New(conn, cfg)
	if err != nil {
		return fmt.Errorf("could not initialize window manager: %w", err)
	}
	if err := manager.Init(); err != nil {
		return err
	}
	return manager.Run()
}
