// Command swmc is the companion command-sending utility spec.md §6
// describes only through its wire contract. It is grounded directly on
// original_source/wmc.c: one subcommand per verb in wmc.c's commands[]
// table, each taking the same positional integer arguments, sent as a
// ClientMessage to the root window using the atom the manager interned for
// that verb.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rinikkumar/wm/internal/atoms"
	"github.com/rinikkumar/wm/internal/x11"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "swmc",
		Short: "Send a command to the swm window manager",
	}
	for _, spec := range commandSpecs {
		root.AddCommand(newCommand(spec))
	}
	return root
}

type commandSpec struct {
	use     string
	short   string
	kind    atoms.CommandKind
	argc    int
}

var commandSpecs = []commandSpec{
	{"kill-window", "Kill the focused window's client", atoms.Kill, 0},
	{"move-window", "Move the focused window by DX DY", atoms.Move, 2},
	{"resize-window", "Resize the focused window by DW DH", atoms.Resize, 2},
	{"focus-next", "Focus the next window", atoms.FocusNext, 0},
	{"focus-prev", "Focus the previous window", atoms.FocusPrev, 0},
	{"toggle-snap-left", "Toggle snap-left on the focused window", atoms.SnapLeft, 0},
	{"toggle-snap-right", "Toggle snap-right on the focused window", atoms.SnapRight, 0},
	{"toggle-maximize", "Toggle maximize on the focused window", atoms.Maximize, 0},
	{"toggle-fullscreen", "Toggle fullscreen on the focused window", atoms.Fullscreen, 0},
	{"switch-to-workspace", "Switch to workspace INDEX", atoms.SwitchWorkspace, 1},
	{"send-to-workspace", "Send the focused window to workspace INDEX", atoms.SendToWorkspace, 1},
	{"quit", "Ask the manager to exit", atoms.Quit, 0},
}

func newCommand(spec commandSpec) *cobra.Command {
	return &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Args:  cobra.ExactArgs(spec.argc),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parsePayload(args)
			if err != nil {
				return err
			}
			return send(spec.kind, payload)
		},
	}
}

func parsePayload(args []string) ([5]uint32, error) {
	var payload [5]uint32
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return payload, fmt.Errorf("expected integer argument, got %q", a)
		}
		payload[i] = uint32(int32(v))
	}
	return payload, nil
}

func send(kind atoms.CommandKind, payload [5]uint32) error {
	conn, err := x11.NewConn()
	if err != nil {
		return err
	}
	defer conn.Close()

	screen, err := conn.Connect()
	if err != nil {
		return err
	}

	registry, err := atoms.NewRegistry(conn)
	if err != nil {
		return fmt.Errorf("could not intern command atoms: %w", err)
	}
	atom, ok := registry.Atom(kind)
	if !ok {
		return fmt.Errorf("no atom registered for command %v", kind)
	}

	if err := conn.SendClientMessage(screen.Root, atom, payload); err != nil {
		return err
	}
	return conn.Flush()
}
