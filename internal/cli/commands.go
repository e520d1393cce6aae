// Package cli wires the cobra command tree for blockdash.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/blockdash/internal/dashboard"
	"github.com/rileyhilliard/blockdash/internal/errors"
	"github.com/rileyhilliard/blockdash/internal/logger"
	"github.com/rileyhilliard/blockdash/internal/sample"
)

// rootCmd runs the dashboard directly; there are no behavioral flags.
var rootCmd = &cobra.Command{
	Use:   "blockdash",
	Short: "Terminal dashboard layout demo",
	Long: `blockdash renders a full-screen dashboard of titled panels (CPU, GPU,
Disk, Memory). Three panels show randomly generated bar-graph data,
regenerated on every input event. Press q, Esc, or Ctrl+C to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

// Execute runs the root command. Any error surfaces here as the single
// generic failure path with a non-zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dashboardCommand starts the full-screen TUI and blocks until quit.
func dashboardCommand() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"Not a terminal",
			"blockdash draws a full-screen dashboard and needs an interactive terminal.")
	}

	log := logger.NewEnvLogger("[blockdash]")
	model := dashboard.New(sample.New(), log)

	log.Debug("starting dashboard")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, errors.ErrRender,
			"Dashboard terminated unexpectedly", "")
	}
	log.Debug("dashboard exited")

	return nil
}
