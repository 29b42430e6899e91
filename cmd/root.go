package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/cli"
	"github.com/mvelasquez/tarea/internal/cli/task"
	"github.com/mvelasquez/tarea/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tarea",
	Short: "Tarea - a terminal task list",
	Long: `Tarea is a terminal task list: add, complete, search and filter short
text tasks, persisted locally. Run without arguments for the interactive UI,
or use the subcommands for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.AddCommand(task.AddCmd())
	rootCmd.AddCommand(task.ListCmd())
	rootCmd.AddCommand(task.ToggleCmd())
	rootCmd.AddCommand(task.EditCmd())
	rootCmd.AddCommand(task.RemoveCmd())
	rootCmd.AddCommand(task.StatsCmd())
}

// runTUI starts the interactive UI when no subcommand is given
func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	c, err := cli.NewCLI(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	model := tui.InitialModel(ctx, c.Store, c.Config)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
