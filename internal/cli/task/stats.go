package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/cli"
	"github.com/mvelasquez/tarea/internal/cli/handler"
)

// StatsCmd returns the stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		Long:  "Show total, completed and pending counts over the whole task list, ignoring filter and search.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(&statsHandler{}),
	}

	addAgentFlags(cmd)
	return cmd
}

type statsHandler struct{}

func (h *statsHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	c, err := cli.NewCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	return c.Store.Stats(), nil
}
