package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/cli"
	"github.com/mvelasquez/tarea/internal/cli/handler"
	"github.com/mvelasquez/tarea/internal/store"
)

// ToggleCmd returns the toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a task's completion state",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(&toggleHandler{}),
	}

	addAgentFlags(cmd)
	return cmd
}

type toggleHandler struct{}

func (h *toggleHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := parseTaskID(args.Args[0])
	if err != nil {
		return nil, err
	}

	c, err := cli.NewCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	toggled, err := c.Store.Toggle(ctx, id)
	if err != nil && !store.IsPersistence(err) {
		return nil, err
	}

	res := cli.Result{Data: cli.NewTaskView(toggled)}
	if err != nil {
		res.Warning = err.Error()
	}
	return res, nil
}
