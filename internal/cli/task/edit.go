package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/cli"
	"github.com/mvelasquez/tarea/internal/cli/handler"
	"github.com/mvelasquez/tarea/internal/store"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE:  handler.Command(&editHandler{}),
	}

	addAgentFlags(cmd)
	return cmd
}

type editHandler struct{}

func (h *editHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := parseTaskID(args.Args[0])
	if err != nil {
		return nil, err
	}

	c, err := cli.NewCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	edited, err := c.Store.Edit(ctx, id, strings.Join(args.Args[1:], " "))
	if err != nil && !store.IsPersistence(err) {
		return nil, err
	}

	res := cli.Result{Data: cli.NewTaskView(edited)}
	if err != nil {
		res.Warning = err.Error()
	}
	return res, nil
}
