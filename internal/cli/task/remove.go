package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/cli"
	"github.com/mvelasquez/tarea/internal/cli/handler"
	"github.com/mvelasquez/tarea/internal/store"
)

// RemoveCmd returns the rm subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE:    handler.Command(&removeHandler{}),
	}

	addAgentFlags(cmd)
	return cmd
}

type removeHandler struct{}

func (h *removeHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := parseTaskID(args.Args[0])
	if err != nil {
		return nil, err
	}

	c, err := cli.NewCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	err = c.Store.Remove(ctx, id)
	if err != nil && !store.IsPersistence(err) {
		return nil, err
	}

	res := cli.Result{Data: fmt.Sprintf("Deleted task %d", id.ToInt())}
	if err != nil {
		res.Warning = err.Error()
	}
	return res, nil
}
