package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/cli"
	"github.com/mvelasquez/tarea/internal/cli/handler"
	"github.com/mvelasquez/tarea/internal/store"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new task",
		Long: `Add a new task to the list. The text is trimmed and must be
between 1 and 200 characters.

Examples:
  # Human-readable output
  tarea add "Buy milk"

  # JSON output for agents
  tarea add "Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(tarea add "Buy milk" --quiet)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.Command(&addHandler{}),
	}

	addAgentFlags(cmd)
	return cmd
}

type addHandler struct{}

func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	c, err := cli.NewCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	created, err := c.Store.Add(ctx, strings.Join(args.Args, " "))
	if err != nil && !store.IsPersistence(err) {
		return nil, err
	}

	res := cli.Result{Data: cli.NewTaskView(created)}
	if err != nil {
		res.Warning = err.Error()
	}
	return res, nil
}
