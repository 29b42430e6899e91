package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/cli"
	"github.com/mvelasquez/tarea/internal/cli/handler"
	"github.com/mvelasquez/tarea/internal/models"
)

// ListCmd returns the ls subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List tasks",
		Long: `List tasks, optionally restricted by completion filter and search term.

Examples:
  tarea ls
  tarea ls --filter pending
  tarea ls --search milk --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&listHandler{}),
	}

	cmd.Flags().String("filter", "all", "Completion filter: all, completed, pending")
	cmd.Flags().String("search", "", "Case-insensitive substring match on task text")
	addAgentFlags(cmd)
	return cmd
}

type listHandler struct{}

func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	c, err := cli.NewCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	if f := args.GetString("filter"); f != "" {
		if err := c.Store.SetFilter(models.Filter(f)); err != nil {
			return nil, err
		}
	}
	c.Store.SetSearchTerm(args.GetString("search"))

	views := cli.NewTaskViews(c.Store.FilteredView())

	// Humans get the store's empty-state message; agents get the empty array
	if len(views) == 0 && !args.GetBool("json") && !args.GetBool("quiet") {
		return c.Store.EmptyMessage(), nil
	}
	return views, nil
}
