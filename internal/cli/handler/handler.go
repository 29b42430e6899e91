// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mvelasquez/tarea/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
}

// GetString retrieves a string flag, or the empty string when unset
func (a *Arguments) GetString(name string) string {
	if v, ok := a.Flags[name].(string); ok {
		return v
	}
	return ""
}

// GetBool retrieves a bool flag, or false when unset
func (a *Arguments) GetBool(name string) bool {
	if v, ok := a.Flags[name].(bool); ok {
		return v
	}
	return false
}

// Command wraps common command execution logic.
// Returns a cobra RunE compatible function.
func Command(h Handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Get formatter from flags
		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
		}

		result, err := h.Execute(ctx, arguments)
		if err != nil {
			return cli.ReportError(formatter, err)
		}

		// A mutation can succeed in memory while the save fails; surface
		// the warning without discarding the result.
		if res, ok := result.(cli.Result); ok {
			if res.Warning != "" {
				formatter.Warning(res.Warning)
			}
			return formatter.Success(res.Data)
		}

		return formatter.Success(result)
	}
}

// parseFlagsToMap converts the flags that were explicitly set to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}
