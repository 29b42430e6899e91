// Package task implements the task-related CLI subcommands
package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/types"
)

// addAgentFlags adds the output flags every command carries
func addAgentFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// parseTaskID parses a positional task id argument
func parseTaskID(arg string) (types.TaskID, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive integer", arg)
	}
	return types.TaskIDFromInt(id), nil
}
