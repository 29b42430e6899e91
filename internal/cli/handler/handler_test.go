package handler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mvelasquez/tarea/internal/cli"
	"github.com/mvelasquez/tarea/internal/testutil"
)

type stubHandler struct {
	result any
	err    error
	seen   *Arguments
}

func (h *stubHandler) Execute(_ context.Context, args *Arguments) (any, error) {
	h.seen = args
	return h.result, h.err
}

func newTestCommand(h Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "test",
		RunE:          Command(h),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("quiet", false, "")
	cmd.Flags().String("filter", "", "")
	cmd.Flags().Int("limit", 0, "")
	return cmd
}

func TestArgumentsGetters(t *testing.T) {
	args := &Arguments{Flags: map[string]any{
		"filter": "pending",
		"quiet":  true,
	}}

	if got := args.GetString("filter"); got != "pending" {
		t.Errorf("GetString(filter) = %q", got)
	}
	if got := args.GetString("missing"); got != "" {
		t.Errorf("GetString(missing) = %q, want empty", got)
	}
	if !args.GetBool("quiet") {
		t.Error("GetBool(quiet) = false")
	}
	if args.GetBool("missing") {
		t.Error("GetBool(missing) = true")
	}
	// Type mismatch falls back to the zero value
	if got := args.GetString("quiet"); got != "" {
		t.Errorf("GetString(quiet) = %q, want empty", got)
	}
}

func TestCommandPassesSetFlagsOnly(t *testing.T) {
	h := &stubHandler{result: "ok"}
	cmd := newTestCommand(h)
	cmd.SetArgs([]string{"--filter", "completed", "positional"})

	_ = testutil.CaptureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})

	if h.seen == nil {
		t.Fatal("handler never invoked")
	}
	if got := h.seen.GetString("filter"); got != "completed" {
		t.Errorf("filter flag = %q", got)
	}
	if _, present := h.seen.Flags["limit"]; present {
		t.Error("unset flag present in the flag map")
	}
	if len(h.seen.Args) != 1 || h.seen.Args[0] != "positional" {
		t.Errorf("args = %v", h.seen.Args)
	}
}

func TestCommandReturnsHandlerError(t *testing.T) {
	wantErr := errors.New("boom")
	cmd := newTestCommand(&stubHandler{err: wantErr})
	cmd.SetArgs([]string{"--json"})

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("Execute error = %v, want %v", err, wantErr)
	}
	if !strings.Contains(out, `"success":false`) {
		t.Errorf("JSON error envelope missing: %s", out)
	}
}

func TestCommandUnwrapsResultWarning(t *testing.T) {
	h := &stubHandler{result: cli.Result{Data: "done", Warning: "save failed"}}
	cmd := newTestCommand(h)

	out := testutil.CaptureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})

	// The warning goes to stderr; the data still reaches stdout
	if !strings.Contains(out, "done") {
		t.Errorf("stdout missing result data: %q", out)
	}
}
