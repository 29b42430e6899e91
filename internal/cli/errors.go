package cli

import (
	"github.com/mvelasquez/tarea/internal/store"
)

// Error codes reported in JSON output
const (
	CodeValidation  = "VALIDATION"
	CodeNotFound    = "NOT_FOUND"
	CodePersistence = "PERSISTENCE"
	CodeInternal    = "INTERNAL"
)

// Result pairs command output with an optional non-fatal warning, so a
// mutation that applied in memory but failed to persist can still report
// its outcome.
type Result struct {
	Data    any
	Warning string
}

// ErrorCode maps a store error to its reporting code
func ErrorCode(err error) string {
	switch {
	case store.IsValidation(err):
		return CodeValidation
	case store.IsNotFound(err):
		return CodeNotFound
	case store.IsPersistence(err):
		return CodePersistence
	default:
		return CodeInternal
	}
}

// ReportError formats err for the user and returns it so the command exits
// non-zero. The root command silences cobra's own error printing.
func ReportError(f *OutputFormatter, err error) error {
	if fmtErr := f.Error(ErrorCode(err), err.Error()); fmtErr != nil {
		return fmtErr
	}
	return err
}
