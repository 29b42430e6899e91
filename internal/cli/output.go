package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mvelasquez/tarea/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// TaskView is the presentation form of a task for CLI output
type TaskView struct {
	ID          int     `json:"id"`
	Text        string  `json:"text"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

// GetID makes TaskView usable with quiet mode
func (v TaskView) GetID() int {
	return v.ID
}

// NewTaskView converts a domain task for display
func NewTaskView(t *models.Task) TaskView {
	view := TaskView{
		ID:        t.ID.ToInt(),
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.CompletedAt != nil {
		s := t.CompletedAt.Format(time.RFC3339)
		view.CompletedAt = &s
	}
	return view
}

// NewTaskViews converts a task sequence, preserving order
func NewTaskViews(tasks []*models.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, NewTaskView(t))
	}
	return views
}

// Success outputs a successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	return nil
}

// Warning outputs a non-fatal warning, such as a failed save after a
// successful mutation. Never shown in quiet mode.
func (f *OutputFormatter) Warning(message string) {
	if f.Quiet || f.JSON {
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: %s\n", message)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case TaskView:
		printTask(v)
	case []TaskView:
		for _, t := range v {
			printTask(t)
		}
	case models.Stats:
		fmt.Printf("%d total, %d completed, %d pending\n", v.Total, v.Completed, v.Pending)
	case string:
		fmt.Println(v)
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}

func printTask(t TaskView) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	fmt.Printf("%4d [%s] %s\n", t.ID, mark, t.Text)
}
