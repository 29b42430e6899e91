// Package tui implements the interactive terminal UI. It is a pure observer
// of the task store: every key press maps to a store operation, and the view
// re-reads FilteredView and Stats after each mutation.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvelasquez/tarea/internal/config"
	"github.com/mvelasquez/tarea/internal/models"
	"github.com/mvelasquez/tarea/internal/store"
	"github.com/mvelasquez/tarea/internal/tui/state"
	"github.com/mvelasquez/tarea/internal/tui/theme"
	"github.com/mvelasquez/tarea/internal/types"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	store  *store.Store
	config *config.Config

	uiState           *state.UIState
	notificationState *state.NotificationState

	// input is shared by the add, edit and search modes
	input textinput.Model

	// editingID is the task being edited while in EditTaskMode
	editingID types.TaskID

	// deletingID is the task awaiting confirmation in DeleteConfirmMode
	deletingID types.TaskID
}

// InitialModel creates and initializes the TUI model
func InitialModel(ctx context.Context, s *store.Store, cfg *config.Config) Model {
	theme.Init(cfg.ColorScheme)
	RefreshStyles()

	input := textinput.New()
	input.CharLimit = store.MaxTextLength
	input.Prompt = "> "

	return Model{
		ctx:               ctx,
		store:             s,
		config:            cfg,
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
		input:             input,
	}
}

// Init initializes the Bubble Tea application.
// Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// currentView returns the store's filtered projection
func (m Model) currentView() []*models.Task {
	return m.store.FilteredView()
}

// selectedTask returns the currently selected task, or nil when the view
// is empty
func (m Model) selectedTask() *models.Task {
	view := m.currentView()
	if len(view) == 0 {
		return nil
	}
	if m.uiState.SelectedTask() >= len(view) {
		return nil
	}
	return view[m.uiState.SelectedTask()]
}

// warnIfPersistence turns a recoverable save failure into a notification.
// Any other error is reported as an error notification. Returns true when
// the operation itself succeeded.
func (m Model) warnIfPersistence(err error) bool {
	if err == nil {
		return true
	}
	if store.IsPersistence(err) {
		m.notificationState.Add(state.LevelWarning, "Saved in memory only: "+err.Error())
		return true
	}
	m.notificationState.Add(state.LevelError, err.Error())
	return false
}
