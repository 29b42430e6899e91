package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mvelasquez/tarea/internal/tui/theme"
)

// Style definitions for the task list UI.
// These styles follow Lipgloss conventions for composable terminal styling.
var (
	// Tab borders - active tab has no bottom border to "open" into content
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive filter tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected filter tab
	ActiveTabStyle lipgloss.Style

	// TitleStyle defines the appearance of the app header
	TitleStyle lipgloss.Style

	// TaskStyle defines a task row
	TaskStyle lipgloss.Style

	// SelectedTaskStyle defines the currently selected task row
	SelectedTaskStyle lipgloss.Style

	// DoneTextStyle defines completed task text
	DoneTextStyle lipgloss.Style

	// SubtleStyle defines muted text such as empty-state messages
	SubtleStyle lipgloss.Style

	// StatusBarStyle defines the stats footer
	StatusBarStyle lipgloss.Style

	// CreateInputBoxStyle frames the add-task dialog
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle frames the edit-task dialog
	EditInputBoxStyle lipgloss.Style

	// ConfirmBoxStyle frames the delete confirmation dialog
	ConfirmBoxStyle lipgloss.Style

	// SearchBarStyle defines the search prompt line
	SearchBarStyle lipgloss.Style

	// Notification styles by level
	InfoNotificationStyle    lipgloss.Style
	WarningNotificationStyle lipgloss.Style
	ErrorNotificationStyle   lipgloss.Style
)

// RefreshStyles rebuilds the style set from the current theme colors.
// Called once after theme.Init; kept separate so tests can swap themes.
func RefreshStyles() {
	highlight := lipgloss.Color(theme.Highlight)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(highlight).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	TaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)

	SelectedTaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true).
		Padding(0, 1)

	DoneTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Done)).
		Strikethrough(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg)).
		Padding(0, 1)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	EditInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	ConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1, 2)

	SearchBarStyle = lipgloss.NewStyle().
		Foreground(highlight)

	InfoNotificationStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg)).
		Padding(0, 1)

	WarningNotificationStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.WarningFg)).
		Background(lipgloss.Color(theme.WarningBg)).
		Padding(0, 1)

	ErrorNotificationStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Background(lipgloss.Color(theme.ErrorBg)).
		Padding(0, 1)
}

func init() {
	RefreshStyles()
}
