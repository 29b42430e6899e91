package theme

import "github.com/mvelasquez/tarea/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	Delete         string
	Done           string
	TaskBorder     string
	SelectedBorder string
	SelectedBg     string
	Title          string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	Done = colors.Done
	TaskBorder = colors.TaskBorder
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	Title = colors.Title
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}

func init() {
	// Sensible colors even if Init is never called (tests, previews)
	Init(config.DefaultColorScheme())
}
