package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`
	ToggleTask string `yaml:"toggle_task"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Views
	CycleFilter string `yaml:"cycle_filter"`
	Search      string `yaml:"search"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",
		ToggleTask: " ",

		// Navigation
		PrevTask: "k",
		NextTask: "j",

		// Views
		CycleFilter: "f",
		Search:      "/",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ToggleTask == "" {
		k.ToggleTask = defaults.ToggleTask
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.CycleFilter == "" {
		k.CycleFilter = defaults.CycleFilter
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
