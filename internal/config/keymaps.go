package config

// KeyMappings defines all configurable key bindings.
// Arrow keys are always bound alongside the navigation keys.
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	DeleteTask    string `yaml:"delete_task"`
	GrabTask      string `yaml:"grab_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	Save     string `yaml:"save"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:       "a",
		DeleteTask:    "x",
		GrabTask:      "space",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		Save:     "ctrl+s",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fields := []struct {
		value *string
		def   string
	}{
		{&k.AddTask, defaults.AddTask},
		{&k.DeleteTask, defaults.DeleteTask},
		{&k.GrabTask, defaults.GrabTask},
		{&k.MoveTaskLeft, defaults.MoveTaskLeft},
		{&k.MoveTaskRight, defaults.MoveTaskRight},
		{&k.PrevColumn, defaults.PrevColumn},
		{&k.NextColumn, defaults.NextColumn},
		{&k.PrevTask, defaults.PrevTask},
		{&k.NextTask, defaults.NextTask},
		{&k.Save, defaults.Save},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	}
	for _, f := range fields {
		if *f.value == "" {
			*f.value = f.def
		}
	}
}
