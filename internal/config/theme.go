package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	GrabbedBg      string `yaml:"grabbed_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors
	InfoFg  string `yaml:"info_fg"`
	ErrorFg string `yaml:"error_fg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		ColumnBorder:   "#5F87D7",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		GrabbedBg:      "#5F5F00",
		Title:          "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		InfoFg:         "#00AFFF",
		ErrorFg:        "#FF5F5F",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		ColumnBorder:   "#FFFFFF",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		GrabbedBg:      "#585858",
		Title:          "#FFFFFF",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		InfoFg:         "#FFFFFF",
		ErrorFg:        "#FFFFFF",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	fields := []struct {
		value *string
		def   string
	}{
		{&c.Accent, preset.Accent},
		{&c.ColumnBorder, preset.ColumnBorder},
		{&c.SelectedBorder, preset.SelectedBorder},
		{&c.SelectedBg, preset.SelectedBg},
		{&c.GrabbedBg, preset.GrabbedBg},
		{&c.Title, preset.Title},
		{&c.Subtle, preset.Subtle},
		{&c.Normal, preset.Normal},
		{&c.InfoFg, preset.InfoFg},
		{&c.ErrorFg, preset.ErrorFg},
	}
	for _, f := range fields {
		if *f.value == "" {
			*f.value = f.def
		}
	}
}
