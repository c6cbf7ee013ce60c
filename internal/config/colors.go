package config

// ColorScheme holds the colors used for CLI output
type ColorScheme struct {
	Preset string `yaml:"preset,omitempty"`

	// Primary
	Accent string `yaml:"accent,omitempty"`

	// Text
	Title  string `yaml:"title,omitempty"`
	Subtle string `yaml:"subtle,omitempty"`
	Normal string `yaml:"normal,omitempty"`

	// Semantic
	Success string `yaml:"success,omitempty"`
	Warning string `yaml:"warning,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

// DefaultColorScheme returns the default color scheme (teal theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",

		Accent: "#14B8A6",

		Title:  "#5EEAD4",
		Subtle: "#6B7280",
		Normal: "#D0D0D0",

		Success: "#10B981",
		Warning: "#F59E0B",
		Error:   "#EF4444",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		Success: "#FFFFFF",
		Warning: "#D0D0D0",
		Error:   "#FFFFFF",
	}
}

// MergeFrom overlays non-empty fields of other onto c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.Success != "" {
		c.Success = other.Success
	}
	if other.Warning != "" {
		c.Warning = other.Warning
	}
	if other.Error != "" {
		c.Error = other.Error
	}
}

// ApplyDefaults fills in missing colors with the default scheme
func (c *ColorScheme) ApplyDefaults() {
	defaults := DefaultColorScheme()
	merged := defaults
	merged.MergeFrom(*c)
	*c = merged
}
