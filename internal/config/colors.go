package config

// ColorScheme holds the hex colors for the board chrome. All values
// are optional in the config file; missing ones take defaults.
type ColorScheme struct {
	Highlight    string `yaml:"highlight"`
	Subtle       string `yaml:"subtle"`
	ColumnBorder string `yaml:"column_border"`
	CardBorder   string `yaml:"card_border"`
	Selected     string `yaml:"selected"`
	ErrorFg      string `yaml:"error_fg"`
	InfoFg       string `yaml:"info_fg"`
}

// DefaultColorScheme returns the default theme.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Highlight:    "#7C3AED",
		Subtle:       "#6B7280",
		ColumnBorder: "#4B5563",
		CardBorder:   "#374151",
		Selected:     "#A78BFA",
		ErrorFg:      "#F87171",
		InfoFg:       "#60A5FA",
	}
}

// applyDefaults fills empty colors with the default theme.
func (c *ColorScheme) applyDefaults() {
	defaults := DefaultColorScheme()
	if c.Highlight == "" {
		c.Highlight = defaults.Highlight
	}
	if c.Subtle == "" {
		c.Subtle = defaults.Subtle
	}
	if c.ColumnBorder == "" {
		c.ColumnBorder = defaults.ColumnBorder
	}
	if c.CardBorder == "" {
		c.CardBorder = defaults.CardBorder
	}
	if c.Selected == "" {
		c.Selected = defaults.Selected
	}
	if c.ErrorFg == "" {
		c.ErrorFg = defaults.ErrorFg
	}
	if c.InfoFg == "" {
		c.InfoFg = defaults.InfoFg
	}
}
