package config

// Themes is the fixed set of GitHub Pages built-in Jekyll themes, in menu order.
var Themes = []string{
	"architect",
	"cayman",
	"dinky",
	"hacker",
	"leap-day",
	"merlot",
	"midnight",
	"minima",
	"minimal",
	"modernist",
	"slate",
	"tactile",
	"time-machine",
}

// DefaultTheme matches the default offered by the setup wizard.
const DefaultTheme = "minima"

// IsValidTheme reports whether name is one of the supported themes.
func IsValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// ThemeGem returns the Jekyll gem name GitHub Pages expects in _config.yml.
// Built-in themes are published as jekyll-theme-<name>, except minima which
// predates that naming scheme.
func ThemeGem(name string) string {
	if name == "minima" {
		return "minima"
	}
	return "jekyll-theme-" + name
}
