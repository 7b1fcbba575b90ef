package config

import "github.com/storyflow/techguide/internal/guide"

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = ".techguide.yml"

// HighlightStyles offered by the init wizard. Any chroma style name is
// accepted in the file.
var HighlightStyles = []string{"dracula", "monokai", "github-dark", "nord", "github"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:    guide.Title,
		Subtitle: guide.Subtitle,
		LogLevel: LogInfo,
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
			OpenBrowser:     false,
		},
		Site: SiteConfig{
			OutputDir:      "site",
			HighlightStyle: "dracula",
		},
	}
}
