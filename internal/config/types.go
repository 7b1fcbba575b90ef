package config

// LogLevel controls logger verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level techguide configuration, corresponding to .techguide.yml.
type Config struct {
	Title    string       `yaml:"title" koanf:"title"`
	Subtitle string       `yaml:"subtitle" koanf:"subtitle"`
	LogLevel LogLevel     `yaml:"log_level" koanf:"log_level"`
	Server   ServerConfig `yaml:"server" koanf:"server"`
	Site     SiteConfig   `yaml:"site" koanf:"site"`
}

// ServerConfig holds settings for `techguide serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	OpenBrowser     bool `yaml:"open_browser" koanf:"open_browser"`
}

// SiteConfig holds settings for the HTML renderer and static export.
type SiteConfig struct {
	OutputDir      string `yaml:"output_dir" koanf:"output_dir"`
	HighlightStyle string `yaml:"highlight_style" koanf:"highlight_style"`
}
