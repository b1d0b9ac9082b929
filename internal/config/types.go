package config

// LogLevel selects how much the console logger prints.
type LogLevel string

const (
	LogNone   LogLevel = "none"
	LogNormal LogLevel = "normal"
	LogDebug  LogLevel = "debug"
)

// Config is the top-level folio configuration, corresponding to folio.yml.
type Config struct {
	// Content is a file path or an http(s) URL of the content document.
	Content string `yaml:"content" koanf:"content"`
	// Layout is an optional host document template. Empty uses the built-in
	// layout.
	Layout              string        `yaml:"layout,omitempty" koanf:"layout"`
	BasePath            string        `yaml:"base_path" koanf:"base_path"`
	Origin              string        `yaml:"origin,omitempty" koanf:"origin"`
	OutputDir           string        `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir           string        `yaml:"assets_dir" koanf:"assets_dir"`
	Assets              AssetsConfig  `yaml:"assets" koanf:"assets"`
	StaticContactLabels []string      `yaml:"static_contact_labels" koanf:"static_contact_labels"`
	Server              ServerConfig  `yaml:"server" koanf:"server"`
	Logging             LoggingConfig `yaml:"logging" koanf:"logging"`
}

// AssetsConfig filters the files copied from AssetsDir.
type AssetsConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// ServerConfig holds settings for folio serve.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	// Watch enables live reload when the content document or assets change.
	Watch bool `yaml:"watch" koanf:"watch"`
}

// LoggingConfig controls the zap logger built by Prepare.
type LoggingConfig struct {
	Level LogLevel `yaml:"level" koanf:"level"`
	// Destination, when set, also writes debug-level logs to this file.
	Destination string `yaml:"destination,omitempty" koanf:"destination"`
}
