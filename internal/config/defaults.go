package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "folio.yml"

// DefaultContentFile is the content document written by folio init.
const DefaultContentFile = "content.json"

// DefaultAssetExcludes are glob patterns never copied into a build.
var DefaultAssetExcludes = []string{
	"**/*.psd",
	"**/*.ai",
	"**/*.sketch",
	"**/.*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Content:   DefaultContentFile,
		BasePath:  "/",
		OutputDir: "dist",
		AssetsDir: "assets",
		Assets: AssetsConfig{
			Include: []string{"**"},
			Exclude: DefaultAssetExcludes,
		},
		StaticContactLabels: []string{"phone", "email"},
		Server: ServerConfig{
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level: LogNormal,
		},
	}
}
