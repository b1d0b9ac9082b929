package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Content != DefaultContentFile {
		t.Errorf("expected default content %q, got %q", DefaultContentFile, cfg.Content)
	}
	if cfg.BasePath != "/" {
		t.Errorf("expected default base_path /, got %q", cfg.BasePath)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != LogNormal {
		t.Errorf("expected default logging level %q, got %q", LogNormal, cfg.Logging.Level)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yml")

	original := DefaultConfig()
	original.Content = "https://example.com/content.json"
	original.BasePath = "/portfolio/"
	original.Origin = "https://me.github.io"
	original.Assets.Include = []string{"gallery/**", "avatars/*"}
	original.Server.Port = 9090
	original.Server.Watch = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Content != original.Content {
		t.Errorf("content: got %q, want %q", loaded.Content, original.Content)
	}
	if loaded.BasePath != original.BasePath {
		t.Errorf("base_path: got %q, want %q", loaded.BasePath, original.BasePath)
	}
	if loaded.Origin != original.Origin {
		t.Errorf("origin: got %q, want %q", loaded.Origin, original.Origin)
	}
	if loaded.Server.Port != 9090 || !loaded.Server.Watch {
		t.Errorf("server: got %+v", loaded.Server)
	}
	if len(loaded.Assets.Include) != 2 || loaded.Assets.Include[1] != "avatars/*" {
		t.Errorf("assets.include: got %v", loaded.Assets.Include)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Content != DefaultContentFile {
		t.Errorf("expected default content, got %q", cfg.Content)
	}
}

func TestLoadNormalizesBasePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yml")
	if err := os.WriteFile(path, []byte("base_path: portfolio\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BasePath != "/portfolio/" {
		t.Errorf("base_path = %q, want /portfolio/", cfg.BasePath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_BASE_PATH", "/site/")
	t.Setenv("FOLIO_SERVER__PORT", "3000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.BasePath != "/site/" {
		t.Errorf("env override failed: got %q, want /site/", loaded.BasePath)
	}
	if loaded.Server.Port != 3000 {
		t.Errorf("nested env override failed: got %d, want 3000", loaded.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty content", func(c *Config) { c.Content = " " }},
		{"relative base path", func(c *Config) { c.BasePath = "site/" }},
		{"bad origin", func(c *Config) { c.Origin = "example.com" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should be valid, got: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BasePath = "/portfolio/"
	cfg.StaticContactLabels = []string{"phone"}
	b := cfg.Base()
	if got := b.WithBase("assets/a.png"); got != "/portfolio/assets/a.png" {
		t.Errorf("WithBase = %q", got)
	}
	if b.IsStaticContact("email") || !b.IsStaticContact("phone") {
		t.Error("static labels should come from the config")
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		level     LogLevel
		verbose   bool
		wantInfo  bool
		wantDebug bool
	}{
		{LogNormal, false, true, false},
		{LogDebug, false, true, true},
		{LogNone, false, false, false},
		{LogNone, true, true, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		conf := LoggingConfig{Level: tt.level}
		log, err := conf.build(&buf, tt.verbose)
		if err != nil {
			t.Fatalf("build(%q): %v", tt.level, err)
		}
		log.Info("info line")
		log.Debug("debug line")
		_ = log.Sync()
		out := buf.String()
		if got := strings.Contains(out, "info line"); got != tt.wantInfo {
			t.Errorf("level %q verbose %v: info logged = %v", tt.level, tt.verbose, got)
		}
		if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
			t.Errorf("level %q verbose %v: debug logged = %v", tt.level, tt.verbose, got)
		}
	}

	if _, err := (&LoggingConfig{Level: "loud"}).build(&bytes.Buffer{}, false); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoggerFileDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "folio.log")
	conf := LoggingConfig{Level: LogNone, Destination: dest}
	log, err := conf.build(&bytes.Buffer{}, false)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("to the file")
	_ = log.Sync()
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to the file") {
		t.Errorf("log file = %q", data)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	written, err := WriteSample(path, WizardAnswers{Name: "Ada", Title: "Ada's site"})
	if err != nil || !written {
		t.Fatalf("WriteSample = %v, %v", written, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"Ada's site"`) {
		t.Error("sample should carry the site title")
	}

	written, err = WriteSample(path, WizardAnswers{Name: "Other"})
	if err != nil || written {
		t.Errorf("existing file should be kept: %v, %v", written, err)
	}
}

func TestWizardAnswersApply(t *testing.T) {
	cfg := DefaultConfig()
	WizardAnswers{BasePath: "repo", OutputDir: "public"}.Apply(cfg)
	if cfg.BasePath != "/repo/" || cfg.OutputDir != "public" {
		t.Errorf("applied config = %+v", cfg)
	}
}
