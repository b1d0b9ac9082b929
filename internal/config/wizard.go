package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/links"
)

// WizardAnswers are the values collected by RunWizard.
type WizardAnswers struct {
	Name      string
	Title     string
	BasePath  string
	OutputDir string
}

// Apply writes the answers into cfg.
func (a WizardAnswers) Apply(cfg *Config) {
	if a.BasePath != "" {
		cfg.BasePath = links.NormalizePath(a.BasePath)
	}
	if a.OutputDir != "" {
		cfg.OutputDir = a.OutputDir
	}
}

// RunWizard runs an interactive configuration wizard, then saves the config
// to configPath and a starter content document to the configured content
// path unless one already exists.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio.")
	fmt.Println()

	notEmpty := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("required")
		}
		return nil
	}

	name, err := (&promptui.Prompt{Label: "Your name", Validate: notEmpty}).Run()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	title, err := (&promptui.Prompt{Label: "Site title", Default: name + " | Portfolio"}).Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	hosting := promptui.Select{
		Label: "Where will the site be hosted",
		Items: []string{
			"domain root (https://example.com/)",
			"subdirectory (https://user.github.io/repo/)",
		},
	}
	hostIdx, _, err := hosting.Run()
	if err != nil {
		return nil, fmt.Errorf("hosting selection: %w", err)
	}
	basePath := "/"
	if hostIdx == 1 {
		basePath, err = (&promptui.Prompt{Label: "Base path", Default: "/portfolio/", Validate: notEmpty}).Run()
		if err != nil {
			return nil, fmt.Errorf("base path: %w", err)
		}
	}

	outputDir, err := (&promptui.Prompt{Label: "Output directory for folio build", Default: "dist"}).Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	answers := WizardAnswers{Name: name, Title: title, BasePath: basePath, OutputDir: outputDir}
	cfg := DefaultConfig()
	answers.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", configPath)

	written, err := WriteSample(cfg.Content, answers)
	if err != nil {
		return nil, err
	}
	if written {
		fmt.Printf("Starter content written to %s\n", cfg.Content)
	} else {
		fmt.Printf("Keeping existing content document %s\n", cfg.Content)
	}
	return cfg, nil
}

// WriteSample writes a starter content document to path. An existing file is
// left untouched and reported as not written.
func WriteSample(path string, a WizardAnswers) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := content.Encode(content.Sample(strings.TrimSpace(a.Name), strings.TrimSpace(a.Title)))
	if err != nil {
		return false, fmt.Errorf("encoding sample content: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("writing sample content to %s: %w", path, err)
	}
	return true, nil
}
