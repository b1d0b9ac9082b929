package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/motion"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger described by the config and the --verbose flag.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := cfg.Logging.Prepare(verbose)
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}
	return log, nil
}

// newAssembler creates the page assembler shared by serve, build and snapshot.
func newAssembler(cfg *config.Config, log *zap.Logger) (*page.Assembler, error) {
	a := &page.Assembler{
		Renderer: render.New(cfg.Base()),
		Source:   content.Open(cfg.Content, log.Named("content")),
		Animator: motion.Planner{},
		Log:      log.Named("page"),
	}
	if cfg.Layout != "" {
		data, err := os.ReadFile(cfg.Layout)
		if err != nil {
			return nil, fmt.Errorf("reading layout: %w", err)
		}
		a.Layout = string(data)
	}
	return a, nil
}
