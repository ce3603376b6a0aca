package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/manishpatil55/demo-product-page/internal/config"
	"github.com/manishpatil55/demo-product-page/internal/content"
	"github.com/manishpatil55/demo-product-page/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `productpage init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// loadContent loads the configured document, or the built-in sample when
// none is configured.
func loadContent(cfg *config.Config) (*content.Site, error) {
	s, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func contentName(cfg *config.Config) string {
	if cfg.ContentFile == "" {
		return "built-in sample"
	}
	return cfg.ContentFile
}
