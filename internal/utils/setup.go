package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var validate = validator.New()

func Setup(ctx context.Context, mode, path string) *models.Config {
	logger := log.FromContext(ctx).WithField("path", path)

	cfg, err := LoadConfig(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.WithError(err).Fatal("failed to load configuration")
	}

	if cfg != nil {
		if err = ValidateConfig(cfg); err != nil {
			logger.WithError(err).Fatal("invalid configuration")
		}
		return cfg
	}

	cfg = models.DefaultConfig()

	if mode == "docker" {
		logger.Warn("no configuration file found and interactive set-up is not available in docker mode, using defaults")
		return cfg
	}

	app := gui.NewWizard(cfg)
	if err = app.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start interactive wizard")
	}

	if err = ValidateConfig(cfg); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	// Save the config once done.
	if err = SaveConfig(path, cfg); err != nil {
		logger.WithError(err).Error("failed to save configuration")
	}

	return cfg
}

func ValidateConfig(cfg *models.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	if _, err := language.Parse(cfg.PokeAPI.Language); err != nil {
		return fmt.Errorf("invalid description language %q: %w", cfg.PokeAPI.Language, err)
	}

	return nil
}

func SaveConfig(path string, cfg *models.Config) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// LoadConfig reads the configuration at path on top of the defaults. A missing
// file is reported as os.ErrNotExist.
func LoadConfig(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := models.DefaultConfig()
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}
