package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, ValidateConfig(models.DefaultConfig()))
}

func TestValidateConfigRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Config)
	}{
		{"port out of range", func(c *models.Config) { c.HTTP.Port = 70000 }},
		{"missing address", func(c *models.Config) { c.HTTP.ListeningAddr = "" }},
		{"zero page size", func(c *models.Config) { c.PokeAPI.PageSize = 0 }},
		{"zero limit", func(c *models.Config) { c.PokeAPI.Limit = 0 }},
		{"bad base url", func(c *models.Config) { c.PokeAPI.BaseURL = "pokeapi" }},
		{"template without id", func(c *models.Config) { c.PokeAPI.ImageURLTemplate = "https://img/1.png" }},
		{"bad language", func(c *models.Config) { c.PokeAPI.Language = "not a language" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := models.DefaultConfig()
	cfg.FancyScreen = true
	cfg.HTTP.Port = 9090
	cfg.PokeAPI.Limit = 151
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"http": {"port": 1234, "listening_addr": "0.0.0.0"}}`), 0600))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, loaded.HTTP.Port)
	assert.Equal(t, 100, loaded.PokeAPI.PageSize)
	assert.Equal(t, "en", loaded.PokeAPI.Language)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetupDockerModeUsesDefaults(t *testing.T) {
	cfg := Setup(context.Background(), "docker", filepath.Join(t.TempDir(), "config.json"))
	assert.Equal(t, models.DefaultConfig(), cfg)
}

func TestSetupLoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	want := models.DefaultConfig()
	want.PokeAPI.Language = "ja"
	require.NoError(t, SaveConfig(path, want))

	assert.Equal(t, want, Setup(context.Background(), "cli", path))
}
