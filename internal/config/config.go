// Package config persists user preferences under ~/.thisorthat and resolves
// the API credential from the process environment. Game history is
// deliberately not persisted; a session lives and dies with the process.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"github.com/zhubert/thisorthat/internal/errors"
	"github.com/zhubert/thisorthat/internal/game"
)

// APIKeyEnvVar is the environment variable holding the Gemini credential.
const APIKeyEnvVar = "GEMINI_API_KEY"

// Config holds the application configuration
type Config struct {
	Theme           string  `json:"theme,omitempty"`            // UI theme name (e.g., "dark-purple", "nord")
	Model           string  `json:"model,omitempty"`            // Gemini model name
	Temperature     float32 `json:"temperature,omitempty"`      // Generation randomness, [0.0, 1.0]
	DefaultCategory string  `json:"default_category,omitempty"` // Category selected on launch

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".thisorthat"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by Load and by tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature %v out of range [0.0, 1.0]", c.Temperature)
	}
	if c.DefaultCategory != "" && !game.Category(c.DefaultCategory).Valid() {
		return fmt.Errorf("unknown default category %q", c.DefaultCategory)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetTheme returns the saved theme name, or empty for the default
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme saves the theme name
func (c *Config) SetTheme(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = name
}

// GetModel returns the configured model name, or empty for the default
func (c *Config) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Model
}

// SetModel saves the model name
func (c *Config) SetModel(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Model = name
}

// GetTemperature returns the configured temperature, or fallback when unset
func (c *Config) GetTemperature(fallback float32) float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Temperature == 0 {
		return fallback
	}
	return c.Temperature
}

// SetTemperature saves the generation temperature
func (c *Config) SetTemperature(temp float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Temperature = temp
}

// StartCategory returns the category selected on launch.
func (c *Config) StartCategory() game.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.DefaultCategory != "" {
		return game.Category(c.DefaultCategory)
	}
	return game.DefaultCategory
}

// SetDefaultCategory saves the category selected on launch
func (c *Config) SetDefaultCategory(cat game.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DefaultCategory = string(cat)
}

// LoadAPIKey resolves the Gemini credential. A .env file in the working
// directory is loaded first if present (it never overrides variables already
// in the environment), then the variable is read. A missing credential is a
// configuration error surfaced before any request is attempted.
func LoadAPIKey() (string, error) {
	const op = errors.Op("config.LoadAPIKey")

	// Ignore the error: a missing .env file is the common case.
	_ = godotenv.Load()

	key := os.Getenv(APIKeyEnvVar)
	if key == "" {
		return "", errors.E(op, errors.KindConfig, APIKeyEnvVar+" is not set")
	}
	return key, nil
}
