package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// Config is the optional tool configuration. The engine itself takes
// no configuration; this only shapes the command surface.
type Config struct {
	// Catalog is the path of a YAML sample catalog used by the
	// examples command and the TUI when set.
	Catalog string `yaml:"catalog"`
	// NoColor disables colored output.
	NoColor bool `yaml:"no_color"`
}

// LoadConfig loads configuration from the given file, falling back to
// defaults when the file does not exist. A .env file in the working
// directory and EXPRCHECK_* environment variables are applied on top.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	config := &Config{}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.UnmarshalWithOptions(data, config, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(config)

	if config.Catalog != "" {
		if _, err := os.Stat(config.Catalog); err != nil {
			return nil, fmt.Errorf("%w: catalog file %s: %v", ErrConfigValidation, config.Catalog, err)
		}
	}

	return config, nil
}

// loadEnvFiles loads a .env file if one exists
func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}

	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies EXPRCHECK_* environment variables
func applyEnvOverrides(config *Config) {
	if catalog := os.Getenv("EXPRCHECK_CATALOG"); catalog != "" {
		config.Catalog = catalog
	}

	if envTruthy(os.Getenv("EXPRCHECK_NO_COLOR")) {
		config.NoColor = true
	}
}

// envTruthy interprets a boolean-ish environment value; empty, "0"
// and "false" are off.
func envTruthy(value string) bool {
	return value != "" && value != "0" && value != "false"
}

// ApplyColorMode disables colored output when either the --no-color
// flag or the loaded configuration asks for it. Commands call this
// right after LoadConfig, so values supplied through exprcheck.yaml or
// a .env file take effect as well.
func (c *Config) ApplyColorMode(ctx *Context) {
	if ctx.NoColor || c.NoColor {
		color.NoColor = true
	}
}
