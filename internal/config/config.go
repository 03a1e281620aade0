package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the simulator. Values come from the
// environment, optionally seeded from a .env file in the working directory.
type Config struct {
	LogLevel  string // zerolog level name
	LogFormat string // "console" or "json"

	MaxCoordinate   int  // largest accepted grid size or start coordinate, 0 for no limit
	MaxInstructions int  // longest accepted instruction line, 0 for no limit
	ShowMap         bool // draw the grid after each robot
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Config {
	return &Config{LogLevel: "warn", LogFormat: "console"}
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	def := Defaults()
	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", def.LogLevel),
		LogFormat: getEnv("LOG_FORMAT", def.LogFormat),
	}
	var err error
	if cfg.MaxCoordinate, err = getInt("MARS_MAX_COORDINATE", 0); err != nil {
		return nil, err
	}
	if cfg.MaxInstructions, err = getInt("MARS_MAX_INSTRUCTIONS", 0); err != nil {
		return nil, err
	}
	if cfg.ShowMap, err = getBool("MARS_SHOW_MAP", false); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that may have been changed after Load, for
// example by command line flags.
func (c *Config) Validate() error {
	if c.MaxCoordinate < 0 {
		return fmt.Errorf("max coordinate: must not be negative, got %d", c.MaxCoordinate)
	}
	if c.MaxInstructions < 0 {
		return fmt.Errorf("max instructions: must not be negative, got %d", c.MaxInstructions)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %d", k, n)
	}
	return n, nil
}

func getBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
