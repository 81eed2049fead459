// Package config reads settings from the environment. Root flags in
// cmd/todolists override what is loaded here.
package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	UI  UIConfig
	Log LogConfig

	// Seed fills the board with the starter lists on startup.
	Seed bool `env:"TODOLISTS_SEED" env-default:"true"`
}

type UIConfig struct {
	Theme      string `env:"TODOLISTS_THEME" env-default:"classic"`
	NoColor    bool   `env:"NO_COLOR" env-default:"false"`
	ForceColor bool   `env:"TODOLISTS_FORCE_COLOR" env-default:"false"`
}

type LogConfig struct {
	// File receives log output; empty means stderr (or nothing while the TUI runs).
	File  string `env:"TODOLISTS_LOG_FILE" env-default:""`
	Level string `env:"TODOLISTS_LOG_LEVEL" env-default:"warn"`
}

var themes = map[string]bool{"classic": true, "neon": true, "mono": true}

// Load reads the environment without validating it, so flags parsed
// afterwards can still replace a bad value. Call Validate once flags are
// applied.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// Validate normalizes and checks values that may also come from flags.
func (c *Config) Validate() error {
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if !themes[c.UI.Theme] {
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.UI.Theme)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return nil
}
