package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kresna/patzer/engine"
)

// Config carries the driver settings. Flags override whatever the
// optional YAML file provides.
type Config struct {
	Depth   int    `yaml:"depth"`
	Debug   bool   `yaml:"debug"`
	Colors  bool   `yaml:"colors"`
	SVGPath string `yaml:"svg"`
}

func DefaultConfig() Config {
	return Config{
		Depth:  engine.DefaultMaxPlies,
		Colors: true,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Depth <= 0 {
		cfg.Depth = engine.DefaultMaxPlies
	}
	return cfg, nil
}
