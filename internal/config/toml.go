// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/wordrush/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game   GameConfig             `toml:"game"`
	Levels map[string]LevelConfig `toml:"levels"`
}

// GameConfig maps play-related settings.
type GameConfig struct {
	Difficulty *string `toml:"difficulty"`
	WordsFile  *string `toml:"words-file"`
}

// LevelConfig overrides one difficulty preset.
type LevelConfig struct {
	BaseTime *int `toml:"base-time"`
	Bonus    *int `toml:"bonus"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// ApplyLevels merges level overrides into a copy of base.
func (c FileConfig) ApplyLevels(base model.Levels) (model.Levels, error) {
	out := make(model.Levels, len(base))
	for name, level := range base {
		out[name] = level
	}
	for name, override := range c.Levels {
		d := model.Difficulty(name)
		level, ok := out[d]
		if !ok {
			return nil, fmt.Errorf("unknown level %q in config", name)
		}
		if override.BaseTime != nil {
			level.BaseTimeSeconds = *override.BaseTime
		}
		if override.Bonus != nil {
			level.BonusSeconds = *override.Bonus
		}
		out[d] = level
	}
	return out, nil
}
