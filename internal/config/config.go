// Package config provides YAML-based configuration loading for the 2048
// game: spawn rules, campaign levels, tile theme, SSH server and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains all configuration for the game and its platform.
type Config struct {
	Spawn    SpawnConfig    `yaml:"spawn"`
	Campaign CampaignConfig `yaml:"campaign"`
	Theme    ThemeConfig    `yaml:"theme"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// SpawnConfig defines how new tiles are chosen in classic mode.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance of a 4 instead of a 2 (0.0-1.0)
}

// CampaignConfig lists the campaign levels in play order.
type CampaignConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig defines one campaign level.
type LevelConfig struct {
	Name            string  `yaml:"name"`
	Target          int     `yaml:"target"`           // Tile value that clears the level
	FourProbability float64 `yaml:"four_probability"` // Spawn chance of a 4 on this level
}

// ThemeConfig holds tile and board colors as hex strings or ANSI codes.
type ThemeConfig struct {
	Tiles    map[int]string `yaml:"tiles"`     // Tile value -> background color
	Empty    string         `yaml:"empty"`     // Empty cell background
	Super    string         `yaml:"super"`     // Background for tiles above 2048
	Text     string         `yaml:"text"`      // Text on light tiles
	DarkText string         `yaml:"dark_text"` // Text on dark tiles (8 and up)
	Grid     string         `yaml:"grid"`      // Grid lines
	Accent   string         `yaml:"accent"`    // Titles and highlights
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty means ~/.t2048/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks value ranges and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: spawn.four_probability %v outside [0,1]", ErrInvalidConfig, p)
	}

	if len(c.Campaign.Levels) == 0 {
		return fmt.Errorf("%w: campaign needs at least one level", ErrInvalidConfig)
	}
	for i, lvl := range c.Campaign.Levels {
		if lvl.Target < 4 || lvl.Target&(lvl.Target-1) != 0 {
			return fmt.Errorf("%w: campaign level %d target %d is not a power of 2 >= 4", ErrInvalidConfig, i+1, lvl.Target)
		}
		if lvl.FourProbability < 0 || lvl.FourProbability > 1 {
			return fmt.Errorf("%w: campaign level %d four_probability %v outside [0,1]", ErrInvalidConfig, i+1, lvl.FourProbability)
		}
	}

	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout is negative", ErrInvalidConfig)
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// LogLevel returns the configured log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
