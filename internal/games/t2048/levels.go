// Package t2048 implements the 2048 puzzle game on top of the board engine,
// with a classic mode and a campaign of target-tile levels.
package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
)

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// Levels builds the campaign levels from configuration, numbered from 1.
func Levels(cfg config.Config) []Level {
	levels := make([]Level, len(cfg.Campaign.Levels))
	for i, lc := range cfg.Campaign.Levels {
		levels[i] = Level{
			ID:     i + 1,
			Name:   lc.Name,
			Target: lc.Target,
			Spawn4: lc.FourProbability,
		}
	}
	return levels
}
