package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hardcoded default configuration.
// It matches defaults/t2048.yaml and is used when the embed cannot be parsed.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			FourProbability: 0.5,
		},
		Campaign: CampaignConfig{
			Levels: []LevelConfig{
				{Name: "Warm-up", Target: 128, FourProbability: 0.10},
				{Name: "Getting Started", Target: 256, FourProbability: 0.10},
				{Name: "Building Momentum", Target: 512, FourProbability: 0.10},
				{Name: "The Climb", Target: 1024, FourProbability: 0.10},
				{Name: "Classic 2048", Target: 2048, FourProbability: 0.10},
				{Name: "Beyond Limits", Target: 4096, FourProbability: 0.12},
				{Name: "Master Class", Target: 8192, FourProbability: 0.15},
				{Name: "Expert Challenge", Target: 8192, FourProbability: 0.18},
				{Name: "Grandmaster", Target: 8192, FourProbability: 0.20},
				{Name: "Ultimate Champion", Target: 8192, FourProbability: 0.25},
			},
		},
		Theme: ThemeConfig{
			Tiles: map[int]string{
				2:    "#eee4da",
				4:    "#ede0c8",
				8:    "#f2b179",
				16:   "#f59563",
				32:   "#f67c5f",
				64:   "#f65e3b",
				128:  "#edcf72",
				256:  "#edcc61",
				512:  "#edc850",
				1024: "#edc53f",
				2048: "#edc22e",
			},
			Empty:    "#cdc1b4",
			Super:    "#3c3a32",
			Text:     "#776e65",
			DarkText: "#f9f6f2",
			Grid:     "#bbada0",
			Accent:   "#edc22e",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
