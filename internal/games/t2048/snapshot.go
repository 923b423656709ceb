package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Moves   uint64 // Moves that changed the board
	Mode    string // "classic" or "campaign"
	Level   int    // Current level (1-indexed), 0 for classic
	Target  int    // Current target tile value, 0 for classic
	Score   int
	Board   engine.Grid
	MaxTile int // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Moves:   g.moves,
		Mode:    string(g.mode),
		Score:   g.eng.Score(),
		Board:   g.eng.Grid(),
		MaxTile: g.eng.MaxTile(),
		State:   state,
	}
	if g.mode == ModeCampaign {
		snap.Level = g.levelIndex + 1
		snap.Target = g.currentTarget()
	}
	return snap
}
