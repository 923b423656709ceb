package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
)

// Game implements the 2048 puzzle game.
type Game struct {
	mode   Mode
	eng    *engine.Engine
	spawn4 float64 // Classic mode spawn probability
	levels []Level
	moves  uint64

	levelIndex int // Current level (0-indexed)
	startLevel int // Level to start from on reset (0-indexed)

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool
	tooSmall     bool
}

// NewClassic creates a classic 2048 game: play until no move is possible.
func NewClassic(cfg config.Config) *Game {
	return &Game{
		mode:   ModeClassic,
		spawn4: cfg.Spawn.FourProbability,
	}
}

// NewCampaign creates a campaign game over the configured levels.
func NewCampaign(cfg config.Config) *Game {
	return &Game{
		mode:   ModeCampaign,
		spawn4: cfg.Spawn.FourProbability,
		levels: Levels(cfg),
	}
}

func init() {
	registry.Register(registry.Info{
		ID:          string(ModeClassic),
		Title:       "2048",
		Description: "Merge tiles until the board locks up",
	}, func(cfg config.Config) registry.Game {
		return NewClassic(cfg)
	})
	registry.Register(registry.Info{
		ID:          string(ModeCampaign),
		Title:       "2048 Campaign",
		Description: "Reach the target tile on each level",
	}, func(cfg config.Config) registry.Game {
		return NewCampaign(cfg)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "2048 Campaign"
	}
	return "2048"
}

// SetStartLevel sets the campaign level (1-based) the next Reset starts from.
// Out-of-range values start from the first level.
func (g *Game) SetStartLevel(level int) {
	if level < 1 || level > len(g.levels) {
		g.startLevel = 0
		return
	}
	g.startLevel = level - 1
}

// Reset initializes the game with a fresh engine seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.levelIndex = g.startLevel
	g.eng = engine.New(
		engine.WithSeed(cfg.Seed),
		engine.WithSpawnPolicy(g.spawnPolicy()),
	)
	g.clearFlags()
	g.checkScreenSize()
}

// Resize updates screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// restart begins a new game on the same engine and random stream.
func (g *Game) restart() {
	g.levelIndex = g.startLevel
	g.eng.SetPolicy(g.spawnPolicy())
	g.eng.NewGame()
	g.clearFlags()
}

func (g *Game) clearFlags() {
	g.moves = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
}

// spawnPolicy returns the spawn policy for the current mode and level.
func (g *Game) spawnPolicy() engine.SpawnPolicy {
	if g.mode == ModeCampaign && g.levelIndex < len(g.levels) {
		return engine.SpawnPolicy{FourProbability: g.levels[g.levelIndex].Spawn4}
	}
	return engine.SpawnPolicy{FourProbability: g.spawn4}
}

// currentTarget returns the active level's target, or 0 outside campaign.
func (g *Game) currentTarget() int {
	if g.mode != ModeCampaign || g.levelIndex >= len(g.levels) {
		return 0
	}
	return g.levels[g.levelIndex].Target
}

// checkScreenSize checks if the screen is large enough for board, HUD and hints.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// directionFor maps an input frame to a move. The first match wins.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

// Step applies one input frame.
// A tile spawns only when the move changed the board; the terminal state
// is checked after the spawn.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart is available at any time
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		if in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// processMove applies a move, spawns on change and updates end conditions.
func (g *Game) processMove(dir engine.Direction) bool {
	if !g.eng.ApplyMove(dir) {
		// Board didn't change - no spawn
		return false
	}

	g.moves++
	g.eng.SpawnTile()

	if target := g.currentTarget(); target > 0 && g.eng.MaxTile() >= target {
		g.levelCleared = true
		return true
	}

	if g.eng.IsGameOver() {
		g.gameOver = true
	}
	return true
}

// advanceLevel moves to the next level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false

	if g.levelIndex >= len(g.levels)-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.eng.SetPolicy(g.spawnPolicy())

	// The kept board may already satisfy the next target or be locked.
	if g.eng.MaxTile() >= g.currentTarget() {
		g.levelCleared = true
		return
	}
	if g.eng.IsGameOver() {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.eng != nil {
		score = g.eng.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
