package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    42,
	}
}

// setBoard swaps the game's engine for one holding a known grid.
func setBoard(t *testing.T, g *Game, grid engine.Grid, score int) {
	t.Helper()
	eng, err := engine.NewFromGrid(grid, score, engine.WithSeed(1), engine.WithSpawnPolicy(g.spawnPolicy()))
	if err != nil {
		t.Fatalf("NewFromGrid: %v", err)
	}
	g.eng = eng
}

func TestResetDeterministic(t *testing.T) {
	g1 := NewClassic(config.Default())
	g1.Reset(testRuntime())

	g2 := NewClassic(config.Default())
	g2.Reset(testRuntime())

	if g1.eng.Grid() != g2.eng.Grid() {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.eng.Grid(), g2.eng.Grid())
	}
	if n := g1.eng.Grid().Count(); n != 2 {
		t.Errorf("initial tiles = %d, want 2", n)
	}
}

func TestStepSpawnsOnlyAfterChange(t *testing.T) {
	g := NewClassic(config.Default())
	g.Reset(testRuntime())
	setBoard(t, g, engine.Grid{{2, 2, 0, 0}}, 0)

	res := g.Step(core.FrameOf(core.ActionLeft))
	if !res.Moved {
		t.Fatal("Left on [2,2,0,0] should move")
	}
	if res.State.Score != 4 {
		t.Errorf("score = %d, want 4", res.State.Score)
	}
	if n := g.eng.Grid().Count(); n != 2 {
		t.Errorf("tiles after move = %d, want merged tile plus one spawn", n)
	}

	// Slide into a corner, then repeat the same move: nothing changes, nothing spawns.
	setBoard(t, g, engine.Grid{{4, 0, 0, 0}}, 4)
	before := g.eng.Grid()
	res = g.Step(core.FrameOf(core.ActionLeft))
	if res.Moved {
		t.Error("Left on left-aligned board should not move")
	}
	if g.eng.Grid() != before {
		t.Error("unchanged move must not spawn a tile")
	}
	if g.Snapshot().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Snapshot().Moves)
	}
}

func TestGameOverAfterMoveAndSpawn(t *testing.T) {
	g := NewClassic(config.Default())
	g.Reset(testRuntime())
	setBoard(t, g, engine.Grid{
		{0, 2, 4, 8},
		{16, 32, 64, 128},
		{2, 4, 8, 16},
		{16, 32, 64, 128},
	}, 0)

	res := g.Step(core.FrameOf(core.ActionLeft))
	if !res.Moved {
		t.Fatal("Left should move the top row")
	}
	if !res.State.GameOver {
		t.Fatalf("board should be game over after spawn:\n%v", g.eng.Grid())
	}
	if snap := g.Snapshot(); snap.State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", snap.State)
	}

	// Further moves are ignored.
	before := g.eng.Grid()
	g.Step(core.FrameOf(core.ActionRight))
	if g.eng.Grid() != before {
		t.Error("moves after game over should be ignored")
	}
}

func TestRestart(t *testing.T) {
	g := NewClassic(config.Default())
	g.Reset(testRuntime())
	setBoard(t, g, engine.Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, 512)
	g.gameOver = true

	res := g.Step(core.FrameOf(core.ActionRestart))
	if res.State.GameOver {
		t.Error("restart should clear game over")
	}
	if res.State.Score != 0 {
		t.Errorf("score after restart = %d, want 0", res.State.Score)
	}
	if n := g.eng.Grid().Count(); n != 2 {
		t.Errorf("tiles after restart = %d, want 2", n)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := NewClassic(config.Default())
	g.Reset(testRuntime())
	setBoard(t, g, engine.Grid{{2, 2}}, 0)

	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	if res := g.Step(core.FrameOf(core.ActionLeft)); res.Moved {
		t.Error("moves should be ignored while paused")
	}

	g.Step(core.FrameOf(core.ActionPause))
	if res := g.Step(core.FrameOf(core.ActionLeft)); !res.Moved {
		t.Error("moves should work after unpausing")
	}
}

func TestCampaignProgression(t *testing.T) {
	g := NewCampaign(config.Default())
	g.Reset(testRuntime())
	setBoard(t, g, engine.Grid{{64, 64, 0, 0}}, 100)

	g.Step(core.FrameOf(core.ActionLeft))
	if !g.levelCleared {
		t.Fatal("reaching 128 should clear level 1")
	}
	if snap := g.Snapshot(); snap.State != StateLevelCleared || snap.Target != 128 {
		t.Errorf("snapshot = %+v", snap)
	}

	// Moves are ignored until the player confirms.
	before := g.eng.Grid()
	g.Step(core.FrameOf(core.ActionRight))
	if g.eng.Grid() != before {
		t.Error("moves should be ignored on the level-cleared screen")
	}

	g.Step(core.FrameOf(core.ActionConfirm))
	if g.levelIndex != 1 {
		t.Fatalf("should advance to level 2, got level %d", g.levelIndex+1)
	}
	if g.eng.Score() != 228 {
		t.Errorf("score should carry over, got %d", g.eng.Score())
	}
	if p := g.eng.Policy().FourProbability; p != g.levels[1].Spawn4 {
		t.Errorf("spawn policy = %v, want level 2's %v", p, g.levels[1].Spawn4)
	}
}

func TestCampaignWin(t *testing.T) {
	g := NewCampaign(config.Default())
	g.SetStartLevel(len(g.levels))
	g.Reset(testRuntime())

	if g.levelIndex != len(g.levels)-1 {
		t.Fatalf("start level = %d, want last", g.levelIndex+1)
	}

	setBoard(t, g, engine.Grid{{4096, 4096}}, 0)
	g.Step(core.FrameOf(core.ActionLeft))
	g.Step(core.FrameOf(core.ActionConfirm))

	if !g.won {
		t.Fatal("clearing the last level should win the campaign")
	}
	if !g.State().GameOver {
		t.Error("won campaign should report GameOver to the platform")
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("Snapshot State = %s, want win", g.Snapshot().State)
	}
}

func TestClassicHasNoTarget(t *testing.T) {
	g := NewClassic(config.Default())
	g.Reset(testRuntime())
	setBoard(t, g, engine.Grid{{4096, 4096}}, 0)

	g.Step(core.FrameOf(core.ActionLeft))
	if g.levelCleared || g.won {
		t.Error("classic mode should not have level cleared or win states")
	}
	if snap := g.Snapshot(); snap.Level != 0 || snap.Target != 0 || snap.MaxTile != 8192 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestClassicSpawnFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.FourProbability = 0
	g := NewClassic(cfg)
	g.Reset(testRuntime())

	grid := g.eng.Grid()
	for y := 0; y < engine.Size; y++ {
		for x := 0; x < engine.Size; x++ {
			if grid[y][x] == 4 {
				t.Fatalf("four_probability 0 spawned a 4:\n%v", grid)
			}
		}
	}
}

func TestSetStartLevelOutOfRange(t *testing.T) {
	g := NewCampaign(config.Default())
	g.SetStartLevel(99)
	g.Reset(testRuntime())
	if g.levelIndex != 0 {
		t.Errorf("out-of-range start level should reset to 1, got %d", g.levelIndex+1)
	}
}

func TestRender(t *testing.T) {
	g := NewClassic(config.Default())
	cfg := testRuntime()
	g.Reset(cfg)
	setBoard(t, g, engine.Grid{{2048, 0, 0, 0}}, 20000)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 20000", "Best tile: 2048", "2048", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// The tile text carries its tile color.
	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == '2' && c.Color == core.ColorTile2048 {
				found = true
			}
		}
	}
	if !found {
		t.Error("2048 tile should be drawn in ColorTile2048")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := NewClassic(config.Default())
	cfg := testRuntime()
	g.Reset(cfg)
	setBoard(t, g, engine.Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, 1234)
	g.gameOver = true

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Final Score: 1234") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestTooSmall(t *testing.T) {
	g := NewClassic(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %s, want paused_small_window", g.Snapshot().State)
	}
	if res := g.Step(core.FrameOf(core.ActionLeft)); res.Moved {
		t.Error("moves should be ignored when the window is too small")
	}

	g.Resize(80, 24)
	if g.Snapshot().State == StatePausedSmall {
		t.Error("Resize to 80x24 should leave the small-window state")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"classic", "campaign"} {
		game, err := registry.Create(id, config.Default())
		if err != nil {
			t.Fatalf("registry.Create(%s): %v", id, err)
		}
		if game.ID() != id {
			t.Errorf("ID() = %s, want %s", game.ID(), id)
		}
	}
}

func TestLevels(t *testing.T) {
	levels := Levels(config.Default())
	if len(levels) != 10 {
		t.Fatalf("Levels() length = %d, want 10", len(levels))
	}
	if levels[0].Name != "Warm-up" || levels[0].ID != 1 || levels[0].Target != 128 {
		t.Errorf("first level = %+v", levels[0])
	}
}
