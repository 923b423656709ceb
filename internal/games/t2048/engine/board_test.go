package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestMoveRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
		score    int
	}{
		{
			name:     "simple merge",
			input:    Row{2, 2, 0, 0},
			expected: Row{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "three equal tiles do not chain",
			input:    Row{2, 2, 2, 0},
			expected: Row{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    Row{2, 2, 2, 2},
			expected: Row{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "compress before merge",
			input:    Row{0, 2, 0, 2},
			expected: Row{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not merge again",
			input:    Row{4, 4, 8, 0},
			expected: Row{8, 8, 0, 0},
			score:    8,
		},
		{
			name:     "two different pairs",
			input:    Row{2, 2, 4, 4},
			expected: Row{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "no merge possible",
			input:    Row{2, 4, 8, 16},
			expected: Row{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "empty row",
			input:    Row{0, 0, 0, 0},
			expected: Row{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    Row{0, 0, 0, 8},
			expected: Row{8, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := moveRowLeft(tt.input)
			if result != tt.expected {
				t.Errorf("moveRowLeft(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("moveRowLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestCompress(t *testing.T) {
	got := compress(Row{0, 4, 0, 2})
	if want := (Row{4, 2, 0, 0}); got != want {
		t.Errorf("compress = %v, want %v", got, want)
	}
}

func TestOrientRestoreRoundTrip(t *testing.T) {
	g := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{2, 0, 4, 0},
	}

	for _, dir := range Directions {
		if got := restore(orient(g, dir), dir); got != g {
			t.Errorf("restore(orient(g, %s)) = \n%v\nwant\n%v", dir, got, g)
		}
	}
}

func TestSlideDirections(t *testing.T) {
	start := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected Grid
		score    int
	}{
		{
			dir: Left,
			expected: Grid{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 20,
		},
		{
			dir: Right,
			expected: Grid{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 20,
		},
		{
			dir: Up,
			expected: Grid{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 8,
		},
		{
			dir: Down,
			expected: Grid{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, score, changed := Slide(start, tt.dir)
			if result != tt.expected {
				t.Errorf("Slide(%s): got\n%v\nwant\n%v", tt.dir, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Slide(%s) score = %d, want %d", tt.dir, score, tt.score)
			}
			if !changed {
				t.Errorf("Slide(%s) should report a change", tt.dir)
			}
		})
	}
}

func TestSlideUpSingleColumn(t *testing.T) {
	g := Grid{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score, changed := Slide(g, Up)

	expected := Grid{{4}}
	if result != expected {
		t.Errorf("Slide(Up): got\n%v\nwant\n%v", result, expected)
	}
	if score != 4 || !changed {
		t.Errorf("Slide(Up) score=%d changed=%v, want 4 true", score, changed)
	}

	// Same answer as moving the transposed row left.
	row, rowScore := moveRowLeft(Row{2, 2, 0, 0})
	for y := 0; y < Size; y++ {
		if result[y][0] != row[y] {
			t.Errorf("column %v does not match transposed row %v", result, row)
		}
	}
	if rowScore != score {
		t.Errorf("row score %d != column score %d", rowScore, score)
	}
}

func TestSlideDownOrder(t *testing.T) {
	// The bottom pair merges first when moving down.
	g := Grid{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _, _ := Slide(g, Down)
	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
	}
	if result != expected {
		t.Errorf("Slide(Down): got\n%v\nwant\n%v", result, expected)
	}
}

func TestSlideUnchanged(t *testing.T) {
	g := Grid{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score, changed := Slide(g, Left)
	if changed {
		t.Error("Slide(Left) should not change left-aligned tiles")
	}
	if result != g || score != 0 {
		t.Errorf("Slide(Left) = %v, %d; want input unchanged and 0", result, score)
	}
}

func TestSlideInvalidDirection(t *testing.T) {
	g := Grid{{2, 2}}
	result, score, changed := Slide(g, Direction(42))
	if changed || score != 0 || result != g {
		t.Errorf("Slide with invalid direction must be a no-op, got %v %d %v", result, score, changed)
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		terminal bool
	}{
		{
			name: "packed with no merges",
			grid: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			terminal: true,
		},
		{
			name: "horizontal pair",
			grid: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 65536, 65536},
			},
			terminal: false,
		},
		{
			name: "vertical pair in last column",
			grid: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 4096},
			},
			terminal: false,
		},
		{
			name: "one empty cell",
			grid: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			terminal: false,
		},
		{
			name:     "empty grid",
			grid:     Grid{},
			terminal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
		})
	}
}

// bruteForceTerminal restates the game-over rule cell by cell.
func bruteForceTerminal(g Grid) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == 0 {
				return false
			}
		}
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size-1; x++ {
			if g[y][x] == g[y][x+1] {
				return false
			}
		}
	}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size-1; y++ {
			if g[y][x] == g[y+1][x] {
				return false
			}
		}
	}
	return true
}

func randomGrid(rng *rand.Rand, emptyWeight, values int) Grid {
	var g Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if rng.Intn(emptyWeight+4) < emptyWeight {
				continue
			}
			g[y][x] = 2 << rng.Intn(values)
		}
	}
	return g
}

func TestIsTerminalMatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		g := randomGrid(rng, i%2, 4)
		if got, want := g.IsTerminal(), bruteForceTerminal(g); got != want {
			t.Fatalf("IsTerminal() = %v, want %v for\n%v", got, want, g)
		}
	}
}

func TestTerminalGridRejectsEveryMove(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	found := 0

	for i := 0; i < 20000 && found < 50; i++ {
		g := randomGrid(rng, 0, 8)
		if !g.IsTerminal() {
			// A full grid with an adjacent pair always has some legal move.
			moved := false
			for _, dir := range Directions {
				if _, _, changed := Slide(g, dir); changed {
					moved = true
				}
			}
			if !moved {
				t.Fatalf("non-terminal full grid has no legal move:\n%v", g)
			}
			continue
		}
		found++
		for _, dir := range Directions {
			if next, score, changed := Slide(g, dir); changed || score != 0 || next != g {
				t.Fatalf("Slide(%s) changed terminal grid\n%v", dir, g)
			}
		}
	}

	if found == 0 {
		t.Fatal("no terminal grids generated")
	}
}

func TestEmptyCells(t *testing.T) {
	g := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := g.EmptyCells()
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{X: 1, Y: 0}) {
		t.Errorf("first empty cell = %+v, want {1 0}", cells[0])
	}
	for _, c := range cells {
		if g[c.Y][c.X] != 0 {
			t.Errorf("cell %+v is not empty", c)
		}
	}
}

func TestMaxTileAndCount(t *testing.T) {
	g := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{0, 0, 0, 0},
	}

	if got := g.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := g.Count(); got != 12 {
		t.Errorf("Count = %d, want 12", got)
	}
}

func TestValidate(t *testing.T) {
	if err := (Grid{{2, 4, 0, 8}}).Validate(); err != nil {
		t.Errorf("Validate() on valid grid: %v", err)
	}

	for _, bad := range []int{1, 3, 6, -2} {
		g := Grid{{bad}}
		if err := g.Validate(); !errors.Is(err, ErrInvalidTile) {
			t.Errorf("Validate() with %d = %v, want ErrInvalidTile", bad, err)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", Up},
		{"U", Up},
		{"Down", Down},
		{"l", Left},
		{" right ", Right},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(north) error = %v, want ErrInvalidDirection", err)
	}
}
