// Package engine implements the 2048 board engine: move resolution, merging,
// scoring, tile spawning and terminal-state detection on a fixed 4x4 grid.
// It has no UI dependencies; the platform layer renders its state.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Grid is a 4x4 board. 0 is an empty cell; other values are powers of 2.
type Grid [Size][Size]int

// Row is a single line of the grid, always read left to right.
type Row [Size]int

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ErrInvalidDirection is returned when a direction name cannot be parsed.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// ErrInvalidTile is returned when a grid holds a value that is not 0 or a power of 2 >= 2.
var ErrInvalidTile = errors.New("engine: invalid tile value")

// Directions lists all four directions in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection accepts full names ("up", "Left") or single letters
// ("u", "d", "l", "r"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// compress slides non-zero values to the left, keeping their order.
func compress(row Row) Row {
	var out Row
	n := 0
	for _, v := range row {
		if v != 0 {
			out[n] = v
			n++
		}
	}
	return out
}

// merge scans left to right and combines equal neighbours once.
// The right cell of each merged pair is zeroed, so the scan never
// re-examines a value produced by a merge in the same pass.
func merge(row Row) (Row, int) {
	gained := 0
	for i := 0; i < Size-1; i++ {
		if row[i] != 0 && row[i] == row[i+1] {
			row[i] *= 2
			gained += row[i]
			row[i+1] = 0
		}
	}
	return row, gained
}

// moveRowLeft applies compress, merge, compress to one row.
func moveRowLeft(row Row) (Row, int) {
	merged, gained := merge(compress(row))
	return compress(merged), gained
}

func transpose(g Grid) Grid {
	var out Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			out[y][x] = g[x][y]
		}
	}
	return out
}

// reverseRows reverses the order of the rows.
func reverseRows(g Grid) Grid {
	var out Grid
	for y := 0; y < Size; y++ {
		out[y] = g[Size-1-y]
	}
	return out
}

// reverseEachRow mirrors the grid left to right.
func reverseEachRow(g Grid) Grid {
	var out Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			out[y][x] = g[y][Size-1-x]
		}
	}
	return out
}

// orient rotates the grid so that moving in dir becomes a left move.
func orient(g Grid, dir Direction) Grid {
	switch dir {
	case Up:
		return transpose(g)
	case Down:
		return transpose(reverseRows(g))
	case Right:
		return reverseEachRow(g)
	default:
		return g
	}
}

// restore is the inverse of orient.
func restore(g Grid, dir Direction) Grid {
	switch dir {
	case Up:
		return transpose(g)
	case Down:
		return reverseRows(transpose(g))
	case Right:
		return reverseEachRow(g)
	default:
		return g
	}
}

// Slide resolves a move on g without spawning.
// Returns the new grid, the score gained and whether any cell changed.
// An invalid direction returns g unchanged.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	if !dir.Valid() {
		return g, 0, false
	}

	oriented := orient(g, dir)
	gained := 0
	for y := 0; y < Size; y++ {
		row, score := moveRowLeft(Row(oriented[y]))
		oriented[y] = row
		gained += score
	}

	next := restore(oriented, dir)
	return next, gained, next != g
}

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g Grid) HasEmptyCell() bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically
// adjacent cells hold equal values.
func (g Grid) HasPossibleMerge() bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			val := g[y][x]
			if x < Size-1 && g[y][x+1] == val {
				return true
			}
			if y < Size-1 && g[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether no move can change the grid.
func (g Grid) IsTerminal() bool {
	return !g.HasEmptyCell() && !g.HasPossibleMerge()
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			maxVal = max(maxVal, g[y][x])
		}
	}
	return maxVal
}

// Count returns the number of non-empty cells.
func (g Grid) Count() int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// Validate checks that every non-zero cell is a power of 2 >= 2.
func (g Grid) Validate() error {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !IsTileValue(g[y][x]) && g[y][x] != 0 {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidTile, g[y][x], x, y)
			}
		}
	}
	return nil
}

// IsTileValue reports whether v is a power of 2 >= 2.
func IsTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// String renders the grid as four space-separated rows, "." for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if g[y][x] == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
				continue
			}
			sb.WriteString(fmt.Sprintf("%5d", g[y][x]))
		}
	}
	return sb.String()
}
