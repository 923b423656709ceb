package engine

import (
	"math/rand"
)

// Engine owns a 2048 grid and score and applies moves to them.
// It is not safe for concurrent use; callers serialize input.
type Engine struct {
	grid   Grid
	score  int
	rng    RandSource
	policy SpawnPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for spawning.
func WithRand(rng RandSource) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed seeds a math/rand source for spawning.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpawnPolicy sets the spawn policy.
func WithSpawnPolicy(p SpawnPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// New creates an engine and starts a new game, so accessors are always defined.
// Without WithRand or WithSeed the engine uses seed 1.
func New(opts ...Option) *Engine {
	e := newEngine(opts)
	e.NewGame()
	return e
}

// NewFromGrid creates an engine holding the given grid and score without
// spawning. Used to resume a position or to set up a known board.
func NewFromGrid(g Grid, score int, opts ...Option) (*Engine, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if score < 0 {
		score = 0
	}
	e := newEngine(opts)
	e.grid = g
	e.score = score
	return e, nil
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		policy: ClassicSpawn(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(1))
	}
	return e
}

// NewGame clears the grid, resets the score and spawns two tiles.
func (e *Engine) NewGame() {
	e.grid = Grid{}
	e.score = 0
	e.SpawnTile()
	e.SpawnTile()
}

// SpawnTile places a 2 or 4 in a uniformly chosen empty cell.
// On a full grid it does nothing and returns false.
func (e *Engine) SpawnTile() (Cell, bool) {
	empty := e.grid.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[e.rng.Intn(len(empty))]
	e.grid[cell.Y][cell.X] = e.policy.value(e.rng)
	return cell, true
}

// ApplyMove slides and merges in dir and reports whether the grid changed.
// It never spawns; callers spawn only after a change.
// Invalid directions leave the state untouched and return false.
func (e *Engine) ApplyMove(dir Direction) bool {
	next, gained, changed := Slide(e.grid, dir)
	if !changed {
		return false
	}
	e.grid = next
	e.score += gained
	return true
}

// IsGameOver reports whether no empty cell and no adjacent equal pair remain.
func (e *Engine) IsGameOver() bool {
	return e.grid.IsTerminal()
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// MaxTile returns the highest tile on the grid.
func (e *Engine) MaxTile() int {
	return e.grid.MaxTile()
}

// Policy returns the spawn policy in use.
func (e *Engine) Policy() SpawnPolicy {
	return e.policy
}

// SetPolicy changes the spawn policy for subsequent spawns.
func (e *Engine) SetPolicy(p SpawnPolicy) {
	e.policy = p
}

// State is the derived game state.
type State int

const (
	Active State = iota
	Over
)

// String returns the state name.
func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "active"
}

// State computes the current game state.
func (e *Engine) State() State {
	if e.IsGameOver() {
		return Over
	}
	return Active
}
