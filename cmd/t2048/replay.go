package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

var flagMoves string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a move list without the UI",
	Long: `Start a classic game from a seed, apply each move in order and print the
board and score after every step. Stops early when no move is possible.

Moves are letters (U, D, L, R) or words separated by commas or spaces.

Examples:
  t2048 replay --seed 7 --moves LLURDD
  t2048 replay --seed 7 --moves "left, up, right"`,
	Args: cobra.NoArgs,
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to apply, e.g. LURD or left,up")
	//nolint:errcheck // flag is defined above
	replayCmd.MarkFlagRequired("moves")
}

func runReplay(cmd *cobra.Command, _ []string) {
	moves, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	policy := engine.SpawnPolicy{FourProbability: appConfig.Spawn.FourProbability}

	logger.Debug("replay", "seed", seed, "moves", len(moves))
	replay(cmd.OutOrStdout(), seed, policy, moves)
}

// parseMoves accepts either a run of direction letters ("LURD") or
// separated tokens ("left,up r").
func parseMoves(s string) ([]engine.Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("no moves given")
	}

	var tokens []string
	if strings.ContainsAny(s, ", \t") {
		tokens = strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
	} else {
		for _, r := range s {
			tokens = append(tokens, string(r))
		}
	}

	moves := make([]engine.Direction, 0, len(tokens))
	for i, tok := range tokens {
		dir, err := engine.ParseDirection(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, dir)
	}
	return moves, nil
}

// replay plays moves on a fresh seeded game and writes every step to w.
// Returns the engine in its final state.
func replay(w io.Writer, seed int64, policy engine.SpawnPolicy, moves []engine.Direction) *engine.Engine {
	eng := engine.New(engine.WithSeed(seed), engine.WithSpawnPolicy(policy))

	fmt.Fprintf(w, "seed %d\n", seed)
	fmt.Fprintf(w, "%s\nscore 0\n", eng.Grid())

	for i, dir := range moves {
		changed := eng.ApplyMove(dir)
		if changed {
			eng.SpawnTile()
		}

		note := ""
		if !changed {
			note = " (no change)"
		}
		fmt.Fprintf(w, "\n#%d %s%s\n%s\nscore %d\n", i+1, dir, note, eng.Grid(), eng.Score())

		if eng.IsGameOver() {
			fmt.Fprintf(w, "\ngame over after %d moves, final score %d\n", i+1, eng.Score())
			return eng
		}
	}
	return eng
}
