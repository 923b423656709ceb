package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagLevel    int
	flagDebugLog string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play 2048",
	Long: `Start playing. Without a mode, a menu lets you pick one.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Enter            - Continue after clearing a campaign level
  P                - Pause
  R                - Restart
  Esc/B            - Back to menu (when paused or game over)
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play classic
  t2048 play campaign --level 3
  t2048 play classic --seed 42 --debug-log t2048.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-based)")
	playCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Write logs to this file while the game runs")
}

func runPlay(_ *cobra.Command, args []string) {
	// Logging to the terminal would corrupt the alt screen
	gameLogger := log.New(io.Discard)
	if flagDebugLog != "" {
		f, err := tea.LogToFile(flagDebugLog, "t2048")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		gameLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "t2048",
			Level:           logger.GetLevel(),
		})
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	theme := tui.NewTheme(appConfig.Theme, nil)

	var runErr error
	if len(args) == 0 {
		runErr = tui.RunSession(appConfig, rc, theme, gameLogger)
	} else {
		game, err := registry.Create(args[0], appConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available modes.")
			os.Exit(1)
		}
		if g, ok := game.(*t2048.Game); ok && flagLevel > 0 {
			g.SetStartLevel(flagLevel)
		}
		runErr = tui.Run(game, rc, theme, gameLogger)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
