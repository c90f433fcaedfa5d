package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/platform/tui"
	"github.com/StevenRydell/littlespace/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Little Space with a demo picker menu",
	Long: `Start Little Space in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a demo.
Skirmish asks for a difficulty before it starts.
Press B while paused or after game over to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select demo
  Tab          - Scoreboard
  Q            - Quit

Examples:
  littlespace menu
  littlespace menu --fps 30
  littlespace menu --db ./scores.db`,
	Run: runMenu,
}

// runMenu uses only the global flags from main.go.
func runMenu(_ *cobra.Command, _ []string) {
	if err := menu(); err != nil {
		fail("%v", err)
	}
}

func menu() error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	return tui.RunSession(store, cfg, logger)
}
