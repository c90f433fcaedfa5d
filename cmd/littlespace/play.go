package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/StevenRydell/littlespace/internal/audio"
	"github.com/StevenRydell/littlespace/internal/config"
	"github.com/StevenRydell/littlespace/internal/core"
	"github.com/StevenRydell/littlespace/internal/games/circle"
	"github.com/StevenRydell/littlespace/internal/games/flight"
	"github.com/StevenRydell/littlespace/internal/games/skirmish"
	"github.com/StevenRydell/littlespace/internal/platform/tui"
	"github.com/StevenRydell/littlespace/internal/platform/window"
	"github.com/StevenRydell/littlespace/internal/registry"
	"github.com/StevenRydell/littlespace/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagSound      bool
	flagVolume     float64
)

// Grid used for the desktop window: 800x480 pixels.
const (
	windowCols = 100
	windowRows = 30
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a demo",
	Long: `Start playing the specified demo.

Controls:
  W/Up, S/Down  - Thrust forward / reverse
  A/Left, D/Right - Rotate
  Space/F       - Fire
  P/Esc         - Pause
  R             - Restart (after game over)
  Ctrl+S        - Screenshot (terminal only)
  Q/Ctrl+C      - Quit

Difficulty options (skirmish, asked for in the terminal when not given):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  littlespace play circle
  littlespace play flight --window
  littlespace play skirmish --difficulty hard
  littlespace play skirmish --window --sound
  littlespace play skirmish --config ./my-skirmish.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects (window only)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Sound volume in log2 steps (-1 halves, 1 doubles)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fail("unknown game %q\nRun 'littlespace list' to see available demos.", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fail("%v", err)
	}
	if flagDifficulty != "" && !info.Difficulty {
		fail("%s has no difficulty presets", info.Title)
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "circle":
		circle.SetConfigPath(flagConfig)
	case "flight":
		flight.SetConfigPath(flagConfig)
	case "skirmish":
		skirmish.SetConfigPath(flagConfig)
		skirmish.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := play(game); err != nil {
		fail("running game: %v", err)
	}
}

// play runs game in the terminal or a window. Everything it opens is closed
// before it returns.
func play(game registry.Game) error {
	// The terminal belongs to the game, so only a log file gets output
	var fallback io.Writer = io.Discard
	if flagWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
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

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagWindow {
		cfg.ScreenW, cfg.ScreenH = windowCols, windowRows
		opts := window.Options{Logger: logger}
		if flagSound {
			player := audio.NewPlayer(flagVolume)
			if err := player.Init(); err != nil {
				logger.Warn("sound disabled", "error", err)
			} else {
				defer player.Close()
				opts.Sound = player
			}
		}
		return window.Run(game, store, cfg, opts)
	}

	if flagSound {
		logger.Warn("--sound only works with --window")
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Without --difficulty, games with presets ask for one first
	if ds, ok := game.(registry.DifficultySetter); ok && flagDifficulty == "" {
		preset, err := tui.RunDifficultySelector(game.Title(), cfg)
		if err != nil {
			return err
		}
		if preset == nil {
			return nil
		}
		if err := ds.SetDifficulty(string(*preset)); err != nil {
			return err
		}
	}
	return tui.Run(game, store, cfg, tui.Options{Logger: logger})
}
