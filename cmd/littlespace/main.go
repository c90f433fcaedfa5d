// littlespace runs small arcade space demos in the terminal or a window.
//
// Usage:
//
//	littlespace list              - List available demos
//	littlespace play <game>       - Play a demo
//	littlespace menu              - Pick demos interactively
//	littlespace serve             - Start SSH server for remote play
//	littlespace scores <game>     - Show high scores and run stats
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.littlespace/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write the log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/StevenRydell/littlespace/internal/games/circle"
	_ "github.com/StevenRydell/littlespace/internal/games/flight"
	_ "github.com/StevenRydell/littlespace/internal/games/skirmish"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "littlespace",
	Short: "Little Space - arcade space demos for your terminal",
	Long: `Little Space is a handful of small space demos that run in the
terminal, over SSH, or in a desktop window.

Available commands:
  list     - Show all available demos
  play     - Play a specific demo directly
  menu     - Interactive demo picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run stats

Examples:
  littlespace list
  littlespace play skirmish
  littlespace play flight --window
  littlespace menu
  littlespace serve --ssh :2222
  littlespace scores skirmish`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.littlespace/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the log to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger. Without --log-file the log goes to
// fallback, which is io.Discard while a full-screen program owns the terminal.
// The returned close func must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "littlespace",
		Level:           level,
	})
	return logger, closer, nil
}

// fail prints err the way every subcommand reports errors and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
