// ecosort is a waste-sorting arcade game for the terminal.
//
// Usage:
//
//	ecosort                  - Pick a mode from the menu
//	ecosort play [mode]      - Play a mode directly (default: ecosort)
//	ecosort list             - List available modes
//	ecosort scores [mode]    - Show the best runs for a mode
//	ecosort config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.ecosort/scores.db)
//	--log <path>    - Set log file (default: ~/.ecosort/ecosort.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/ecosort/internal/games/ecosort"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string

	// logger writes to a file; the terminal belongs to the game.
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecosort",
	Short: "EcoSort - sort falling waste before the city drowns in it",
	Long: `EcoSort is a terminal arcade game about recycling.

Waste falls from the sky. Click an item, then click the bin it belongs in.
Sort correctly to build your reputation, clear three phases of growing
difficulty and finally face the Landfill Baron.

Available commands:
  play     - Play a mode directly
  list     - Show all available modes
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  ecosort
  ecosort play
  ecosort play ecosort_arcade --difficulty hard
  ecosort scores ecosort`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ecosort/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.ecosort/ecosort.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger opens the log file. Failure leaves logging disabled.
func setupLogger() {
	if flagLogPath == "" {
		return
	}

	path, err := expandHome(flagLogPath)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err == nil {
		logFile, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	logger = log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Prefix:          "ecosort",
		Level:           level,
	})
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
