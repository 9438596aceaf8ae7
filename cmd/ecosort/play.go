package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ecosort/internal/audio"
	"github.com/vovakirdan/ecosort/internal/config"
	"github.com/vovakirdan/ecosort/internal/core"
	"github.com/vovakirdan/ecosort/internal/games/ecosort"
	"github.com/vovakirdan/ecosort/internal/platform/tui"
	"github.com/vovakirdan/ecosort/internal/registry"
	"github.com/vovakirdan/ecosort/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagNoAudio    bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: ecosort).

Modes:
  ecosort         - Story campaign: three phases, then the boss
  ecosort_arcade  - Straight into play, no story screens

Controls:
  Mouse          - Click a waste item, then click its bin
  Enter/Space    - Start, next page, continue
  P/Esc          - Pause
  M              - Mute
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Lower penalties, extra shield charges
  normal - Fall speed starts at 30% of its range
  hard   - Higher penalties and a tougher boss
  fixed  - No speed progression

Examples:
  ecosort play
  ecosort play ecosort_arcade --difficulty hard
  ecosort play --config ./my-ecosort.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
}

// addGameFlags registers the flags that shape the game configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// checkGameFlags validates --config and --difficulty and hands them to the game.
func checkGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}

	ecosort.SetConfigPath(flagConfig)
	ecosort.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newAudio opens the speaker unless disabled.
// Returns nil when the game should stay silent.
func newAudio() *audio.Player {
	if flagNoAudio {
		return nil
	}
	player := audio.NewPlayer(audio.DefaultSampleRate)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return nil
	}
	return player
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := "ecosort"
	if len(args) > 0 {
		mode = args[0]
	}

	// Check if mode exists
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'ecosort list' to see available modes.")
		os.Exit(1)
	}

	if err := checkGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	player := newAudio()

	runErr := playMode(mode, store, player, runtimeConfig())

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playMode creates the mode and runs it until the player quits.
func playMode(mode string, store *storage.Store, player *audio.Player, cfg core.RuntimeConfig) error {
	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	if g, ok := game.(*ecosort.Game); ok {
		if player != nil {
			g.SetAudio(player)
		}
		g.SetMuted(flagMute)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	err = tui.Run(game, store, logger, cfg)
	if player != nil {
		player.PauseMusic()
	}
	return err
}
