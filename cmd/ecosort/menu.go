package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecosort/internal/platform/tui"
)

func init() {
	addGameFlags(rootCmd)
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
}

// runMenu shows the mode picker until the player quits.
// After a game ends, the player returns to the menu.
func runMenu(_ *cobra.Command, _ []string) {
	if err := checkGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	player := newAudio()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			if err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		// Fresh seed for each game unless one was given
		runCfg := cfg
		runCfg.Seed = flagSeed
		if err := playMode(menuResult.GameID, store, player, runCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			logger.Error("game failed", "mode", menuResult.GameID, "error", err)
		}
	}

	// Cleanup
	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}
}
