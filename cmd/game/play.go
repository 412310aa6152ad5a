package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/critterquest/internal/application/game"
)

var (
	flagLevel  int
	flagRecord string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the title screen, or directly at an unlocked level.

Controls:
  Arrows/WASD   - Move, jump (up) and crouch (down)
  Shift         - Run with the speed boots
  E             - Use a switch
  Esc           - In-game menu
  P             - Toggle debug drawing

Examples:
  critterquest play
  critterquest play --level 4
  critterquest play --level 1 --record run.json`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (must be unlocked)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the controls of each level to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	env := a.env()
	if flagLevel > 0 {
		levels := env.EnsureLevels()
		if !levels.Has(flagLevel) {
			return fmt.Errorf("level %d does not exist", flagLevel)
		}
		if !levels.IsUnlocked(flagLevel) {
			return fmt.Errorf("level %d is locked", flagLevel)
		}
	}

	return a.run(env, flagLevel, game.Options{RecordPath: flagRecord})
}
