// critterquest is a side-scrolling platformer: guide the critter through
// fifteen levels of gems, enemies and bosses.
//
// Usage:
//
//	critterquest                    - Start at the title screen
//	critterquest play --level <n>   - Start at an unlocked level
//	critterquest levels             - Show saved level progress
//	critterquest reset              - Erase saved progress
//	critterquest replay <file>      - Play back a recorded level
//
// Global flags:
//
//	--config <path>     - Settings file (default: search ~/.critterquest, ./configs, embedded)
//	--assets <dir>      - Directory with art, audio and level maps (default: ./assets)
//	--save <path>       - Save database (default: from settings)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagSave     string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "critterquest",
	Short: "Critter Quest - a side-scrolling platformer",
	Long: `Critter Quest is a side-scrolling platformer. Run without a command to
start at the title screen.

Available commands:
  play     - Start the game, optionally at a given level
  levels   - Show saved level progress
  reset    - Erase saved progress
  replay   - Play back a recorded level

Examples:
  critterquest
  critterquest play --level 3
  critterquest play --record run.json
  critterquest replay run.json
  critterquest levels --save ./save.db`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings file")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Directory of art, audio and level maps")
	rootCmd.PersistentFlags().StringVar(&flagSave, "save", "", "Path to the save database (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(replayCmd)
}
