package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/critterquest/internal/domain/progress"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show saved level progress",
	Long:  `Prints every level with its lock state and best time, the way the level select screen shows them.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	levels := progress.Default(a.settings.Levels.Count, a.settings.Levels.BossLevels)
	saved, err := a.saves.HasSavedGame()
	if err != nil {
		return err
	}
	if saved {
		if levels, err = a.saves.LoadGame(); err != nil {
			return err
		}
	}
	printLevels(cmd.OutOrStdout(), levels)
	return nil
}

func printLevels(w io.Writer, levels progress.LevelState) {
	for _, n := range levels.Levels() {
		line := levels.Describe(n)
		if levels.HasEndBoss(n) {
			line += " [boss]"
		}
		fmt.Fprintln(w, line)
	}
}
