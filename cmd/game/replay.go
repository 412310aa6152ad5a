package main

import (
	"github.com/spf13/cobra"

	"github.com/younwookim/critterquest/internal/application/game"
	"github.com/younwookim/critterquest/internal/application/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded level",
	Long: `Plays the level stored in a recording made with 'play --record'. The
window closes when the recording ends or the level is left.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("replaying", "file", args[0], "level", data.Level, "frames", len(data.Frames))
	return a.run(a.env(), data.Level, game.Options{Replay: replay.NewReplayer(*data)})
}
