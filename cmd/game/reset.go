package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase saved progress",
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.saves.EraseSaveGame(); err != nil {
		return fmt.Errorf("failed to erase progress: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Progress erased.")
	return nil
}
