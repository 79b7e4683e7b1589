package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/orbitview/internal/cli"
	"github.com/philipparndt/orbitview/internal/touch"
	"github.com/spf13/cobra"
)

var settingsFlags cli.SettingsFlags

var rootCmd = &cobra.Command{
	Use:   "orbitview-touch <file>",
	Short: "Touch-screen orbit viewer: one finger rotates, two fingers pinch to zoom and pan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := settingsFlags.Load()
		if err != nil {
			return err
		}
		return touch.Run(args[0], settings)
	},
	SilenceUsage: true,
}

func main() {
	settingsFlags.Register(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
