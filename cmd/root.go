package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/orbitview/internal/app"
	"github.com/philipparndt/orbitview/internal/cli"
	"github.com/spf13/cobra"
)

var (
	settingsFlags cli.SettingsFlags
	watch         bool
)

var rootCmd = &cobra.Command{
	Use:   "orbitview <file>",
	Short: "Orbit, pan and zoom around STL meshes and PCD point clouds",
	Long: `orbitview opens a 3D viewer for STL meshes and PCD point clouds.

The camera is fitted to the object's bounding box. Drag with the left button
to rotate, with the right button to pan, and scroll to zoom.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := settingsFlags.Load()
		if err != nil {
			return err
		}
		return app.Run(app.Config{
			Path:     args[0],
			Settings: settings,
			Flags:    &settingsFlags,
			Watch:    watch,
		})
	},
}

func init() {
	settingsFlags.Register(rootCmd)
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the model and settings file when they change")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
