package cmd

import (
	"github.com/philipparndt/orbitview/pkg/replay"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a gesture script without a window and print the final camera state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := replay.LoadScript(args[0])
		if err != nil {
			return err
		}
		result, err := replay.Run(script)
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
