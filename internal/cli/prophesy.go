package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/divinelang/divinepl/internal/pipeline"
)

// prophesyCmd represents the prophesy command
var prophesyCmd = &cobra.Command{
	Use:   "prophesy <path>",
	Short: "Receive prophecies about a script's future",
	Long: `Prophesy reads a script and speaks of its future: risks foretold from
its patterns, divine TODOs, and a final revelation. Prophecies never
block execution.

Example:
  divinepl prophesy genesis.divine`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runtime := pipeline.NewRuntime(buildConfig())
		return runtime.Prophesy(context.Background(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(prophesyCmd)
}
