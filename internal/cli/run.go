package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/divinelang/divinepl/internal/pipeline"
)

var revelationMode bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Interpret a DivinePL script with divine judgment",
	Long: `Run interprets a DivinePL script:
- Classifies each line (prayers, comments, statements)
- Checks the commandments and halts on mortal violations
- Walks the seven stages of creation
- Performs miracles when the script declares them
- Ends in judgment day

Example:
  divinepl run genesis.divine
  divinepl run genesis.divine --verbose
  divinepl run genesis.divine --revelation`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&revelationMode, "revelation", false, "revelation mode: deep divine insight during execution")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	cfg.Output.Revelation = revelationMode

	runtime := pipeline.NewRuntime(cfg)
	return runtime.Run(context.Background(), args[0])
}
