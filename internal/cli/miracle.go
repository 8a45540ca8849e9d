package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/divinelang/divinepl/internal/pace"
	"github.com/divinelang/divinepl/internal/render"
	"github.com/divinelang/divinepl/internal/transform"
)

// miracleCmd represents the miracle command
var miracleCmd = &cobra.Command{
	Use:   "miracle <input> [output]",
	Short: "Miraculously transform secular code into DivinePL",
	Long: `Miracle sanctifies secular source code: functions receive blessings,
errors become confessions, and the result is wrapped in prayer. HTML
input has its script elements extracted and transformed.

When output is omitted, the transformed scripture is written next to
the input with a .divine extension.

Example:
  divinepl miracle app.js
  divinepl miracle index.html sanctified.divine`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMiracle,
}

func init() {
	rootCmd.AddCommand(miracleCmd)
}

func runMiracle(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := divineOutputPath(input)
	if len(args) == 2 {
		output = args[1]
	}

	cfg := buildConfig()
	console := render.NewConsole(os.Stdout, render.NewStyles(cfg.Output.Color), cfg.Output.Verbose, false)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("Failed to read secular code: %w", err)
	}
	content := string(data)

	if transform.IsHTMLPath(input) {
		scripts, err := transform.ExtractScripts(content)
		if err != nil {
			return fmt.Errorf("extract scripts: %w", err)
		}
		content = scripts
	}

	console.TransformBegin()

	pacer := pace.NewPacer(cfg.Pacing.StagesPerSecond, cfg.Pacing.Burst)
	if cfg.Output.NoDelay {
		pacer = pace.Disabled()
	}
	ctx := context.Background()
	for phase := 1; phase <= 7; phase++ {
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
		console.TransformPhase(phase)
		console.StageDone()
	}

	sanctified := transform.NewTransformer().Sanctify(content)
	if err := os.WriteFile(output, []byte(sanctified), 0o644); err != nil {
		return fmt.Errorf("Failed to write divine transformation: %w", err)
	}

	console.TransformComplete(output)
	return nil
}

// divineOutputPath swaps the input extension for .divine
func divineOutputPath(input string) string {
	if idx := strings.LastIndex(input, "."); idx > 0 {
		return input[:idx] + ".divine"
	}
	return input + ".divine"
}
