package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/divinelang/divinepl/internal/pipeline"
	"github.com/divinelang/divinepl/internal/worker"
)

var (
	outJSON     string
	outMD       string
	outputDir   string
	concurrency int
	noCache     bool
)

// confessCmd represents the confess command
var confessCmd = &cobra.Command{
	Use:   "confess <path>...",
	Short: "Confess the sins of one or more DivinePL scripts",
	Long: `Confess examines scripts for sins without executing them. Every sin is
reported: venial sins can be forgiven with minor modifications, mortal
sins require repentance before execution.

Directories are walked for .divine and .dpl scripts. Multiple scripts
are confessed concurrently.

Example:
  divinepl confess genesis.divine
  divinepl confess genesis.divine --json report.json --md report.md
  divinepl confess ./scriptures --concurrency 8 --output-dir ./reports`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConfess,
}

func init() {
	rootCmd.AddCommand(confessCmd)

	confessCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (single script only)")
	confessCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (single script only)")
	confessCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory for per-script reports")
	confessCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent confessors (default from config)")
	confessCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the confession cache")
}

func runConfess(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if noCache {
		cfg.Cache.Enabled = false
	}
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	runtime := pipeline.NewRuntime(cfg)
	console := runtime.Console()
	ctx := context.Background()

	paths, err := worker.ExpandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no DivinePL scripts found in the given paths")
	}

	console.ConfessionBegin()

	if len(paths) == 1 {
		report, err := runtime.ConfessScript(ctx, paths[0])
		if err != nil {
			return err
		}
		return runtime.RenderConfession(report, outJSON, outMD)
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	batch := worker.NewBatchConfessor(runtime, cfg.Concurrency.Workers)
	results := batch.ConfessPaths(ctx, paths)

	// Completion order is nondeterministic; report in path order.
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	failures := 0
	sinful := 0
	for _, result := range results {
		fmt.Printf("\n── %s\n", result.Path)
		if result.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		jsonPath, mdPath := "", ""
		if outputDir != "" {
			slug := scriptSlug(result.Path)
			jsonPath = filepath.Join(outputDir, slug+".json")
			mdPath = filepath.Join(outputDir, slug+".md")
		}
		if err := runtime.RenderConfession(result.Report, jsonPath, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			failures++
			continue
		}
		if result.Report.TotalSins() > 0 {
			sinful++
		}
	}

	fmt.Printf("\nConfessed %d scripts: %d sinful, %d failed\n", len(results), sinful, failures)
	if failures > 0 {
		return fmt.Errorf("%d scripts could not be confessed", failures)
	}
	return nil
}

// scriptSlug derives a report file stem from a script path
func scriptSlug(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
