// Package pipeline orchestrates the divinepl commands end to end: reading
// scripture, classification, commandment checking, confession, and prophecy.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/divinelang/divinepl/internal/cache"
	"github.com/divinelang/divinepl/internal/model"
	"github.com/divinelang/divinepl/internal/pace"
	"github.com/divinelang/divinepl/internal/parse"
	"github.com/divinelang/divinepl/internal/prophecy"
	"github.com/divinelang/divinepl/internal/render"
	"github.com/divinelang/divinepl/internal/rules"
	"github.com/divinelang/divinepl/internal/scripture"
)

// creationStages are printed in order during divine execution. Rest comes last.
var creationStages = []string{
	"Creation of light",
	"Separation of waters",
	"Land and vegetation",
	"Celestial bodies",
	"Sea creatures and birds",
	"Land animals and mankind",
	"Rest",
}

// Picker supplies random indices for flavor selection
type Picker interface {
	Intn(n int) int
}

// Runtime orchestrates the complete interpretation process
type Runtime struct {
	classifier *parse.Classifier
	engine     *rules.Engine
	prophet    *prophecy.Prophet
	reader     *Reader
	reports    *cache.LayeredCache // nil when caching is disabled
	pacer      *pace.Pacer
	console    *render.Console
	writer     *render.ReportWriter
	picker     Picker
	config     *model.Config
}

// NewRuntime creates a runtime from configuration, writing console output
// to stdout.
func NewRuntime(cfg *model.Config) *Runtime {
	styles := render.NewStyles(cfg.Output.Color)
	console := render.NewConsole(os.Stdout, styles, cfg.Output.Verbose, cfg.Output.Revelation)

	var reports *cache.LayeredCache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".divinepl", "cache")
			} else {
				dir = filepath.Join(os.TempDir(), "divinepl-cache")
			}
		}
		reports = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
	}

	pacer := pace.NewPacer(cfg.Pacing.StagesPerSecond, cfg.Pacing.Burst)
	if cfg.Output.NoDelay {
		pacer = pace.Disabled()
	}

	return &Runtime{
		classifier: parse.NewClassifier(),
		engine:     rules.NewEngine(cfg.Dev),
		prophet:    prophecy.NewProphet(),
		reader:     NewReader(0),
		reports:    reports,
		pacer:      pacer,
		console:    console,
		writer:     render.NewReportWriter(true),
		picker:     rand.New(rand.NewSource(time.Now().UnixNano())),
		config:     cfg,
	}
}

// Console exposes the runtime's console for command-level output
func (r *Runtime) Console() *render.Console {
	return r.console
}

// Run interprets a script: classification, commandment checking, covenants,
// the stages of creation, miracles, and judgment day.
func (r *Runtime) Run(ctx context.Context, path string) error {
	started := time.Now()

	content, err := r.reader.ReadScript(path)
	if err != nil {
		return err
	}

	r.console.ScriptLoaded()

	scroll, err := r.classifier.Classify(content)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	if r.console.Chatty() && len(scroll.PrayerLines) > 0 {
		r.console.PrayerBlock(scroll.PrayerLines, scripture.PrayerAnswer(r.picker))
	}

	r.console.Announcements(scroll.Announcements)

	warnings, err := r.engine.Check(scroll.Statements, content)
	for _, w := range warnings {
		r.console.Warning(fmt.Sprintf("%s (line %d)", w.Message, w.LineNum))
	}
	if err != nil {
		return err
	}

	r.console.Covenants(r.engine.CheckCovenants(scroll.Statements))

	if err := r.executeWithFaith(ctx, scroll.Statements); err != nil {
		return err
	}

	return r.judgmentDay(time.Since(started))
}

func (r *Runtime) executeWithFaith(ctx context.Context, statements []model.Statement) error {
	for _, stage := range creationStages {
		if err := r.pacer.Wait(ctx); err != nil {
			return err
		}
		r.console.StageBegin(stage)
		r.console.StageDone()
	}

	hasMiracles := false
	for _, stmt := range statements {
		if stmt.IsMiracle {
			hasMiracles = true
			break
		}
	}
	if hasMiracles {
		r.console.MiraclePrologue()
		if err := r.pacer.Wait(ctx); err != nil {
			return err
		}
		r.console.MiraclePerformed(scripture.Miracle(r.picker))
	}

	if !r.console.Chatty() {
		return nil
	}

	for _, stmt := range statements {
		r.console.Statement(stmt)

		if r.config.Output.Revelation && r.picker.Intn(3) == 0 {
			r.console.Insight(scripture.Inspiration(r.picker))
		}
		if r.picker.Intn(10) == 0 {
			r.console.Intervention()
		}
	}
	return nil
}

func (r *Runtime) judgmentDay(elapsed time.Duration) error {
	r.console.JudgmentHeader(elapsed)

	if scripture.Salvation(r.picker, r.config.Output.Revelation) {
		r.console.Ascended(r.config.Output.Revelation)
		return nil
	}

	r.console.Purgatory(r.config.Dev)
	if !r.config.Dev {
		return fmt.Errorf("Your code requires purification before it can be saved.")
	}
	return nil
}

// ConfessScript confesses a single script and returns the full report.
// Reports for unchanged content come from the cache when enabled.
func (r *Runtime) ConfessScript(ctx context.Context, path string) (*model.Report, error) {
	content, err := r.reader.ReadScript(path)
	if err != nil {
		return nil, err
	}

	key := cache.ReportKey(content)
	if r.reports != nil {
		if data, ok := r.reports.Get(key); ok {
			var report model.Report
			if json.Unmarshal(data, &report) == nil {
				report.Script = path
				return &report, nil
			}
		}
	}

	scroll, err := r.classifier.Classify(content)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	report := r.engine.Confess(scroll.Statements, content)
	report.Script = path

	if r.reports != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = r.reports.Set(key, data, r.config.Cache.MemoryTTL)
		}
	}
	return report, nil
}

// RenderConfession prints the confession to the console and writes the
// optional JSON and Markdown reports.
func (r *Runtime) RenderConfession(report *model.Report, jsonPath, mdPath string) error {
	for _, d := range report.Diagnostics {
		r.console.Diagnostic(d)
	}
	r.console.ConfessionSummary(report)

	if jsonPath != "" {
		if err := r.writer.WriteJSON(report, jsonPath); err != nil {
			return err
		}
		if r.config.Output.Verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}
	if mdPath != "" {
		if err := r.writer.WriteMarkdown(report, mdPath); err != nil {
			return err
		}
		if r.config.Output.Verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}
	return nil
}

// Prophesy reads a script and renders its prophetic vision
func (r *Runtime) Prophesy(ctx context.Context, path string) error {
	content, err := r.reader.ReadScript(path)
	if err != nil {
		return err
	}

	r.console.ProphecyBegin()

	scroll, err := r.classifier.Classify(content)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	vision := r.prophet.Prophesy(scroll.Statements, content, r.picker)
	r.console.Prophecies(vision)
	r.console.Todos(scripture.DivineTodos)

	text, hopeful := scripture.FinalRevelation(r.picker)
	r.console.FinalRevelation(text, hopeful)
	return nil
}
