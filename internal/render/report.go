package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/divinelang/divinepl/internal/model"
)

// ReportWriter renders confession reports to files
type ReportWriter struct {
	includeFooter bool
}

// NewReportWriter creates a report writer
func NewReportWriter(includeFooter bool) *ReportWriter {
	return &ReportWriter{includeFooter: includeFooter}
}

// WriteJSON writes the report as indented JSON
func (w *ReportWriter) WriteJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// WriteMarkdown writes the report as a Markdown confession record
func (w *ReportWriter) WriteMarkdown(report *model.Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(w.Markdown(report)), 0o644); err != nil {
		return fmt.Errorf("failed to write Markdown report: %w", err)
	}
	return nil
}

// Markdown renders the report body
func (w *ReportWriter) Markdown(report *model.Report) string {
	var b strings.Builder

	b.WriteString("# Confession Report\n\n")
	if report.Script != "" {
		fmt.Fprintf(&b, "**Script:** `%s`\n\n", report.Script)
	}

	if report.TotalSins() == 0 {
		b.WriteString("Your code is free from sin and ready for divine execution.\n")
	} else {
		fmt.Fprintf(&b, "**Sins found:** %d (%d venial, %d mortal)\n\n",
			report.TotalSins(), report.VenialCount, report.MortalCount)

		b.WriteString("## Sins\n\n")
		b.WriteString("| Line | Severity | Rule | Message |\n")
		b.WriteString("|------|----------|------|---------|\n")
		for _, d := range report.Diagnostics {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", d.LineNum, d.Severity, d.RuleID, d.Message)
		}
		b.WriteString("\n")

		if len(report.Penance) > 0 {
			b.WriteString("## Suggested Penance\n\n")
			for _, line := range report.Penance {
				fmt.Fprintf(&b, "- %s\n", line)
			}
			b.WriteString("\n")
		}
	}

	if w.includeFooter {
		fmt.Fprintf(&b, "\n---\n*Confessed by divinepl on %s*\n", time.Now().Format("2006-01-02"))
	}

	return b.String()
}
