// Package rules evaluates the commandment catalog against classified
// statements. Check is the fail-fast fold used before execution; Confess is
// the accumulate-all fold behind the confession ritual. Both walk the same
// descriptor catalog in order.
package rules

import (
	"github.com/divinelang/divinepl/internal/model"
)

// Engine evaluates the rule catalog in both modes
type Engine struct {
	catalog    []Descriptor
	permissive bool
}

// NewEngine creates an engine. The permissive flag downgrades dev-forgivable
// fatal rules to warnings in commandment mode; confession ignores it.
func NewEngine(permissive bool) *Engine {
	return &Engine{
		catalog:    Catalog(),
		permissive: permissive,
	}
}

// Check runs commandment mode: rules in catalog order, statements in sequence
// order within each rule. The first fatal match aborts and is returned as a
// *model.HardViolation; warnings accumulated up to that point are returned
// alongside it so the caller can still report them.
func (e *Engine) Check(statements []model.Statement, doc string) ([]model.Diagnostic, error) {
	var warnings []model.Diagnostic

	for _, rule := range e.catalog {
		if rule.Commandment == ActionNone {
			continue
		}
		for _, stmt := range statements {
			if !rule.Matches(stmt, doc) {
				continue
			}

			fatal := rule.Commandment == ActionFatal
			message := rule.CommandmentMessage
			if fatal && rule.DevDowngrade && e.permissive {
				fatal = false
				message = rule.DowngradeMessage
			}

			if fatal {
				return warnings, &model.HardViolation{
					RuleID:  rule.ID,
					LineNum: stmt.LineNum,
					Message: message,
				}
			}

			warnings = append(warnings, model.Diagnostic{
				RuleID:   rule.ID,
				Severity: model.SeverityInfo,
				LineNum:  stmt.LineNum,
				Message:  message,
			})
		}
	}

	return warnings, nil
}

// Confess runs confession mode: every match of every confessable rule becomes
// a diagnostic, nothing short-circuits, and the report always completes.
// Diagnostics appear in catalog order, then statement order within a rule, and
// are never deduplicated.
func (e *Engine) Confess(statements []model.Statement, doc string) *model.Report {
	report := &model.Report{}

	for _, rule := range e.catalog {
		if rule.ConfessionSeverity == "" {
			continue
		}
		for _, stmt := range statements {
			if !rule.Matches(stmt, doc) {
				continue
			}

			report.Diagnostics = append(report.Diagnostics, model.Diagnostic{
				RuleID:   rule.ID,
				Severity: rule.ConfessionSeverity,
				LineNum:  stmt.LineNum,
				Message:  rule.ConfessionMessage,
			})

			switch rule.ConfessionSeverity {
			case model.SeverityVenial:
				report.VenialCount++
			case model.SeverityMortal:
				report.MortalCount++
			}
		}
	}

	report.Penance = Penance(report)
	return report
}

// CheckCovenants returns the statements carrying the covenant flag. Purely
// observational: it never fails and never blocks execution.
func (e *Engine) CheckCovenants(statements []model.Statement) []model.Statement {
	var covenants []model.Statement
	for _, stmt := range statements {
		if stmt.IsCovenant {
			covenants = append(covenants, stmt)
		}
	}
	return covenants
}
