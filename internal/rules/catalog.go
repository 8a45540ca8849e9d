package rules

import (
	"strings"

	"github.com/divinelang/divinepl/internal/model"
)

// Action is what a commandment rule does when it matches
type Action int

const (
	ActionNone  Action = iota // Rule is not part of commandment checking
	ActionWarn                // Reported, evaluation continues
	ActionFatal               // Terminates checking immediately
)

// Descriptor defines one rule of the shared catalog: a predicate plus its
// per-mode behavior. Commandment checking and confession evaluate the same
// predicates; they differ only in severity mapping and failure policy, and
// that divergence is deliberate configuration, not drift.
type Descriptor struct {
	ID      string
	Matches func(stmt model.Statement, doc string) bool

	// Commandments mode
	Commandment        Action
	DevDowngrade       bool // Fatal becomes a warning when the permissive flag is set
	CommandmentMessage string
	DowngradeMessage   string

	// Confession mode. Empty severity means the rule is not confessed.
	ConfessionSeverity model.Severity
	ConfessionMessage  string
}

// Catalog returns the ordered rule catalog. Evaluation order follows slice
// order in both modes.
func Catalog() []Descriptor {
	return []Descriptor{
		{
			ID: "blessing",
			Matches: func(stmt model.Statement, _ string) bool {
				return strings.Contains(stmt.Content, "function") &&
					!(strings.Contains(stmt.Content, "bless") ||
						strings.Contains(stmt.Content, "genesis") ||
						strings.Contains(stmt.Content, "miracle"))
			},
			Commandment:        ActionFatal,
			CommandmentMessage: "SinError: Function lacks divine blessing",
			ConfessionSeverity: model.SeverityVenial,
			ConfessionMessage:  "Function lacks divine blessing",
		},
		{
			ID: "kill-process",
			Matches: func(stmt model.Statement, _ string) bool {
				return strings.Contains(stmt.Content, "kill") &&
					strings.Contains(stmt.Content, "Process")
			},
			Commandment:        ActionFatal,
			DevDowngrade:       true,
			CommandmentMessage: "MoralError: Thou shalt not kill child processes",
			DowngradeMessage:   "Attempting to kill a child process is sinful, but permitted in dev mode",
			ConfessionSeverity: model.SeverityMortal,
			ConfessionMessage:  "Thou shalt not kill processes",
		},
		{
			ID: "blasphemy",
			Matches: func(stmt model.Statement, _ string) bool {
				for _, name := range forbiddenNames {
					if strings.Contains(stmt.Content, "let "+name) ||
						strings.Contains(stmt.Content, "var "+name) {
						return true
					}
				}
				return false
			},
			Commandment:        ActionFatal,
			CommandmentMessage: "BlasphemyError: Unholy variable names",
			ConfessionSeverity: model.SeverityMortal,
			ConfessionMessage:  "Blasphemous variable name detected",
		},
		{
			ID: "trinity",
			Matches: func(stmt model.Statement, _ string) bool {
				return strings.Contains(stmt.Content, "trinity") &&
					!(strings.Contains(stmt.Content, "father") &&
						strings.Contains(stmt.Content, "son") &&
						strings.Contains(stmt.Content, "holy"))
			},
			Commandment:        ActionWarn,
			CommandmentMessage: "Trinity pattern is incomplete. Father, Son, and Holy Ghost are required",
			// No confession equivalent
		},
		{
			ID: "secular-var",
			Matches: func(stmt model.Statement, _ string) bool {
				return strings.Contains(stmt.Content, "var") &&
					!strings.Contains(stmt.Content, "let")
			},
			ConfessionSeverity: model.SeverityVenial,
			ConfessionMessage:  "Use 'let' instead of secular 'var'",
		},
		{
			ID: "infinite-loop",
			Matches: func(stmt model.Statement, _ string) bool {
				return strings.Contains(stmt.Content, "while(true)") ||
					strings.Contains(stmt.Content, "while (true)")
			},
			ConfessionSeverity: model.SeverityVenial,
			ConfessionMessage:  "Infinite loops show lack of faith in termination",
		},
		{
			ID: "unconfessed-error",
			Matches: func(stmt model.Statement, doc string) bool {
				// Examines the whole scroll, not just the statement: every
				// try is a sin while the document lacks a confess anywhere
				return strings.Contains(stmt.Content, "try") &&
					!strings.Contains(doc, "confess")
			},
			ConfessionSeverity: model.SeverityMortal,
			ConfessionMessage:  "Errors must be confessed, not caught",
		},
	}
}

// forbiddenNames is the identifier denylist for the blasphemy rule
var forbiddenNames = []string{"devil", "satan", "demon"}
