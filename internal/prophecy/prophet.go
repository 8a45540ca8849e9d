// Package prophecy derives speculative future-risk notes from a classified
// script. Heuristic notes are deterministic; corpus notes come from an
// injected random picker so callers own reproducibility.
package prophecy

import (
	"strings"

	"github.com/divinelang/divinepl/internal/model"
)

// Picker supplies random indices. *math/rand.Rand satisfies it; tests use a
// fixed stub.
type Picker interface {
	Intn(n int) int
}

// heuristic is one presence/absence predicate over the whole scroll text
type heuristic struct {
	applies func(doc string) bool
	note    string
}

// Evaluated in order; predicates are independent and not mutually exclusive.
var heuristics = []heuristic{
	{
		applies: func(doc string) bool {
			return strings.Contains(doc, "while") && !strings.Contains(doc, "break")
		},
		note: "Infinite loop risk detected. Add a divine exit condition to prevent eternal execution.",
	},
	{
		applies: func(doc string) bool {
			return strings.Contains(doc, "let ") && !strings.Contains(doc, "covenant")
		},
		note: "Future maintainers will appreciate constants declared as 'covenant' for important values.",
	},
	{
		applies: func(doc string) bool {
			return lineCount(doc) > 100 && !strings.Contains(doc, "module")
		},
		note: "As this code grows, consider divine modularization through the Holy Trinity pattern.",
	},
	{
		applies: func(doc string) bool {
			return strings.Contains(doc, "data") && !strings.Contains(doc, "validate")
		},
		note: "Future security concerns: add divine validation to all data inputs to prevent unholy injections.",
	},
}

// lineCount counts lines without letting a trailing newline add a phantom
// empty line, so a 100-line file measures the same with or without it
func lineCount(doc string) int {
	if doc == "" {
		return 0
	}
	doc = strings.TrimSuffix(doc, "\n")
	return strings.Count(doc, "\n") + 1
}

// riskCorpus holds the generic prophecies drawn at random for every script
var riskCorpus = []string{
	"The path of deployment shall be fraught with environmental differences. Prepare with containerization.",
	"A great refactoring shall be needed by the third version. Plan accordingly.",
	"Security vulnerabilities shall manifest if input validation is neglected.",
	"The user interface shall require redesign as requirements evolve.",
	"Test coverage will prove insufficient in areas not yet considered.",
	"Technical debt shall accumulate in the areas of error handling.",
	"Documentation shall become outdated unless integrated with the development process.",
	"Dependencies shall age and require updating, bringing both blessings and trials.",
}

// corpusDraws is how many corpus prophecies every vision receives
const corpusDraws = 3

// Prophet generates visions about a script's future
type Prophet struct{}

// NewProphet creates a new prophet
func NewProphet() *Prophet {
	return &Prophet{}
}

// Prophesy evaluates the heuristics against the raw scroll text, then draws
// three corpus prophecies with replacement from the picker. Duplicates across
// draws are permitted. ComplexFunctions is counted but emits no note.
func (p *Prophet) Prophesy(statements []model.Statement, doc string, picker Picker) model.Vision {
	var notes []model.ProphecyNote

	for _, h := range heuristics {
		if h.applies(doc) {
			notes = append(notes, model.ProphecyNote{
				Source: model.ProphecyHeuristic,
				Text:   h.note,
			})
		}
	}

	complexFunctions := 0
	for _, stmt := range statements {
		if (strings.Contains(stmt.Content, "function") || strings.Contains(stmt.Content, "=>")) &&
			len(stmt.Content) > 100 {
			complexFunctions++
		}
	}

	for i := 0; i < corpusDraws; i++ {
		notes = append(notes, model.ProphecyNote{
			Source: model.ProphecyRandomCorpus,
			Text:   riskCorpus[picker.Intn(len(riskCorpus))],
		})
	}

	return model.Vision{
		Notes:            notes,
		ComplexFunctions: complexFunctions,
	}
}
