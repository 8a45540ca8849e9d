package rules

import "github.com/divinelang/divinepl/internal/model"

// Static penance text, selected by sin category presence rather than per
// diagnostic.
var (
	venialPenance = []string{
		"Replace 'var' with 'let' and add proper blessings to functions",
		"Avoid infinite loops by adding faithful termination conditions",
	}
	mortalPenance = []string{
		"Rename blasphemous variables to virtuous alternatives",
		"Replace 'try/catch' with 'confess' for proper error handling",
		"Remove all 'kill' statements and implement graceful process lifecycle",
	}
)

// Penance suggests remediation for a confession report. A clean report gets
// no penance.
func Penance(report *model.Report) []string {
	var suggestions []string
	if report.VenialCount > 0 {
		suggestions = append(suggestions, venialPenance...)
	}
	if report.MortalCount > 0 {
		suggestions = append(suggestions, mortalPenance...)
	}
	return suggestions
}
