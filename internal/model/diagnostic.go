package model

import "fmt"

// Severity grades how serious a confessed sin is
type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityVenial Severity = "venial" // Forgivable with minor modifications
	SeverityMortal Severity = "mortal" // Requires repentance before execution
)

// Diagnostic represents one reported rule match
type Diagnostic struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	LineNum  int      `json:"line_num"`
	Message  string   `json:"message"`
}

// HardViolation is a fatal rule match that terminates commandment checking.
// It implements error so it can propagate through the pipeline unchanged.
type HardViolation struct {
	RuleID  string `json:"rule_id"`
	LineNum int    `json:"line_num"`
	Message string `json:"message"`
}

// Error returns the violation as a human-readable terminating error
func (v *HardViolation) Error() string {
	return fmt.Sprintf("%s at line %d", v.Message, v.LineNum)
}

// Report is the complete result of a confession pass
type Report struct {
	Script      string       `json:"script,omitempty"` // Path of the confessed script, if known
	VenialCount int          `json:"venial_count"`
	MortalCount int          `json:"mortal_count"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Penance     []string     `json:"penance,omitempty"` // Suggested remediation, by sin category
}

// TotalSins returns the total number of confessed sins
func (r *Report) TotalSins() int {
	return r.VenialCount + r.MortalCount
}

// Clean reports whether the script is free from mortal sin
func (r *Report) Clean() bool {
	return r.MortalCount == 0
}
