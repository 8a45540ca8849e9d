package model

// ProphecySource identifies where a prophecy note came from
type ProphecySource string

const (
	ProphecyHeuristic    ProphecySource = "heuristic" // Derived from a pattern in the script
	ProphecyRandomCorpus ProphecySource = "corpus"    // Drawn from the fixed risk corpus
)

// ProphecyNote is one speculative, non-blocking observation about future risk
type ProphecyNote struct {
	Source ProphecySource `json:"source"`
	Text   string         `json:"text"`
}

// Vision is the complete output of a prophecy pass.
// ComplexFunctions is counted but contributes no note; it is surfaced only
// so callers can observe it.
type Vision struct {
	Notes            []ProphecyNote `json:"notes"`
	ComplexFunctions int            `json:"complex_functions"`
}
