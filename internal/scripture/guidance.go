package scripture

import (
	"sort"
	"strings"
)

// Search finds verses for a topic: an exact key match wins, otherwise every
// verse whose key or text mentions the topic matches. Results are ordered by
// topic key so output is stable.
func Search(topic string) []VerseMatch {
	needle := strings.ToLower(topic)

	if verse, ok := verses[needle]; ok {
		return []VerseMatch{{Topic: needle, Verse: verse}}
	}

	var matches []VerseMatch
	for key, verse := range verses {
		if strings.Contains(key, needle) || strings.Contains(strings.ToLower(verse), needle) {
			matches = append(matches, VerseMatch{Topic: key, Verse: verse})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Topic < matches[j].Topic })
	return matches
}

// Guidance returns the programming guidance lines for a topic
func Guidance(topic string) []string {
	switch strings.ToLower(topic) {
	case "error", "errors", "bug", "bugs", "exception":
		return []string{
			"In DivinePL, errors are treated as sins to be confessed, not exceptions to be caught.",
			"Use 'confess { ... }' instead of 'try { ... } catch { ... }'",
			"Remember: To err is human, to forgive divine, to handle errors properly, divine programming.",
		}
	case "loop", "loops", "iteration":
		return []string{
			"Loops in DivinePL should be created with divine purpose and always include a path to termination.",
			"For infinite is the kingdom of heaven, but finite should be thy loops.",
			"Consider using 'blessing' loops that process each item with reverence.",
		}
	case "function", "functions", "method", "methods":
		return []string{
			"Functions in DivinePL must be blessed to receive divine optimization.",
			"Use 'bless functionName() { ... }' for regular functions.",
			"Use 'miracle functionName() { ... }' for functions that perform extraordinary operations.",
			"Use 'genesis() { ... }' for program entry points.",
		}
	case "variable", "variables", "let", "const":
		return []string{
			"Variables in DivinePL are vessels of divine data.",
			"Use 'let' for mutable variables (as in 'Let there be light').",
			"Use 'covenant' for constants that shall not be broken.",
			"Avoid unholy variable names that invoke sin or blasphemy.",
		}
	default:
		return []string{
			"The path of righteous code is illuminated through clarity and purpose.",
			"Seek to write your code as a testament to divine order and comprehension.",
			"Remember that all DivinePL code must rest on the Sabbath (unless overridden in dev mode).",
		}
	}
}

// DivineTodos is the fixed TODO list appended to every prophecy
var DivineTodos = []string{
	"Add more comprehensive error confession throughout the codebase.",
	"Implement divine logging for better visibility into runtime behavior.",
	"Create a test suite with divine assertions to verify righteousness.",
	"Consider implementing the Holy Trinity pattern for better code organization.",
	"Add performance blessings to intensive operations.",
}

// FinalRevelation picks the closing prophecy flavor: a 70% chance of the
// hopeful reading.
func FinalRevelation(picker Picker) (string, bool) {
	if picker.Intn(10) < 7 {
		return "This codebase is destined for divine greatness, but must overcome trials of complexity and technical debt. Stay true to the righteous path of clean code and divine principles.", true
	}
	return "Beware! This codebase walks a narrow path between salvation and damnation. Major restructuring will be required before reaching the promised land of production readiness.", false
}

// Salvation decides judgment day: revelation mode improves the odds from 75%
// to 90%.
func Salvation(picker Picker, revelation bool) bool {
	if revelation {
		return picker.Intn(100) < 90
	}
	return picker.Intn(100) < 75
}
