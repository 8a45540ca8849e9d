package prophecy

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/divinelang/divinepl/internal/model"
)

// fixedPicker always returns the same index
type fixedPicker struct{ n int }

func (p fixedPicker) Intn(int) int { return p.n }

func TestProphet_HeuristicNotes(t *testing.T) {
	prophet := NewProphet()

	doc := "while (running) { process(data) }\nlet x = 1"
	vision := prophet.Prophesy(nil, doc, fixedPicker{0})

	var heuristicNotes []string
	for _, note := range vision.Notes {
		if note.Source == model.ProphecyHeuristic {
			heuristicNotes = append(heuristicNotes, note.Text)
		}
	}

	// while without break, let without covenant, data without validate
	if len(heuristicNotes) != 3 {
		t.Fatalf("Expected 3 heuristic notes, got %d: %v", len(heuristicNotes), heuristicNotes)
	}

	// Heuristics fire in fixed order
	if !strings.Contains(heuristicNotes[0], "Infinite loop") {
		t.Errorf("Expected the loop heuristic first, got %q", heuristicNotes[0])
	}
	if !strings.Contains(heuristicNotes[1], "covenant") {
		t.Errorf("Expected the covenant heuristic second, got %q", heuristicNotes[1])
	}
	if !strings.Contains(heuristicNotes[2], "validation") {
		t.Errorf("Expected the validation heuristic third, got %q", heuristicNotes[2])
	}
}

func TestProphet_NoHeuristicsOnQuietScript(t *testing.T) {
	prophet := NewProphet()

	doc := "covenant speaks, validate everything, break when done"
	vision := prophet.Prophesy(nil, doc, fixedPicker{0})

	for _, note := range vision.Notes {
		if note.Source == model.ProphecyHeuristic {
			t.Errorf("Expected no heuristic notes, got %q", note.Text)
		}
	}
}

func TestProphet_ModularizationHeuristicNeedsLongScript(t *testing.T) {
	prophet := NewProphet()

	long := strings.Repeat("covenant validate break\n", 101)
	vision := prophet.Prophesy(nil, long, fixedPicker{0})

	found := false
	for _, note := range vision.Notes {
		if note.Source == model.ProphecyHeuristic && strings.Contains(note.Text, "modularization") {
			found = true
		}
	}
	if !found {
		t.Error("Expected the modularization heuristic for a >100 line script")
	}
}

func TestProphet_TrailingNewlineDoesNotInflateLineCount(t *testing.T) {
	prophet := NewProphet()

	// Exactly 100 lines, final newline included; still short of the threshold
	exact := strings.Repeat("covenant validate break\n", 100)
	vision := prophet.Prophesy(nil, exact, fixedPicker{0})

	for _, note := range vision.Notes {
		if note.Source == model.ProphecyHeuristic && strings.Contains(note.Text, "modularization") {
			t.Error("A 100-line script ending in a newline should not trigger modularization")
		}
	}
}

func TestLineCount(t *testing.T) {
	cases := []struct {
		doc  string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"one\n", 1},
		{"one\ntwo", 2},
		{"one\ntwo\n", 2},
	}
	for _, tc := range cases {
		if got := lineCount(tc.doc); got != tc.want {
			t.Errorf("lineCount(%q) = %d, want %d", tc.doc, got, tc.want)
		}
	}
}

func TestProphet_AlwaysThreeCorpusDraws(t *testing.T) {
	prophet := NewProphet()

	vision := prophet.Prophesy(nil, "covenant validate break", fixedPicker{2})

	corpus := 0
	for _, note := range vision.Notes {
		if note.Source == model.ProphecyRandomCorpus {
			corpus++
			if note.Text != riskCorpus[2] {
				t.Errorf("Expected corpus entry %q, got %q", riskCorpus[2], note.Text)
			}
		}
	}
	if corpus != 3 {
		t.Errorf("Expected exactly 3 corpus notes, got %d", corpus)
	}
}

func TestProphet_CorpusNotesFollowHeuristicNotes(t *testing.T) {
	prophet := NewProphet()

	vision := prophet.Prophesy(nil, "while forever", fixedPicker{0})

	seenCorpus := false
	for _, note := range vision.Notes {
		if note.Source == model.ProphecyRandomCorpus {
			seenCorpus = true
		}
		if note.Source == model.ProphecyHeuristic && seenCorpus {
			t.Fatal("Heuristic note appeared after a corpus note")
		}
	}
}

func TestProphet_DeterministicWithSeededSource(t *testing.T) {
	prophet := NewProphet()
	doc := "while (true) { let data = read() }"

	first := prophet.Prophesy(nil, doc, rand.New(rand.NewSource(7)))
	second := prophet.Prophesy(nil, doc, rand.New(rand.NewSource(7)))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical visions for identical seeds:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestProphet_ComplexFunctionCounterNeverEmitsNotes(t *testing.T) {
	prophet := NewProphet()

	long := "function " + strings.Repeat("x", 120)
	statements := []model.Statement{
		{LineNum: 1, Content: long},
		{LineNum: 2, Content: "items.map(item => item)"},
		{LineNum: 3, Content: "short => x"},
	}

	vision := prophet.Prophesy(statements, "covenant validate break", fixedPicker{0})

	// Only the long declaration qualifies: keyword plus length
	if vision.ComplexFunctions != 1 {
		t.Errorf("Expected 1 complex function, got %d", vision.ComplexFunctions)
	}
	for _, note := range vision.Notes {
		if strings.Contains(note.Text, "complex") {
			t.Errorf("Complex-function counter must not emit notes, got %q", note.Text)
		}
	}
}
