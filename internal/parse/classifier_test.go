package parse

import (
	"reflect"
	"strings"
	"testing"

	"github.com/divinelang/divinepl/internal/model"
)

func TestClassifier_BasicClassification(t *testing.T) {
	classifier := NewClassifier()

	script := `// DivinePL script
bless Program {

let light = createLight();
miracle heal(brokenSystem) {
covenant("This system shall be restored");
}`

	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(scroll.Statements) != 5 {
		t.Fatalf("Expected 5 statements, got %d", len(scroll.Statements))
	}

	// Line numbers are 1-based and keep gaps for skipped lines
	wantLines := []int{2, 4, 5, 6, 7}
	for i, stmt := range scroll.Statements {
		if stmt.LineNum != wantLines[i] {
			t.Errorf("Statement %d: expected line %d, got %d", i, wantLines[i], stmt.LineNum)
		}
	}

	// Flags are derived at classification time
	for _, stmt := range scroll.Statements {
		switch stmt.LineNum {
		case 5:
			if !stmt.IsMiracle {
				t.Errorf("Line 5 should carry the miracle flag")
			}
		case 6:
			if !stmt.IsCovenant {
				t.Errorf("Line 6 should carry the covenant flag")
			}
			if stmt.IsMiracle {
				t.Errorf("Line 6 should not carry the miracle flag")
			}
		}
	}
}

func TestClassifier_EmptyInput(t *testing.T) {
	classifier := NewClassifier()

	scroll, err := classifier.Classify("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scroll.Statements) != 0 {
		t.Errorf("Expected no statements for empty input, got %d", len(scroll.Statements))
	}
}

func TestClassifier_LineNumbersStrictlyIncreasing(t *testing.T) {
	classifier := NewClassifier()

	script := "let a = 1\n\n// comment\nlet b = 2\nlet c = 3"
	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	prev := 0
	for _, stmt := range scroll.Statements {
		if stmt.LineNum <= prev {
			t.Errorf("Line numbers not strictly increasing: %d after %d", stmt.LineNum, prev)
		}
		prev = stmt.LineNum
	}
}

func TestClassifier_PrayerBlockSuppression(t *testing.T) {
	classifier := NewClassifier()

	script := strings.Join([]string{
		"let before = 1",
		BeginPrayerMarker,
		"Lord, guide this program",
		"function unblessed() { }", // looks like a violation, must stay suppressed
		EndPrayerMarker,
		"let after = 2",
	}, "\n")

	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(scroll.Statements) != 2 {
		t.Fatalf("Expected 2 statements, got %d", len(scroll.Statements))
	}
	if scroll.Statements[0].LineNum != 1 || scroll.Statements[1].LineNum != 6 {
		t.Errorf("Expected statements at lines 1 and 6, got %d and %d",
			scroll.Statements[0].LineNum, scroll.Statements[1].LineNum)
	}

	// Interior lines are captured, in order, but never become statements
	wantPrayers := []string{"Lord, guide this program", "function unblessed() { }"}
	if !reflect.DeepEqual(scroll.PrayerLines, wantPrayers) {
		t.Errorf("Expected prayer lines %v, got %v", wantPrayers, scroll.PrayerLines)
	}
}

func TestClassifier_UnterminatedBlockSwallowsRemainder(t *testing.T) {
	classifier := NewClassifier()

	script := strings.Join([]string{
		BeginPrayerMarker,
		"let a = 1",
		"let b = 2",
		"let c = 3",
	}, "\n")

	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scroll.Statements) != 0 {
		t.Errorf("Expected no statements after unterminated begin marker, got %d", len(scroll.Statements))
	}
}

func TestClassifier_EndMarkerWithoutBeginIsNoOp(t *testing.T) {
	classifier := NewClassifier()

	script := EndPrayerMarker + "\nlet a = 1"
	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scroll.Statements) != 1 {
		t.Fatalf("Expected 1 statement, got %d", len(scroll.Statements))
	}
	if scroll.Statements[0].LineNum != 2 {
		t.Errorf("Expected statement at line 2, got %d", scroll.Statements[0].LineNum)
	}
}

func TestClassifier_DevotionalLineFullyConsumed(t *testing.T) {
	classifier := NewClassifier()

	// The line mentions function without blessing, but the devotional prefix
	// consumes it before any flag or rule can see it
	script := "🙏 bless this function without keywords 🙏"
	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scroll.Statements) != 0 {
		t.Errorf("Expected no statements for a devotional line, got %d", len(scroll.Statements))
	}
}

func TestClassifier_StatementCountNeverExceedsNonEmptyLines(t *testing.T) {
	classifier := NewClassifier()

	script := "let a = 1\n\n// c\n🙏 amen\nlet b = 2\n   \n"
	nonEmpty := 0
	for _, line := range strings.Split(script, "\n") {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}

	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scroll.Statements) > nonEmpty {
		t.Errorf("Got %d statements from %d non-empty lines", len(scroll.Statements), nonEmpty)
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	classifier := NewClassifier()

	script := strings.Join([]string{
		"// header",
		BeginPrayerMarker,
		"guide us",
		EndPrayerMarker,
		`revelation("The system lives")`,
		"let light = true",
	}, "\n")

	first, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classification is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestClassifier_AnnouncementExtraction(t *testing.T) {
	classifier := NewClassifier()

	script := strings.Join([]string{
		`revelation("Security vulnerabilities shall arise in v1.2")`,
		`print("hello world")`,
		`let x = 1`,
	}, "\n")

	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(scroll.Announcements) != 2 {
		t.Fatalf("Expected 2 announcements, got %d", len(scroll.Announcements))
	}
	if scroll.Announcements[0].Kind != model.AnnouncementRevelation ||
		scroll.Announcements[0].Message != "Security vulnerabilities shall arise in v1.2" {
		t.Errorf("Unexpected first announcement: %+v", scroll.Announcements[0])
	}
	if scroll.Announcements[1].Kind != model.AnnouncementPrint ||
		scroll.Announcements[1].Message != "hello world" {
		t.Errorf("Unexpected second announcement: %+v", scroll.Announcements[1])
	}
}

func TestClassifier_ExtractionOnCommentAndDevotionalLines(t *testing.T) {
	classifier := NewClassifier()

	script := strings.Join([]string{
		`// revelation("from a comment")`,
		`🙏 print("from a devotion") 🙏`,
	}, "\n")

	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(scroll.Statements) != 0 {
		t.Errorf("Expected no statements, got %d", len(scroll.Statements))
	}
	if len(scroll.Announcements) != 2 {
		t.Fatalf("Expected 2 announcements, got %d", len(scroll.Announcements))
	}
}

func TestClassifier_NoExtractionInsidePrayerBlock(t *testing.T) {
	classifier := NewClassifier()

	script := strings.Join([]string{
		BeginPrayerMarker,
		`revelation("suppressed")`,
		EndPrayerMarker,
	}, "\n")

	scroll, err := classifier.Classify(script)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scroll.Announcements) != 0 {
		t.Errorf("Expected no announcements from inside a prayer block, got %d", len(scroll.Announcements))
	}
}

func TestExtractBetween_FirstOpenFirstClose(t *testing.T) {
	// Two opening tokens, one close after both: the first opening token wins
	line := `revelation("first") plus revelation("second`
	got, ok := extractBetween(line, `revelation("`, `")`)
	if !ok {
		t.Fatal("Expected an extraction")
	}
	if got != "first" {
		t.Errorf("Expected 'first', got %q", got)
	}

	// Missing close token: silently no extraction
	if _, ok := extractBetween(`revelation("never closed`, `revelation("`, `")`); ok {
		t.Error("Expected no extraction without a closing token")
	}

	// Missing open token
	if _, ok := extractBetween(`plain line")`, `revelation("`, `")`); ok {
		t.Error("Expected no extraction without an opening token")
	}
}
