package parse

import (
	"strings"

	"github.com/divinelang/divinepl/internal/model"
)

// Script markers. Prayer block markers must match the whole trimmed line;
// the devotional prefix matches any line opening with the glyph.
const (
	BeginPrayerMarker = "🙏 BEGIN PRAYER 🙏"
	EndPrayerMarker   = "🙏 END PRAYER 🙏"
	DevotionalPrefix  = "🙏"
	CommentPrefix     = "//"
)

// Inline call delimiters for announcement extraction
const (
	revelationOpen = `revelation("`
	printOpen      = `print("`
	callClose      = `")`
)

// Classifier converts raw DivinePL script text into classified statements
type Classifier struct{}

// NewClassifier creates a new classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify walks the script line by line and produces the ordered statement
// sequence plus the announcement side channel. Lines inside a prayer block are
// suppressed entirely, whatever their content. Classification never fails on
// malformed input; the error return exists for callers that thread I/O
// failures through the same path.
func (c *Classifier) Classify(content string) (*model.Scroll, error) {
	scroll := &model.Scroll{}
	inPrayer := false

	for i, raw := range strings.Split(content, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)

		if line == "" {
			continue
		}

		if line == BeginPrayerMarker {
			inPrayer = true
			continue
		}

		if line == EndPrayerMarker {
			// Closing an unopened block is a no-op
			inPrayer = false
			continue
		}

		if inPrayer {
			scroll.PrayerLines = append(scroll.PrayerLines, line)
			continue
		}

		// Announcement extraction runs on every line that survives block
		// suppression, including devotional and comment lines
		if msg, ok := extractBetween(line, revelationOpen, callClose); ok {
			scroll.Announcements = append(scroll.Announcements, model.Announcement{
				LineNum: lineNum,
				Kind:    model.AnnouncementRevelation,
				Message: msg,
			})
		}
		if msg, ok := extractBetween(line, printOpen, callClose); ok {
			scroll.Announcements = append(scroll.Announcements, model.Announcement{
				LineNum: lineNum,
				Kind:    model.AnnouncementPrint,
				Message: msg,
			})
		}

		// A devotional line is fully consumed; its content never reaches the
		// rule engine
		if strings.HasPrefix(line, DevotionalPrefix) {
			continue
		}

		if strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		scroll.Statements = append(scroll.Statements, model.Statement{
			LineNum:       lineNum,
			Content:       line,
			HasRevelation: strings.Contains(line, "revelation"),
			IsMiracle:     strings.HasPrefix(line, "miracle"),
			IsCovenant:    strings.Contains(line, "covenant") || strings.Contains(line, "promise"),
		})
	}

	return scroll, nil
}

// extractBetween returns the text between the first occurrence of start and
// the first occurrence of end after it. Not greedy and not balanced: two
// opening tokens on one line resolve to the first.
func extractBetween(s, start, end string) (string, bool) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}
