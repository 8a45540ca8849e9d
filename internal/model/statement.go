package model

// Statement represents one classified logical line of a DivinePL script
type Statement struct {
	LineNum       int    `json:"line_num"`                 // 1-based line number in the source scroll
	Content       string `json:"content"`                  // Trimmed line content, never empty
	HasRevelation bool   `json:"has_revelation,omitempty"` // Line mentions a revelation call
	IsMiracle     bool   `json:"is_miracle,omitempty"`     // Line begins with the miracle keyword
	IsCovenant    bool   `json:"is_covenant,omitempty"`    // Line mentions covenant or promise
}

// AnnouncementKind categorizes the inline call an announcement was extracted from
type AnnouncementKind string

const (
	AnnouncementRevelation AnnouncementKind = "revelation" // revelation("...") calls
	AnnouncementPrint      AnnouncementKind = "print"      // print("...") calls
)

// Announcement is a message extracted from an inline call on a script line.
// It is a side channel of classification: a line can produce an announcement
// whether or not it also produced a Statement.
type Announcement struct {
	LineNum int              `json:"line_num"`
	Kind    AnnouncementKind `json:"kind"`
	Message string           `json:"message"`
}

// Scroll is the complete result of classifying one script
type Scroll struct {
	Statements    []Statement    `json:"statements"`
	Announcements []Announcement `json:"announcements,omitempty"`
	PrayerLines   []string       `json:"prayer_lines,omitempty"` // Interior lines of prayer blocks, in order
}
