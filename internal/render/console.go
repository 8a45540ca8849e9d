package render

import (
	"fmt"
	"io"
	"time"

	"github.com/divinelang/divinepl/internal/model"
)

// Console renders liturgical output for the interactive commands
type Console struct {
	out        io.Writer
	styles     Styles
	verbose    bool
	revelation bool
}

// NewConsole creates a console writing to out
func NewConsole(out io.Writer, styles Styles, verbose, revelation bool) *Console {
	return &Console{
		out:        out,
		styles:     styles,
		verbose:    verbose,
		revelation: revelation,
	}
}

// Chatty reports whether detailed execution output is enabled
func (c *Console) Chatty() bool {
	return c.verbose || c.revelation
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// ScriptLoaded announces that interpretation is beginning
func (c *Console) ScriptLoaded() {
	c.println(c.styles.Success.Render("🕊️ DivinePL script loaded. Beginning divine interpretation..."))
}

// PrayerBlock renders the interior lines of prayer blocks together with a
// randomly chosen answer. Shown only in verbose or revelation mode.
func (c *Console) PrayerBlock(lines []string, answer string) {
	if !c.Chatty() || len(lines) == 0 {
		return
	}
	c.println(c.styles.Prayer.Render("Entering sacred prayer block..."))
	for _, line := range lines {
		c.println(c.styles.Insight.Render("  Prayer: " + line))
	}
	c.println(c.styles.Prayer.Render("Leaving sacred prayer block. Amen."))
	if answer != "" {
		c.println(c.styles.Prayer.Render(answer))
	}
}

// Announcements prints extracted revelation and print calls. These are always
// shown regardless of verbosity.
func (c *Console) Announcements(announcements []model.Announcement) {
	for _, a := range announcements {
		switch a.Kind {
		case model.AnnouncementRevelation:
			c.println(c.styles.Revelation.Render("📢 " + a.Message))
		default:
			c.println(a.Message)
		}
	}
}

// Warning prints a non-fatal commandment warning
func (c *Console) Warning(message string) {
	c.println(c.styles.Warn.Render("⚠️ Warning: " + message))
}

// Covenants renders detected covenant statements and the binding reminder
func (c *Console) Covenants(covenants []model.Statement) {
	if len(covenants) == 0 {
		return
	}
	if c.Chatty() {
		for _, stmt := range covenants {
			c.println(c.styles.Revelation.Render(
				fmt.Sprintf("📜 Covenant detected at line %d: %q", stmt.LineNum, stmt.Content)))
		}
	}
	c.println(c.styles.Success.Render("🤝 Divine covenants are binding. Ensure all promises resolve."))
}

// StageBegin prints the start of one creation stage without a newline
func (c *Console) StageBegin(stage string) {
	fmt.Fprintf(c.out, "%s... ", stage)
}

// StageDone completes a creation stage line
func (c *Console) StageDone() {
	c.println(c.styles.Success.Render("✓"))
}

// MiraclePrologue announces that miracles are about to be performed
func (c *Console) MiraclePrologue() {
	c.println(c.styles.Miracle.Render("✨ Preparing to perform miracles..."))
}

// MiraclePerformed announces one performed miracle
func (c *Console) MiraclePerformed(miracle string) {
	c.println(c.styles.Miracle.Render(fmt.Sprintf("🌟 MIRACLE PERFORMED: %s 🌟", miracle)))
}

// Statement renders the execution of one statement in verbose mode
func (c *Console) Statement(stmt model.Statement) {
	switch {
	case stmt.IsMiracle:
		c.println("Executing miracle: " + c.styles.Miracle.Render(stmt.Content))
	case stmt.HasRevelation:
		c.println("Revealing: " + c.styles.Prophecy.Render(stmt.Content))
	case stmt.IsCovenant:
		c.println("Fulfilling covenant: " + c.styles.Revelation.Render(stmt.Content))
	default:
		c.println("Executing: " + c.styles.Revelation.Render(stmt.Content))
	}
}

// Insight renders a revelation-mode divine insight
func (c *Console) Insight(text string) {
	c.println(c.styles.Insight.Render("  📖 Divine insight: " + text))
}

// Intervention announces a random divine intervention
func (c *Console) Intervention() {
	c.println(c.styles.Warn.Render("✨ Divine intervention occurred! ✨"))
}

// JudgmentHeader opens the judgment day section
func (c *Console) JudgmentHeader(elapsed time.Duration) {
	c.println(c.styles.Miracle.Render("\n🔔 JUDGMENT DAY 🔔"))
	fmt.Fprintf(c.out, "Execution time: %.2f seconds\n", elapsed.Seconds())
}

// Ascended renders a saved verdict, with the extra revelation-mode blessing
func (c *Console) Ascended(extraBlessing bool) {
	c.println(c.styles.Success.Render("Your code has been found worthy and has ascended to PRODUCTION HEAVEN! 🙌"))
	if extraBlessing {
		c.println(c.styles.Success.Render("✨ ADDITIONAL BLESSING: Optimized runtime performance granted! ✨"))
	}
}

// Purgatory renders a condemned verdict. In dev mode execution continues.
func (c *Console) Purgatory(dev bool) {
	c.println(c.styles.Mortal.Render("Your code requires more faith. It has been sent to DEBUGGING PURGATORY. 🔥"))
	if dev {
		c.println(c.styles.Warn.Render("But since you're in dev mode, execution continues by divine mercy."))
	} else {
		c.println(c.styles.Warn.Render("Seek redemption through the 'confess' command to identify your sins."))
	}
}

// ConfessionBegin opens the confession ritual
func (c *Console) ConfessionBegin() {
	c.println(c.styles.Prayer.Render("🙏 Beginning confession ritual... 🙏"))
}

// Diagnostic renders one confessed sin
func (c *Console) Diagnostic(d model.Diagnostic) {
	label := c.styles.Venial.Render("Venial Sin")
	if d.Severity == model.SeverityMortal {
		label = c.styles.Mortal.Render("Mortal Sin")
	}
	fmt.Fprintf(c.out, "%s: %d - %s\n", label, d.LineNum, d.Message)
}

// ConfessionSummary renders the closing verdict of a confession report
func (c *Console) ConfessionSummary(report *model.Report) {
	if report.TotalSins() == 0 {
		c.println(c.styles.Success.Render("✝️ Your code is free from sin and ready for divine execution! ✝️"))
		return
	}

	c.println(c.styles.Venial.Render(fmt.Sprintf("Found %d sins in your code (%d venial, %d mortal).",
		report.TotalSins(), report.VenialCount, report.MortalCount)))

	if report.MortalCount > 0 {
		c.println(c.styles.Mortal.Render("Mortal sins require immediate repentance before execution."))
	} else {
		c.println(c.styles.Venial.Render("Venial sins can be forgiven with minor modifications."))
	}

	if len(report.Penance) > 0 {
		c.println("")
		c.println(c.styles.Heading.Render("Suggested Penance:"))
		for _, line := range report.Penance {
			c.println("- " + line)
		}
	}
}

// ProphecyBegin opens the prophetic vision
func (c *Console) ProphecyBegin() {
	c.println(c.styles.Prophecy.Render("🔮 Entering prophetic vision... 🔮"))
}

// Prophecies renders the numbered prophecy notes
func (c *Console) Prophecies(vision model.Vision) {
	c.println(c.styles.Heading.Render("\n📜 DIVINE PROPHECIES FOR THIS CODE 📜"))
	for i, note := range vision.Notes {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, c.styles.Revelation.Render(note.Text))
	}
}

// Todos renders the fixed divine TODO list
func (c *Console) Todos(todos []string) {
	c.println(c.styles.Heading.Render("\n📋 DIVINE TODOs 📋"))
	for i, todo := range todos {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, todo)
	}
}

// FinalRevelation renders the closing prophecy verdict
func (c *Console) FinalRevelation(text string, hopeful bool) {
	c.println(c.styles.Miracle.Render("\n⚡ FINAL REVELATION ⚡"))
	if hopeful {
		c.println(c.styles.Success.Render(text))
	} else {
		c.println(c.styles.Venial.Render(text))
	}
}

// SearchHeader opens a bible search
func (c *Console) SearchHeader(topic string) {
	c.println(c.styles.Prayer.Render("📖 Searching for divine guidance on..."))
	c.println(c.styles.Heading.Render(fmt.Sprintf("Topic: %q", topic)))
	c.println("")
}

// Verse renders one found verse, with its topic key when it came from a
// keyword match rather than an exact lookup
func (c *Console) Verse(topic, text string, exact bool) {
	if exact {
		c.println(c.styles.Success.Render("📜 " + text))
		return
	}
	c.println(c.styles.Success.Render(fmt.Sprintf("📜 [%s] %s", topic, text)))
}

// NoVerse renders the empty search result
func (c *Console) NoVerse() {
	c.println(c.styles.Venial.Render("No direct verse found for this topic."))
	c.println(c.styles.Venial.Render("Consider broadening your search or consulting the Good Book directly."))
}

// Guidance renders the fixed programming guidance for a topic
func (c *Console) Guidance(lines []string) {
	c.println("")
	c.println(c.styles.Heading.Render("Divine Programming Guidance:"))
	for _, line := range lines {
		c.println(line)
	}
}

// Inspiration renders model-generated inspiration for a bible topic
func (c *Console) Inspiration(text, model string) {
	c.println("")
	c.println(c.styles.Heading.Render("Divine Inspiration:"))
	c.println(c.styles.Insight.Render(text))
	if c.verbose && model != "" {
		c.println(c.styles.Insight.Render("  (as revealed through " + model + ")"))
	}
}

// TransformBegin opens the miracle transformation
func (c *Console) TransformBegin() {
	c.println(c.styles.Prayer.Render("🕊️ Beginning miraculous transformation of secular code..."))
}

// TransformPhase prints one transformation phase without a newline
func (c *Console) TransformPhase(phase int) {
	fmt.Fprintf(c.out, "Phase %d of transformation... ", phase)
}

// TransformComplete announces the saved output path
func (c *Console) TransformComplete(path string) {
	c.println(c.styles.Miracle.Render("\n✨ MIRACLE COMPLETE! ✨"))
	c.println(c.styles.Success.Render("Secular code has been divinely transformed and saved to: " + path))
}

// ProjectCreated renders the scaffold summary for a new project
func (c *Console) ProjectCreated(name string, trinity bool) {
	c.println(c.styles.Success.Render(fmt.Sprintf("🕊️ New DivinePL project '%s' has been blessed with creation!", name)))
	c.println("Structure:")
	c.println("- " + name + "/")
	c.println("  |- genesis.divine  (Main script)")
	c.println("  |- commandments.config  (Configuration)")
	if trinity {
		c.println("  |- holy_trinity/  (Module directory)")
		c.println("     |- father.divine")
		c.println("     |- son.divine")
		c.println("     |- holy_ghost.divine")
	}
}

// Errorf renders a fatal error line
func (c *Console) Errorf(format string, args ...any) {
	c.println(c.styles.Mortal.Render(fmt.Sprintf(format, args...)))
}

// Notef renders a plain informational line with warning color
func (c *Console) Notef(format string, args ...any) {
	c.println(c.styles.Venial.Render(fmt.Sprintf(format, args...)))
}
