// Package output renders run progress and results to the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"blogsmith/internal/runlog"
	"blogsmith/internal/workflow"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#86EFAC"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDE047"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FCA5A5"))
	stampStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

func styleFor(level runlog.Level) lipgloss.Style {
	switch level {
	case runlog.LevelSuccess:
		return successStyle
	case runlog.LevelWarning:
		return warningStyle
	case runlog.LevelError:
		return errorStyle
	default:
		return infoStyle
	}
}

func markFor(level runlog.Level) string {
	switch level {
	case runlog.LevelSuccess:
		return "✓"
	case runlog.LevelWarning:
		return "⚠"
	case runlog.LevelError:
		return "✗"
	default:
		return "•"
	}
}

// Printer writes formatted output to a writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to stdout.
func NewPrinter() *Printer {
	return &Printer{w: os.Stdout}
}

// NewPrinterWithWriter creates a Printer writing to w. Used by tests to
// capture output.
func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Entry renders one run-log entry as "[HH:MM:SS] mark message" with the
// level's color. Wire it up as the log's Observer for live progress.
func (p *Printer) Entry(e runlog.Entry) {
	line := fmt.Sprintf("%s %s", markFor(e.Level), e.Message)
	fmt.Fprintf(p.w, "%s %s\n", stampStyle.Render("["+e.Stamp()+"]"), styleFor(e.Level).Render(line))
}

// Info prints a formatted informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.w, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a formatted success line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warning prints a formatted warning line.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.w, warningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Error prints a formatted error line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Println prints an unstyled line.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.w, s)
}

// Summary renders the quality metrics block for a finished run.
func (p *Printer) Summary(result *workflow.Result) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, headerStyle.Render("Quality Metrics"))

	fmt.Fprintf(p.w, "  %s %d/100  %s\n", labelStyle.Render("SEO Score:"), result.SEO.SEOScore, passMark(result.SEO.Passes))
	fmt.Fprintf(p.w, "  %s %d/100  %s\n", labelStyle.Render("AEO Score:"), result.AEO.AEOScore, passMark(result.AEO.Passes))
	fmt.Fprintf(p.w, "  %s %d\n", labelStyle.Render("Claims Verified:"), len(result.Verification.Claims))
	fmt.Fprintf(p.w, "  %s %d\n", labelStyle.Render("Revisions:"), result.Revisions)

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, headerStyle.Render("SEO Analysis"))
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Keyword Usage:"), result.SEO.KeywordUsage)
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Readability:"), result.SEO.Readability)
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Structure:"), result.SEO.Structure)
	for _, s := range result.SEO.Strengths {
		fmt.Fprintf(p.w, "  %s\n", successStyle.Render("✓ "+s))
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, headerStyle.Render("AEO Analysis"))
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Direct Answers:"), yesNo(result.AEO.HasDirectAnswers))
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("FAQ Section:"), yesNo(result.AEO.HasFAQ))
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Answer Quality:"), result.AEO.AnswerQuality)
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Snippet Worthy:"), yesNo(result.AEO.SnippetWorthy))

	if result.Degraded() {
		fmt.Fprintln(p.w)
		p.Warning("Some records fell back to defaults because the model's JSON could not be parsed.")
	}
}

// Analysis renders the content profile produced by the analyze step.
func (p *Printer) Analysis(a workflow.Analysis) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, headerStyle.Render("Content Analysis"))
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Intent:"), a.Intent)
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Audience:"), a.TargetAudience)
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Format:"), a.RecommendedFormat)
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Depth:"), a.ContentDepth)
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Sections:"), strings.Join(a.RequiredSections, ", "))
	fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render("Key Topics:"), strings.Join(a.KeyTopics, ", "))
	fmt.Fprintf(p.w, "  %s %d\n", labelStyle.Render("Estimated Words:"), a.EstimatedWordCount)

	if a.Degraded {
		fmt.Fprintln(p.w)
		p.Warning("Analysis fell back to defaults because the model's JSON could not be parsed.")
	}
}

// Failure renders a fatal run error with remediation hints for the
// common cases: an invalid key (the endpoint answered 401 or 403) and
// rate limiting.
func (p *Printer) Failure(err error) {
	p.Error("Error: %v", err)

	msg := err.Error()
	if strings.Contains(msg, "401") || strings.Contains(msg, "403") {
		p.Warning("Your API key appears to be invalid. Please check it and try again.")
	} else if strings.Contains(strings.ToLower(msg), "rate limit") {
		p.Warning("Rate limit reached. Please wait a moment and try again.")
	}
}

func passMark(passed bool) string {
	if passed {
		return successStyle.Render("✓ Pass")
	}
	return errorStyle.Render("✗ Fail")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
