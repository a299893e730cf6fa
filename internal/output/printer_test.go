package output

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blogsmith/internal/openrouter"
	"blogsmith/internal/runlog"
	"blogsmith/internal/workflow"
)

func testPrinter() (*Printer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewPrinterWithWriter(buf), buf
}

func TestPrinter_Entry(t *testing.T) {
	p, buf := testPrinter()

	p.Entry(runlog.Entry{
		Time:    time.Date(2025, 6, 1, 9, 5, 42, 0, time.UTC),
		Level:   runlog.LevelSuccess,
		Message: "Generated 4200 characters",
	})

	out := buf.String()
	assert.Contains(t, out, "[09:05:42]")
	assert.Contains(t, out, "✓ Generated 4200 characters")
}

func TestPrinter_Entry_MarksByLevel(t *testing.T) {
	marks := map[runlog.Level]string{
		runlog.LevelInfo:    "•",
		runlog.LevelSuccess: "✓",
		runlog.LevelWarning: "⚠",
		runlog.LevelError:   "✗",
	}

	for level, mark := range marks {
		p, buf := testPrinter()
		p.Entry(runlog.Entry{Time: time.Now(), Level: level, Message: "step"})
		assert.Contains(t, buf.String(), mark+" step", "level %s", level)
	}
}

func TestPrinter_Levels(t *testing.T) {
	p, buf := testPrinter()

	p.Info("plain %s", "note")
	p.Success("went %s", "well")
	p.Warning("be %s", "careful")
	p.Error("went %s", "wrong")

	out := buf.String()
	assert.Contains(t, out, "plain note")
	assert.Contains(t, out, "✓ went well")
	assert.Contains(t, out, "⚠ be careful")
	assert.Contains(t, out, "✗ went wrong")
}

func summaryResult() *workflow.Result {
	return &workflow.Result{
		Content: "# Post",
		SEO: workflow.SEOEvaluation{
			SEOScore:     85,
			Strengths:    []string{"Clear heading hierarchy"},
			KeywordUsage: "good",
			Readability:  "good",
			Structure:    "fair",
			Passes:       true,
		},
		AEO: workflow.AEOEvaluation{
			AEOScore:         68,
			HasDirectAnswers: true,
			HasFAQ:           false,
			AnswerQuality:    "fair",
			SnippetWorthy:    false,
			Passes:           false,
		},
		Verification: workflow.Verification{
			Claims: []workflow.Claim{
				{Claim: "claim one"},
				{Claim: "claim two"},
			},
		},
		Revisions: 1,
		Phase:     workflow.PhaseExhausted,
	}
}

func TestPrinter_Summary(t *testing.T) {
	p, buf := testPrinter()

	p.Summary(summaryResult())

	out := buf.String()
	assert.Contains(t, out, "Quality Metrics")
	assert.Contains(t, out, "SEO Score:")
	assert.Contains(t, out, "85/100")
	assert.Contains(t, out, "✓ Pass")
	assert.Contains(t, out, "AEO Score:")
	assert.Contains(t, out, "68/100")
	assert.Contains(t, out, "✗ Fail")
	assert.Contains(t, out, "Claims Verified:")
	assert.Contains(t, out, "Revisions:")

	assert.Contains(t, out, "SEO Analysis")
	assert.Contains(t, out, "Keyword Usage:")
	assert.Contains(t, out, "✓ Clear heading hierarchy")

	assert.Contains(t, out, "AEO Analysis")
	assert.Contains(t, out, "Direct Answers:")
	assert.Contains(t, out, "Yes")
	assert.Contains(t, out, "FAQ Section:")
	assert.Contains(t, out, "No")

	assert.NotContains(t, out, "fell back to defaults")
}

func TestPrinter_Summary_DegradedWarning(t *testing.T) {
	p, buf := testPrinter()

	result := summaryResult()
	result.SEO.Degraded = true
	p.Summary(result)

	assert.Contains(t, buf.String(), "fell back to defaults")
}

func TestPrinter_Analysis(t *testing.T) {
	p, buf := testPrinter()

	p.Analysis(workflow.Analysis{
		Intent:             "guide",
		TargetAudience:     "intermediate",
		RequiredSections:   []string{"Introduction", "Playbook", "FAQ"},
		ContentDepth:       "detailed",
		RecommendedFormat:  "step-by-step",
		KeyTopics:          []string{"ai sdr", "sales automation"},
		EstimatedWordCount: 1800,
	})

	out := buf.String()
	assert.Contains(t, out, "Content Analysis")
	assert.Contains(t, out, "Intent:")
	assert.Contains(t, out, "guide")
	assert.Contains(t, out, "Sections:")
	assert.Contains(t, out, "Introduction, Playbook, FAQ")
	assert.Contains(t, out, "Key Topics:")
	assert.Contains(t, out, "ai sdr, sales automation")
	assert.Contains(t, out, "Estimated Words:")
	assert.Contains(t, out, "1800")
	assert.NotContains(t, out, "fell back to defaults")
}

func TestPrinter_Analysis_DegradedWarning(t *testing.T) {
	p, buf := testPrinter()

	p.Analysis(workflow.Analysis{Intent: "guide", Degraded: true})

	assert.Contains(t, buf.String(), "fell back to defaults")
}

func TestPrinter_Failure_InvalidKeyHint(t *testing.T) {
	p, buf := testPrinter()

	p.Failure(&openrouter.APIError{StatusCode: 401, Body: "Unauthorized"})

	out := buf.String()
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "API key appears to be invalid")
	assert.NotContains(t, out, "Rate limit reached")
}

func TestPrinter_Failure_ForbiddenHint(t *testing.T) {
	p, buf := testPrinter()

	p.Failure(&openrouter.APIError{StatusCode: 403, Body: "Forbidden"})

	assert.Contains(t, buf.String(), "API key appears to be invalid")
}

func TestPrinter_Failure_RateLimitHint(t *testing.T) {
	p, buf := testPrinter()

	p.Failure(&openrouter.APIError{StatusCode: 429, Body: "Rate Limit exceeded on free tier"})

	out := buf.String()
	assert.Contains(t, out, "Rate limit reached. Please wait a moment and try again.")
	assert.NotContains(t, out, "API key appears to be invalid")
}

func TestPrinter_Failure_AtMostOneHint(t *testing.T) {
	p, buf := testPrinter()

	// Both conditions match; the key hint wins.
	p.Failure(&openrouter.APIError{StatusCode: 401, Body: "rate limit"})

	out := buf.String()
	assert.Contains(t, out, "API key appears to be invalid")
	assert.NotContains(t, out, "Rate limit reached")
}

func TestPrinter_Failure_NoHint(t *testing.T) {
	p, buf := testPrinter()

	p.Failure(errors.New("verify: openrouter: network error: connection refused"))

	out := buf.String()
	assert.Contains(t, out, "✗ Error: verify: openrouter: network error: connection refused")
	assert.NotContains(t, out, "API key appears to be invalid")
	assert.NotContains(t, out, "Rate limit reached")
}
