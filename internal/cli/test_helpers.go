package cli

import (
	"bytes"
	"fmt"
	"testing"

	"blogsmith/internal/artifact"
	"blogsmith/internal/config"
	"blogsmith/internal/openrouter"
	"blogsmith/internal/output"
)

// testApp bundles an App with the fakes wired into it so tests can
// script completions and inspect what was printed and saved.
type testApp struct {
	app  *App
	mock *openrouter.MockClient
	out  *bytes.Buffer
	dir  string
}

// newTestApp creates an App backed by a scripted mock client, a
// buffer-backed printer, and an artifact writer rooted in a temp
// directory.
func newTestApp(t *testing.T, responses []string) *testApp {
	t.Helper()

	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.API.Key = "sk-test-key"
	cfg.Output.Dir = dir

	mock := &openrouter.MockClient{Responses: responses}
	out := &bytes.Buffer{}

	return &testApp{
		app: &App{
			Config:    cfg,
			Client:    mock,
			Printer:   output.NewPrinterWithWriter(out),
			Artifacts: artifact.NewWriter(dir),
		},
		mock: mock,
		out:  out,
		dir:  dir,
	}
}

// analysisResponse is a completion carrying a well-formed content analysis.
func analysisResponse() string {
	return `{"intent": "informational", "target_audience": "intermediate",
		"required_sections": ["Introduction", "Use Cases", "Conclusion"],
		"content_depth": "detailed", "recommended_format": "how-to guide",
		"key_topics": ["automation", "tooling"], "estimated_word_count": 1600}`
}

// verificationResponse scripts the claim-verification step. When needed is
// true the run must revise before it can pass.
func verificationResponse(needed bool) string {
	return fmt.Sprintf(`{"claims": [{"claim": "adoption doubled in 2024", "verifiable": true, "confidence": "high"}],
		"unverified_count": 0, "verification_needed": %t}`, needed)
}

// seoResponse scripts the SEO evaluation with the given pass verdict.
func seoResponse(pass bool) string {
	return fmt.Sprintf(`{"seo_score": 85, "issues": [], "strengths": ["Clear heading hierarchy"],
		"keyword_usage": "good", "readability": "good", "structure": "good", "passes": %t}`, pass)
}

// aeoResponse scripts the AEO evaluation with the given pass verdict.
func aeoResponse(pass bool) string {
	return fmt.Sprintf(`{"aeo_score": 82, "has_direct_answers": true, "has_faq": true,
		"answer_quality": "good", "snippet_worthy": true, "improvements": [], "passes": %t}`, pass)
}

// passingRunScript returns the completion sequence for a run that clears
// every quality gate on the first evaluation cycle: analysis, draft,
// verification, SEO, AEO.
func passingRunScript(post string) []string {
	return []string{
		analysisResponse(),
		post,
		verificationResponse(false),
		seoResponse(true),
		aeoResponse(true),
	}
}
