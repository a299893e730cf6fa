package workflow

import (
	"context"

	"blogsmith/internal/openrouter"
)

// Each step sends exactly one completion request (Revise may send none),
// absorbs JSON extraction failures by substituting its default record, and
// appends one summary line to the run log before returning. Only client
// errors propagate.

// Analyze profiles the search intent and content structure for topic.
func (r *Runner) Analyze(ctx context.Context, topic string) (Analysis, error) {
	r.log.Info("Analyzing search intent...")

	resp, err := r.complete(ctx, analyzePrompt(topic), r.cfg.Workflow.AnalysisTemperature)
	if err != nil {
		return Analysis{}, err
	}

	var analysis Analysis
	if !openrouter.ExtractJSON(resp, &analysis) {
		analysis = DefaultAnalysis(topic)
	}

	r.log.Success("Intent: %s, Audience: %s", analysis.Intent, analysis.TargetAudience)
	return analysis, nil
}

// Generate writes the initial draft for topic following the analysis.
// The reply is the article itself, so no JSON extraction is involved.
func (r *Runner) Generate(ctx context.Context, topic string, analysis Analysis) (string, error) {
	r.log.Info("Generating blog post content...")

	content, err := r.complete(ctx, generatePrompt(topic, analysis), r.cfg.Workflow.WritingTemperature)
	if err != nil {
		return "", err
	}

	r.log.Success("Generated %d characters", len(content))
	return content, nil
}

// Verify audits the content for factual claims that need checking.
func (r *Runner) Verify(ctx context.Context, content string) (Verification, error) {
	r.log.Info("Verifying technical claims...")

	resp, err := r.complete(ctx, verifyPrompt(content), r.cfg.Workflow.AnalysisTemperature)
	if err != nil {
		return Verification{}, err
	}

	var verification Verification
	if !openrouter.ExtractJSON(resp, &verification) {
		verification = DefaultVerification()
	}

	summary := "Found %d claims, %d need verification"
	if verification.VerificationNeeded {
		r.log.Warning(summary, len(verification.Claims), verification.UnverifiedCount)
	} else {
		r.log.Success(summary, len(verification.Claims), verification.UnverifiedCount)
	}
	return verification, nil
}

// ScoreSEO judges the content's search engine optimization for topic.
func (r *Runner) ScoreSEO(ctx context.Context, content, topic string) (SEOEvaluation, error) {
	r.log.Info("Evaluating SEO quality...")

	resp, err := r.complete(ctx, seoPrompt(content, topic), r.cfg.Workflow.AnalysisTemperature)
	if err != nil {
		return SEOEvaluation{}, err
	}

	var eval SEOEvaluation
	if !openrouter.ExtractJSON(resp, &eval) {
		eval = DefaultSEOEvaluation()
	}

	if eval.Passes {
		r.log.Success("SEO Score: %d/100 - PASS", eval.SEOScore)
	} else {
		r.log.Warning("SEO Score: %d/100 - FAIL", eval.SEOScore)
	}
	return eval, nil
}

// ScoreAEO judges how likely AI answer engines are to surface the content
// for topic.
func (r *Runner) ScoreAEO(ctx context.Context, content, topic string) (AEOEvaluation, error) {
	r.log.Info("Evaluating AEO quality...")

	resp, err := r.complete(ctx, aeoPrompt(content, topic), r.cfg.Workflow.AnalysisTemperature)
	if err != nil {
		return AEOEvaluation{}, err
	}

	var eval AEOEvaluation
	if !openrouter.ExtractJSON(resp, &eval) {
		eval = DefaultAEOEvaluation()
	}

	if eval.Passes {
		r.log.Success("AEO Score: %d/100 - PASS", eval.AEOScore)
	} else {
		r.log.Warning("AEO Score: %d/100 - FAIL", eval.AEOScore)
	}
	return eval, nil
}

// Revise rewrites the content to address the evaluation feedback. When
// there are no SEO issues, no AEO improvements, and no verification flag,
// it returns the content unchanged without calling the model.
func (r *Runner) Revise(ctx context.Context, content string, seo SEOEvaluation, aeo AEOEvaluation, verification Verification) (string, error) {
	r.log.Info("Revising content...")

	issues := make([]string, 0, len(seo.Issues)+len(aeo.Improvements))
	issues = append(issues, seo.Issues...)
	issues = append(issues, aeo.Improvements...)

	if len(issues) == 0 && !verification.VerificationNeeded {
		r.log.Success("No revisions needed")
		return content, nil
	}
	if len(issues) > maxReviseIssues {
		issues = issues[:maxReviseIssues]
	}

	revised, err := r.complete(ctx, revisePrompt(content, seo, aeo, verification, issues), r.cfg.Workflow.WritingTemperature)
	if err != nil {
		return "", err
	}

	r.log.Success("Content revised")
	return revised, nil
}

func (r *Runner) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	messages := []openrouter.Message{openrouter.UserMessage(prompt)}
	return r.client.Complete(ctx, messages, temperature)
}
