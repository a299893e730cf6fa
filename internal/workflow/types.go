package workflow

// Analysis is the search-intent profile produced by the analyze step and
// consumed by the generate step.
//
// Field values are model-chosen from the vocabularies suggested in the
// analysis prompt (for example Intent is one of tutorial, comparison,
// guide, explanation), but nothing enforces that; downstream code treats
// them as opaque strings.
type Analysis struct {
	Intent             string   `json:"intent" yaml:"intent"`
	TargetAudience     string   `json:"target_audience" yaml:"target_audience"`
	RequiredSections   []string `json:"required_sections" yaml:"required_sections"`
	ContentDepth       string   `json:"content_depth" yaml:"content_depth"`
	RecommendedFormat  string   `json:"recommended_format" yaml:"recommended_format"`
	KeyTopics          []string `json:"key_topics" yaml:"key_topics"`
	EstimatedWordCount int      `json:"estimated_word_count" yaml:"estimated_word_count"`

	// Degraded is set when this record is a substituted default rather
	// than parsed model output. Never populated from the wire.
	Degraded bool `json:"-" yaml:"degraded"`
}

// Claim is a single factual statement flagged by the verify step.
type Claim struct {
	Claim      string `json:"claim" yaml:"claim"`
	Verifiable bool   `json:"verifiable" yaml:"verifiable"`
	Confidence string `json:"confidence" yaml:"confidence"`
}

// Verification is the claim audit for the current content. It is
// recomputed fresh every evaluation cycle and has no identity beyond
// "most recent".
type Verification struct {
	Claims             []Claim `json:"claims" yaml:"claims"`
	UnverifiedCount    int     `json:"unverified_count" yaml:"unverified_count"`
	VerificationNeeded bool    `json:"verification_needed" yaml:"verification_needed"`

	Degraded bool `json:"-" yaml:"degraded"`
}

// SEOEvaluation is the model's SEO judgment of the current content.
// Passes is the model's own verdict; the prompt states that a score above
// 75 passes, but the boolean is what the quality gate reads.
type SEOEvaluation struct {
	SEOScore     int      `json:"seo_score" yaml:"seo_score"`
	Issues       []string `json:"issues" yaml:"issues"`
	Strengths    []string `json:"strengths" yaml:"strengths"`
	KeywordUsage string   `json:"keyword_usage" yaml:"keyword_usage"`
	Readability  string   `json:"readability" yaml:"readability"`
	Structure    string   `json:"structure" yaml:"structure"`
	Passes       bool     `json:"passes" yaml:"passes"`

	Degraded bool `json:"-" yaml:"degraded"`
}

// AEOEvaluation is the model's answer-engine-optimization judgment of the
// current content, scored the same way as [SEOEvaluation].
type AEOEvaluation struct {
	AEOScore         int      `json:"aeo_score" yaml:"aeo_score"`
	HasDirectAnswers bool     `json:"has_direct_answers" yaml:"has_direct_answers"`
	HasFAQ           bool     `json:"has_faq" yaml:"has_faq"`
	AnswerQuality    string   `json:"answer_quality" yaml:"answer_quality"`
	SnippetWorthy    bool     `json:"snippet_worthy" yaml:"snippet_worthy"`
	Improvements     []string `json:"improvements" yaml:"improvements"`
	Passes           bool     `json:"passes" yaml:"passes"`

	Degraded bool `json:"-" yaml:"degraded"`
}

// Result is the outcome of one workflow run: the final content and the
// records from the last evaluation cycle.
//
// Revisions counts loop iterations consumed, not revise calls made: a run
// that exhausts its budget reports Revisions equal to the cap even though
// the final failing cycle does not revise.
type Result struct {
	Content      string        `json:"content" yaml:"content"`
	Analysis     Analysis      `json:"analysis" yaml:"analysis"`
	SEO          SEOEvaluation `json:"seo_eval" yaml:"seo_eval"`
	AEO          AEOEvaluation `json:"aeo_eval" yaml:"aeo_eval"`
	Verification Verification  `json:"verification" yaml:"verification"`
	Revisions    int           `json:"revisions" yaml:"revisions"`
	Phase        Phase         `json:"phase" yaml:"phase"`
}

// Passed reports whether the final content cleared all three quality
// gates.
func (r *Result) Passed() bool {
	return qualityGatesPass(r.SEO, r.AEO, r.Verification)
}

// Degraded reports whether any record in the result was substituted from
// defaults after a failed JSON extraction.
func (r *Result) Degraded() bool {
	return r.Analysis.Degraded || r.SEO.Degraded || r.AEO.Degraded || r.Verification.Degraded
}

// qualityGatesPass is the loop's pass decision. It trusts the
// model-reported booleans rather than recomputing from scores.
func qualityGatesPass(seo SEOEvaluation, aeo AEOEvaluation, v Verification) bool {
	return seo.Passes && aeo.Passes && !v.VerificationNeeded
}
