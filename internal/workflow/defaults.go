package workflow

// The default records below are substituted whenever a step cannot
// extract JSON from the model's reply. Their values are optimistic on
// purpose: a degraded evaluation passes its gate, so a run never loops on
// feedback that was never actually given. Each record is marked Degraded
// so consumers can tell substitution from model output.

// DefaultAnalysis returns the fallback search-intent profile for topic.
func DefaultAnalysis(topic string) Analysis {
	return Analysis{
		Intent:             "guide",
		TargetAudience:     "intermediate",
		RequiredSections:   []string{"Introduction", "Main Content", "Conclusion"},
		ContentDepth:       "detailed",
		RecommendedFormat:  "conceptual",
		KeyTopics:          []string{topic},
		EstimatedWordCount: 1500,
		Degraded:           true,
	}
}

// DefaultVerification returns the fallback claim audit: no claims, no
// verification needed.
func DefaultVerification() Verification {
	return Verification{
		Claims:             []Claim{},
		UnverifiedCount:    0,
		VerificationNeeded: false,
		Degraded:           true,
	}
}

// DefaultSEOEvaluation returns the fallback SEO judgment, a passing score
// with no issues.
func DefaultSEOEvaluation() SEOEvaluation {
	return SEOEvaluation{
		SEOScore:     80,
		Issues:       []string{},
		Strengths:    []string{"Well structured"},
		KeywordUsage: "good",
		Readability:  "good",
		Structure:    "good",
		Passes:       true,
		Degraded:     true,
	}
}

// DefaultAEOEvaluation returns the fallback AEO judgment, a passing score
// with no improvements.
func DefaultAEOEvaluation() AEOEvaluation {
	return AEOEvaluation{
		AEOScore:         80,
		HasDirectAnswers: true,
		HasFAQ:           true,
		AnswerQuality:    "good",
		SnippetWorthy:    true,
		Improvements:     []string{},
		Passes:           true,
		Degraded:         true,
	}
}
