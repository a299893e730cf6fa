package workflow

import (
	"fmt"
	"strings"
)

const (
	// evalExcerptLimit bounds the content excerpt sent to the verify,
	// SEO, and AEO prompts. Claims or issues located past the excerpt
	// are invisible to those steps.
	evalExcerptLimit = 3000

	// reviseExcerptLimit bounds the content excerpt sent to the revise
	// prompt.
	reviseExcerptLimit = 2000

	// maxReviseIssues caps how many combined issues the revise prompt
	// enumerates. SEO issues come first, then AEO improvements.
	maxReviseIssues = 5
)

// clip bounds s to its first limit bytes. The prompt templates carry
// their own trailing ellipsis after the excerpt.
func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func analyzePrompt(topic string) string {
	return fmt.Sprintf(`Analyze the search intent and content structure needed for this topic: %q

Return a JSON object with:
{
  "intent": "tutorial|comparison|guide|explanation",
  "target_audience": "beginner|intermediate|advanced",
  "required_sections": ["section1", "section2"],
  "content_depth": "overview|detailed|comprehensive",
  "recommended_format": "step-by-step|comparative|conceptual",
  "key_topics": ["topic1", "topic2"],
  "estimated_word_count": 1500
}`, topic)
}

func generatePrompt(topic string, analysis Analysis) string {
	return fmt.Sprintf(`Write a comprehensive technical blog post on: %q

Structure requirements:
- Intent: %s
- Audience: %s
- Format: %s
- Sections: %s

Requirements:
1. Start with a compelling introduction with a hook
2. Include practical examples and code snippets where relevant
3. Use clear headings (H2, H3)
4. Add actionable takeaways
5. Include an FAQ section at the end
6. Write %d words minimum
7. Optimize for both SEO and AI answer engines
8. Include direct answers to common questions in the first paragraphs

Return the full blog post in markdown format.`,
		topic,
		analysis.Intent,
		analysis.TargetAudience,
		analysis.RecommendedFormat,
		strings.Join(analysis.RequiredSections, ", "),
		analysis.EstimatedWordCount,
	)
}

func verifyPrompt(content string) string {
	return fmt.Sprintf(`Analyze this blog post and extract all factual and technical claims that should be verified:

%s...

Return a JSON object:
{
  "claims": [
    {"claim": "statement", "verifiable": true, "confidence": "high|medium|low"}
  ],
  "unverified_count": 0,
  "verification_needed": false
}`, clip(content, evalExcerptLimit))
}

func seoPrompt(content, topic string) string {
	return fmt.Sprintf(`Evaluate this blog post for SEO quality on topic %q:

%s...

Return a JSON object:
{
  "seo_score": 85,
  "issues": ["issue1", "issue2"],
  "strengths": ["strength1", "strength2"],
  "keyword_usage": "good|fair|poor",
  "readability": "good|fair|poor",
  "structure": "good|fair|poor",
  "passes": true
}

Score above 75 passes.`, topic, clip(content, evalExcerptLimit))
}

func aeoPrompt(content, topic string) string {
	return fmt.Sprintf(`Evaluate if this content would be selected by AI answer engines (ChatGPT, Perplexity, etc.) for topic %q:

%s...

Return a JSON object:
{
  "aeo_score": 85,
  "has_direct_answers": true,
  "has_faq": true,
  "answer_quality": "excellent|good|fair|poor",
  "snippet_worthy": true,
  "improvements": ["improvement1"],
  "passes": true
}

Score above 75 passes.`, topic, clip(content, evalExcerptLimit))
}

func revisePrompt(content string, seo SEOEvaluation, aeo AEOEvaluation, verification Verification, issues []string) string {
	var list strings.Builder
	for i, issue := range issues {
		fmt.Fprintf(&list, "%d. %s\n", i+1, issue)
	}
	return fmt.Sprintf(`Revise this blog post to address these issues:

ISSUES:
%s
VERIFICATION NEEDED: %t
SEO SCORE: %d
AEO SCORE: %d

ORIGINAL CONTENT:
%s...

Return the revised blog post in markdown format, addressing all issues while maintaining quality.`,
		list.String(),
		verification.VerificationNeeded,
		seo.SEOScore,
		aeo.AEOScore,
		clip(content, reviseExcerptLimit),
	)
}
