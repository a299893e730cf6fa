// Package workflow orchestrates the blog post generation pipeline.
//
// A [Runner] drives the model through a fixed sequence of steps: analyze
// the search intent, generate a draft, then repeatedly verify claims,
// score SEO, score AEO, and revise until every quality gate passes or the
// revision budget runs out. Steps are synchronous and sequential; exactly
// one completion request is in flight at any moment.
//
// Key types:
//   - [Runner] executes the pipeline against an [openrouter.Client]
//   - [Result] carries the final content and last evaluation records
//   - [Phase] names the runner's position in the loop
//
// The [Runner] appends progress to a caller-owned [runlog.Log], so a run's
// history stays with its result. For testing, drive the Runner with an
// [openrouter.MockClient].
package workflow

import (
	"context"
	"fmt"
	"strings"

	"blogsmith/internal/config"
	"blogsmith/internal/openrouter"
	"blogsmith/internal/runlog"
)

// Phase names a position in the run's state machine. A run moves
// Drafting → Evaluating, then either to Passed, or through Revising back
// to Evaluating until the budget forces Exhausted.
type Phase string

const (
	PhaseDrafting   Phase = "drafting"
	PhaseEvaluating Phase = "evaluating"
	PhaseRevising   Phase = "revising"
	PhasePassed     Phase = "passed"
	PhaseExhausted  Phase = "exhausted"
)

// minTopicChars is the shortest topic accepted, measured after trimming
// surrounding whitespace.
const minTopicChars = 5

// ErrTopicTooShort is returned by [ValidateTopic] and [Runner.Run] for
// topics under the minimum length. No network call is made for such
// topics.
var ErrTopicTooShort = fmt.Errorf("workflow: topic must be at least %d characters", minTopicChars)

// ValidateTopic checks that topic is substantial enough to run.
func ValidateTopic(topic string) error {
	if len(strings.TrimSpace(topic)) < minTopicChars {
		return ErrTopicTooShort
	}
	return nil
}

// Runner executes the generation pipeline.
type Runner struct {
	client openrouter.Client
	log    *runlog.Log
	cfg    *config.Config
}

// NewRunner creates a runner that sends completions through client and
// reports progress to log. A nil log is replaced with a fresh one; a nil
// cfg gets defaults.
func NewRunner(client openrouter.Client, log *runlog.Log, cfg *config.Config) *Runner {
	if log == nil {
		log = runlog.New()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Runner{client: client, log: log, cfg: cfg}
}

// Log returns the run log the runner reports into.
func (r *Runner) Log() *runlog.Log {
	return r.log
}

// Run produces a post for topic, looping through evaluation cycles until
// the quality gates pass or the revision budget is exhausted.
//
// Result.Revisions counts consumed cycles: 0 means the draft passed
// untouched, while a value equal to the budget means the run gave up, the
// last cycle having evaluated without revising. Client errors abort the
// run after one final error entry in the log; JSON extraction failures
// never do.
func (r *Runner) Run(ctx context.Context, topic string) (*Result, error) {
	if err := ValidateTopic(topic); err != nil {
		return nil, err
	}

	r.log.Info("Starting workflow for topic: %s", topic)

	phase := PhaseDrafting
	analysis, err := r.Analyze(ctx, topic)
	if err != nil {
		return nil, r.fail("analyze", err)
	}

	content, err := r.Generate(ctx, topic, analysis)
	if err != nil {
		return nil, r.fail("generate", err)
	}

	maxRevisions := r.cfg.Workflow.MaxRevisions
	revision := 0
	var (
		verification Verification
		seoEval      SEOEvaluation
		aeoEval      AEOEvaluation
	)

	for revision < maxRevisions {
		phase = PhaseEvaluating
		r.log.Info("--- Revision Cycle %d/%d ---", revision+1, maxRevisions)

		verification, err = r.Verify(ctx, content)
		if err != nil {
			return nil, r.fail("verify", err)
		}

		seoEval, err = r.ScoreSEO(ctx, content, topic)
		if err != nil {
			return nil, r.fail("seo evaluation", err)
		}

		aeoEval, err = r.ScoreAEO(ctx, content, topic)
		if err != nil {
			return nil, r.fail("aeo evaluation", err)
		}

		if qualityGatesPass(seoEval, aeoEval, verification) {
			phase = PhasePassed
			r.log.Success("✓ All quality gates passed!")
			break
		}

		// The final cycle evaluates but never revises; the counter
		// still advances so the result reports the consumed budget.
		if revision < maxRevisions-1 {
			phase = PhaseRevising
			content, err = r.Revise(ctx, content, seoEval, aeoEval, verification)
			if err != nil {
				return nil, r.fail("revise", err)
			}
			revision++
		} else {
			phase = PhaseExhausted
			r.log.Warning("Maximum revisions reached. Returning best version.")
			revision++
			break
		}
	}

	return &Result{
		Content:      content,
		Analysis:     analysis,
		SEO:          seoEval,
		AEO:          aeoEval,
		Verification: verification,
		Revisions:    revision,
		Phase:        phase,
	}, nil
}

// fail wraps a step error, records it in the log, and returns it.
func (r *Runner) fail(step string, err error) error {
	err = fmt.Errorf("%s: %w", step, err)
	r.log.Error("Error: %v", err)
	return err
}
