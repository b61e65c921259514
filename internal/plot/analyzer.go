package plot

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Analyzer scores a story against a set of candidate structures and
// picks the best match. The validation strategy is fixed per analyzer
// instance by the validator it wraps.
type Analyzer struct {
	validator   *Validator
	concurrency int
	logger      *slog.Logger
}

// AnalyzerOption customizes an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithConcurrency lets the analyzer score up to n candidates at once.
// Candidates are independent, so parallel scoring is safe; best-match
// selection still runs over candidates in the order given, keeping the
// first-seen tie-break deterministic regardless of completion order.
func WithConcurrency(n int) AnalyzerOption {
	return func(a *Analyzer) {
		if n > 1 {
			a.concurrency = n
		}
	}
}

// NewAnalyzer creates a sequential analyzer around validator.
func NewAnalyzer(validator *Validator, logger *slog.Logger, opts ...AnalyzerOption) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Analyzer{
		validator:   validator,
		concurrency: 1,
		logger:      logger.With("component", "plot_analyzer"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze validates storyText against every candidate and reports the
// candidate with the highest strength as the best match. Ties keep the
// first-seen maximum. Every per-candidate verdict is retained.
func (a *Analyzer) Analyze(ctx context.Context, storyText string, candidates []*PlotStructure) *AnalysisResult {
	result := &AnalysisResult{
		RunID:   uuid.New().String(),
		Scores:  make(map[string]float64, len(candidates)),
		Details: make(map[string]*ValidationResult, len(candidates)),
	}

	a.logger.Debug("analyzing story against candidates",
		"run_id", result.RunID,
		"candidates", len(candidates),
		"story_length", len(storyText))

	verdicts := make([]*ValidationResult, len(candidates))
	if a.concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.concurrency)
		for i, structure := range candidates {
			i, structure := i, structure
			g.Go(func() error {
				verdicts[i] = a.validator.Validate(gctx, storyText, structure)
				return nil
			})
		}
		// Workers only write disjoint slice slots and Validate never
		// fails, so the group cannot return an error.
		_ = g.Wait()
	} else {
		for i, structure := range candidates {
			verdicts[i] = a.validator.Validate(ctx, storyText, structure)
		}
	}

	bestScore := 0.0
	for i, structure := range candidates {
		verdict := verdicts[i]
		result.Scores[structure.Name] = verdict.Strength
		result.Details[structure.Name] = verdict

		if verdict.Strength > bestScore {
			bestScore = verdict.Strength
			result.BestMatch = structure.Name
		}
	}

	a.logger.Info("analysis complete",
		"run_id", result.RunID,
		"best_match", result.BestMatch,
		"best_score", bestScore)

	return result
}
