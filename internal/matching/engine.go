// Package matching compares resume and job-description analyses and produces
// a match score with gap recommendations.
package matching

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/types"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTailoringThreshold is the score below which the generic tailoring note is added
	DefaultTailoringThreshold = 0.7
	// DefaultConcurrency bounds how many job descriptions Rank analyses at once
	DefaultConcurrency = 4
)

// Engine matches resumes against job descriptions. It never returns an error
// from Match: faults are converted into a degraded MatchResult.
type Engine struct {
	analyzer    *analysis.Analyzer
	threshold   float64
	concurrency int
	logger      *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithTailoringThreshold sets the score below which the tailoring recommendation is emitted
func WithTailoringThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold >= 0 && threshold <= 1 {
			e.threshold = threshold
		}
	}
}

// WithConcurrency bounds the number of concurrent job analyses in Rank
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine using analyzer for both documents
func New(analyzer *analysis.Analyzer, opts ...Option) *Engine {
	e := &Engine{
		analyzer:    analyzer,
		threshold:   DefaultTailoringThreshold,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyzer returns the analyzer shared by the engine
func (e *Engine) Analyzer() *analysis.Analyzer {
	return e.analyzer
}

// Match analyses both texts in parallel and compares their skills.
// It always returns a well-formed result.
func (e *Engine) Match(resumeText, jobText string) (result types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = e.degraded(fmt.Errorf("%v", r))
		}
	}()

	var resume, job types.AnalysisResult
	var g errgroup.Group
	g.Go(guard(func() { resume = e.analyzer.AnalyzeResume(resumeText) }))
	g.Go(guard(func() { job = e.analyzer.AnalyzeJobDescription(jobText) }))
	if err := g.Wait(); err != nil {
		return e.degraded(err)
	}

	result = e.MatchAnalyses(resume, job)
	e.logger.Debug("match computed",
		slog.Float64("score", result.MatchScore),
		slog.Int("matched", len(result.MatchedSkills)),
		slog.Int("missing", len(result.MissingSkills)))
	return result
}

// MatchAnalyses compares two existing analyses. A fault during aggregation
// yields a degraded result.
func (e *Engine) MatchAnalyses(resume, job types.AnalysisResult) (result types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = e.degraded(fmt.Errorf("%v", r))
		}
	}()

	matched, missing := compareSkills(resume.Skills, job.Skills)
	score := computeMatchScore(len(matched), len(job.Skills))

	return types.MatchResult{
		MatchScore:      score,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Recommendations: buildRecommendations(missing, score, e.threshold),
	}
}

// degraded builds the zero-valued result reported in place of a fault
func (e *Engine) degraded(err error) types.MatchResult {
	e.logger.Error("match fault recovered", slog.Any("error", err))
	return types.MatchResult{
		MatchScore:      0.0,
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		Recommendations: []string{fmt.Sprintf("Error during analysis: %v", err)},
	}
}

// guard runs fn and turns a panic into an error so it surfaces through errgroup.Wait
func guard(fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Debug("analysis goroutine panicked", slog.String("stack", string(debug.Stack())))
				err = fmt.Errorf("%v", r)
			}
		}()
		fn()
		return nil
	}
}
