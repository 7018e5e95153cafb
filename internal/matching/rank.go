package matching

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
	"golang.org/x/sync/errgroup"
)

// Job is a job description to rank against a resume
type Job struct {
	ID     string
	Source string
	Text   string
}

// Rank analyses the resume once and matches it against every job, running up
// to the configured concurrency of job analyses at a time. Results are sorted
// by score, best first; equal scores keep input order. Only cancellation of
// ctx produces an error.
func (e *Engine) Rank(ctx context.Context, resumeText string, jobs []Job) ([]types.RankedJob, error) {
	resume := e.analyzer.AnalyzeResume(resumeText)

	ranked := make([]types.RankedJob, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id := job.ID
			if id == "" {
				id = fmt.Sprintf("job-%d", i+1)
			}
			jobAnalysis := e.analyzer.AnalyzeJobDescription(job.Text)
			ranked[i] = types.RankedJob{
				JobID:  id,
				Source: job.Source,
				Result: e.MatchAnalyses(resume, jobAnalysis),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking interrupted: %w", err)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.MatchScore > ranked[j].Result.MatchScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	e.logger.Debug("jobs ranked", slog.Int("jobs", len(ranked)))
	return ranked, nil
}
