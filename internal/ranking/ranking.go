// Package ranking applies the full scoring pipeline to multiple resumes
// against one job description and orders the results.
package ranking

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/types"
)

// MinResumes is the smallest ranking that makes sense; fewer is a caller
// input problem, not a one-element ranking.
const MinResumes = 2

// maxConcurrentScores bounds the per-resume fan-out.
const maxConcurrentScores = 8

// Rank scores every resume against the same job description and returns them
// ordered by descending ATS score, 1-based ranks, ties keeping input order.
// The job description is prepared once and shared across resumes, so all
// entries are scored against identical job data.
func Rank(eng *engine.Engine, resumes []types.NamedResume, jobText string) (*types.RankingResult, error) {
	if len(resumes) < MinResumes {
		return nil, &engine.ValidationError{
			Field:   "resumes",
			Message: "at least 2 resumes are required for ranking",
		}
	}

	job, err := eng.PrepareJob(jobText)
	if err != nil {
		return nil, err
	}

	// Per-resume scoring is independent; fan out and write each result into
	// its input slot so ties can be broken by original order later.
	results := make([]*types.ScoreResult, len(resumes))
	var g errgroup.Group
	g.SetLimit(maxConcurrentScores)
	for i, resume := range resumes {
		g.Go(func() error {
			results[i] = eng.ScoreAgainst(job, resume.Text)
			return nil
		})
	}
	// Scoring has no failure modes; Wait is the barrier before ordering.
	_ = g.Wait()

	entries := make([]types.RankingEntry, len(resumes))
	for i, resume := range resumes {
		entries[i] = types.RankingEntry{
			Name:   resume.Name,
			Result: results[i],
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Result.ATSScore > entries[j].Result.ATSScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return &types.RankingResult{Rankings: entries}, nil
}
