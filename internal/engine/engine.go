package engine

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/career"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/textnorm"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Engine scores resumes against job descriptions. Its vocabulary and career
// table are injected at construction, loaded once and never mutated, so a
// single Engine is safe for unsynchronized concurrent use.
type Engine struct {
	vocab      *vocabulary.Vocabulary
	careers    *career.Table
	minJobText int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMinJobLength sets the minimum job description length in characters
// (after trimming). Below it, Score and Rank return a ValidationError.
// Zero disables the check beyond the non-empty requirement.
func WithMinJobLength(chars int) Option {
	return func(e *Engine) { e.minJobText = chars }
}

// New constructs an Engine. Both the vocabulary and the career table are
// required; loading them is the caller's startup concern.
func New(vocab *vocabulary.Vocabulary, careers *career.Table, opts ...Option) *Engine {
	e := &Engine{vocab: vocab, careers: careers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Job is a job description prepared once for scoring: its normalized forms
// and extracted skill set. Rank prepares one Job and shares it across all
// resumes so every entry is scored against identical job data.
type Job struct {
	norm   textnorm.Normalized
	skills *extraction.SkillSet
}

// Skills returns the job's extracted skill set.
func (j *Job) Skills() *extraction.SkillSet {
	return j.skills
}

// PrepareJob validates and normalizes a job description.
func (e *Engine) PrepareJob(jobText string) (*Job, error) {
	trimmed := strings.TrimSpace(jobText)
	if trimmed == "" {
		return nil, &ValidationError{Field: "job_description", Message: "job description is required"}
	}
	if e.minJobText > 0 && len(trimmed) < e.minJobText {
		return nil, &ValidationError{Field: "job_description", Message: "job description is too short to analyze"}
	}

	norm := textnorm.Normalize(jobText)
	return &Job{
		norm:   norm,
		skills: extraction.ExtractFromScan(norm.Scan, e.vocab),
	}, nil
}

// Score runs the full pipeline for one resume against one job description.
// An empty or unrecognizable resume is not an error: it degrades to zero
// similarity and zero skill overlap per the degenerate-input policy.
func (e *Engine) Score(resumeText, jobText string) (*types.ScoreResult, error) {
	job, err := e.PrepareJob(jobText)
	if err != nil {
		return nil, err
	}
	return e.ScoreAgainst(job, resumeText), nil
}

// ScoreAgainst scores one resume against an already prepared job.
func (e *Engine) ScoreAgainst(job *Job, resumeText string) *types.ScoreResult {
	resumeNorm := textnorm.Normalize(resumeText)
	resumeSkills := extraction.ExtractFromScan(resumeNorm.Scan, e.vocab)

	sim := similarity.Score(resumeNorm.Tokens, job.norm.Tokens)
	blended := scoring.Blend(sim, resumeSkills, job.skills)

	return &types.ScoreResult{
		SimilarityScore:   blended.SimilarityScore,
		ATSScore:          blended.ATSScore,
		SkillMatchPercent: blended.SkillMatchPercent,
		MatchedSkills:     blended.Matched.Skills(),
		MissingSkills:     blended.Missing.Skills(),
		ResumeSkills:      resumeSkills.Skills(),
		JobSkills:         job.skills.Skills(),
		Tier:              scoring.Tier(blended.ATSScore),
		CareerSuggestions: e.careers.Recommend(blended.Matched),
		Tips:              scoring.Tips(blended.ATSScore, blended.Missing),
	}
}
