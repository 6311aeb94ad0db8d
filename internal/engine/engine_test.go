package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/career"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const sampleJob = `We are hiring a backend engineer with strong Python and SQL skills.
Experience with Docker, Kubernetes and AWS is required. PostgreSQL a plus.`

const sampleResume = `Backend developer with five years of Python experience.
Designed SQL schemas on PostgreSQL and deployed services with Docker.`

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	vocab, err := vocabulary.Load()
	require.NoError(t, err)
	careers, err := career.Load()
	require.NoError(t, err)
	return New(vocab, careers, opts...)
}

func TestScoreFullPipeline(t *testing.T) {
	eng := newEngine(t)

	result, err := eng.Score(sampleResume, sampleJob)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.ATSScore, 0.0)
	assert.LessOrEqual(t, result.ATSScore, 100.0)
	assert.GreaterOrEqual(t, result.SimilarityScore, 0.0)
	assert.LessOrEqual(t, result.SimilarityScore, 100.0)

	assert.Contains(t, result.MatchedSkills, "python")
	assert.Contains(t, result.MatchedSkills, "sql")
	assert.Contains(t, result.MatchedSkills, "docker")
	assert.Contains(t, result.MissingSkills, "kubernetes")
	assert.Contains(t, result.MissingSkills, "aws")

	assert.NotEmpty(t, result.Tier)
	assert.NotEmpty(t, result.Tips)
	assert.NotEmpty(t, result.CareerSuggestions)
}

func TestScoreIdenticalTexts(t *testing.T) {
	eng := newEngine(t)

	result, err := eng.Score(sampleJob, sampleJob)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.SimilarityScore)
	assert.Equal(t, 100.0, result.SkillMatchPercent)
	assert.Equal(t, 100.0, result.ATSScore)
	assert.Empty(t, result.MissingSkills)
}

func TestScoreMatchedMissingPartitionJobSkills(t *testing.T) {
	eng := newEngine(t)

	result, err := eng.Score(sampleResume, sampleJob)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, s := range result.MatchedSkills {
		seen[s] = true
	}
	for _, s := range result.MissingSkills {
		assert.False(t, seen[s], "%s in both matched and missing", s)
		seen[s] = true
	}
	assert.Len(t, result.JobSkills, len(seen))
	for _, s := range result.JobSkills {
		assert.True(t, seen[s], "%s in job skills but unclassified", s)
	}
}

func TestScoreEmptyJobDescription(t *testing.T) {
	eng := newEngine(t)

	_, err := eng.Score(sampleResume, "   ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestScoreShortJobDescription(t *testing.T) {
	eng := newEngine(t, WithMinJobLength(30))

	_, err := eng.Score(sampleResume, "python dev")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestScoreEmptyResumeDegradesToZero(t *testing.T) {
	eng := newEngine(t)

	result, err := eng.Score("", sampleJob)
	require.NoError(t, err, "an empty resume is degenerate input, not an error")

	assert.Equal(t, 0.0, result.SimilarityScore)
	assert.Equal(t, 0.0, result.ATSScore)
	assert.Equal(t, 0.0, result.SkillMatchPercent)
	assert.Empty(t, result.MatchedSkills)
	assert.NotEmpty(t, result.MissingSkills)
	assert.Equal(t, "poor", result.Tier)
}

func TestScoreCaseInsensitive(t *testing.T) {
	eng := newEngine(t)

	lower, err := eng.Score(sampleResume, sampleJob)
	require.NoError(t, err)
	upper, err := eng.Score(strings.ToUpper(sampleResume), strings.ToUpper(sampleJob))
	require.NoError(t, err)

	assert.Equal(t, lower.ATSScore, upper.ATSScore)
	assert.Equal(t, lower.MatchedSkills, upper.MatchedSkills)
}

func TestPrepareJobSharedAcrossScores(t *testing.T) {
	eng := newEngine(t)

	job, err := eng.PrepareJob(sampleJob)
	require.NoError(t, err)
	require.NotEmpty(t, job.Skills().Skills())

	direct, err := eng.Score(sampleResume, sampleJob)
	require.NoError(t, err)
	viaJob := eng.ScoreAgainst(job, sampleResume)

	assert.Equal(t, direct, viaJob)
}

func TestValidationErrorCarriesField(t *testing.T) {
	eng := newEngine(t)

	_, err := eng.Score(sampleResume, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "job_description", verr.Field)
	assert.NotEmpty(t, verr.Error())
}
