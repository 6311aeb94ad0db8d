package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRequestValidate(t *testing.T) {
	valid := ScoreRequest{ResumeText: "resume", JobDescription: "job"}
	assert.NoError(t, valid.Validate())

	missingResume := ScoreRequest{JobDescription: "job"}
	assert.Error(t, missingResume.Validate())

	missingJob := ScoreRequest{ResumeText: "resume"}
	assert.Error(t, missingJob.Validate())
}

func TestRankRequestValidate(t *testing.T) {
	valid := RankRequest{
		Resumes: []NamedResumeText{
			{Name: "a.pdf", Text: "resume a"},
			{Name: "b.pdf", Text: "resume b"},
		},
		JobDescription: "job",
	}
	assert.NoError(t, valid.Validate())

	tooFew := RankRequest{
		Resumes:        []NamedResumeText{{Name: "a.pdf", Text: "resume a"}},
		JobDescription: "job",
	}
	assert.Error(t, tooFew.Validate())

	unnamedEntry := RankRequest{
		Resumes: []NamedResumeText{
			{Name: "a.pdf", Text: "resume a"},
			{Text: "resume b"},
		},
		JobDescription: "job",
	}
	assert.Error(t, unnamedEntry.Validate())
}

func TestScoreRequestJSON(t *testing.T) {
	body := `{"resume_text": "my resume", "job_description": "the job"}`

	var req ScoreRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "my resume", req.ResumeText)
	assert.Equal(t, "the job", req.JobDescription)
}

func TestScoreResultJSONFieldNames(t *testing.T) {
	result := ScoreResult{
		SimilarityScore:   72.5,
		ATSScore:          68.0,
		SkillMatchPercent: 50.0,
		MatchedSkills:     []string{"python"},
		MissingSkills:     []string{"docker"},
		JobSkills:         []string{"python", "docker"},
		Tier:              "good",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "similarity_score")
	assert.Contains(t, decoded, "ats_score")
	assert.Contains(t, decoded, "skill_match_percent")
	assert.Contains(t, decoded, "matched_skills")
	assert.Contains(t, decoded, "missing_skills")
	assert.Contains(t, decoded, "jd_skills")
	assert.Contains(t, decoded, "tier")
}

func TestNamedResumeTextNotSerialized(t *testing.T) {
	data, err := json.Marshal(NamedResume{Name: "a.pdf", Text: "private content"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "private content")
}
