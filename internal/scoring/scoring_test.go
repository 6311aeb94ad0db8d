package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/extraction"
)

func TestBlendWeights(t *testing.T) {
	// similarity 80, half the job skills matched: 80*0.6 + 50*0.4 = 68.0
	resume := extraction.NewSkillSet("python", "sql")
	job := extraction.NewSkillSet("python", "sql", "docker", "aws")

	b := Blend(80.0, resume, job)
	assert.Equal(t, 68.0, b.ATSScore)
	assert.Equal(t, 50.0, b.SkillMatchPercent)
}

func TestBlendPartitionsJobSkills(t *testing.T) {
	resume := extraction.NewSkillSet("python", "go", "rust")
	job := extraction.NewSkillSet("python", "docker", "go", "aws")

	b := Blend(50.0, resume, job)

	assert.Equal(t, []string{"python", "go"}, b.Matched.Skills())
	assert.Equal(t, []string{"docker", "aws"}, b.Missing.Skills())

	// Matched and missing are disjoint and together cover the job set.
	for _, skill := range b.Matched.Skills() {
		assert.False(t, b.Missing.Contains(skill))
	}
	assert.Equal(t, job.Len(), b.Matched.Len()+b.Missing.Len())
}

func TestBlendNoJobSkills(t *testing.T) {
	b := Blend(70.0, extraction.NewSkillSet("python"), extraction.NewSkillSet())

	assert.Equal(t, 0.0, b.SkillMatchPercent)
	assert.Equal(t, 42.0, b.ATSScore, "score collapses to the weighted similarity component")
}

func TestBlendEmptyResume(t *testing.T) {
	job := extraction.NewSkillSet("python", "sql")
	b := Blend(0.0, extraction.NewSkillSet(), job)

	assert.Equal(t, 0.0, b.ATSScore)
	assert.Equal(t, 0.0, b.SkillMatchPercent)
	assert.Equal(t, 0, b.Matched.Len())
	assert.Equal(t, 2, b.Missing.Len())
}

func TestBlendBounds(t *testing.T) {
	resume := extraction.NewSkillSet("python")
	job := extraction.NewSkillSet("python")

	b := Blend(100.0, resume, job)
	assert.Equal(t, 100.0, b.ATSScore)

	b = Blend(0.0, extraction.NewSkillSet(), job)
	assert.Equal(t, 0.0, b.ATSScore)
}

func TestTierBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "excellent"},
		{75, "excellent"},
		{74.9, "good"},
		{60, "good"},
		{59.9, "average"},
		{40, "average"},
		{39.9, "fair"},
		{25, "fair"},
		{24.9, "poor"},
		{0, "poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tier(tt.score), "tier for %.1f", tt.score)
	}
}

func TestTipsNeverEmpty(t *testing.T) {
	for _, score := range []float64{0, 29.9, 30, 59.9, 60, 100} {
		tips := Tips(score, extraction.NewSkillSet())
		assert.NotEmpty(t, tips, "tips for score %.1f", score)
	}
}

func TestTipsCallOutMissingSkills(t *testing.T) {
	missing := extraction.NewSkillSet("docker", "kubernetes", "terraform", "aws")
	tips := Tips(45.0, missing)

	var callout string
	for _, tip := range tips {
		if len(tip) > 0 && tip[0:5] == "Learn" {
			callout = tip
		}
	}
	assert.Contains(t, callout, "docker")
	assert.Contains(t, callout, "kubernetes")
	assert.Contains(t, callout, "terraform")
	assert.NotContains(t, callout, "aws", "callout names at most three skills")
}

func TestTipsDeterministic(t *testing.T) {
	missing := extraction.NewSkillSet("docker", "aws")
	first := Tips(50.0, missing)
	second := Tips(50.0, missing)
	assert.Equal(t, first, second)
}
