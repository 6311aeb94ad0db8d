// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

// CareerSuggestion is a single rule-based career path recommendation.
type CareerSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Match       string `json:"match"` // High, Medium or Low
	NextSteps   string `json:"next_steps"`
}

// ScoreResult is the full output of scoring one resume against a job description.
// SimilarityScore and ATSScore are percentages in [0,100] with one decimal of
// precision. MatchedSkills and MissingSkills follow vocabulary order so results
// are deterministic for fixed inputs.
type ScoreResult struct {
	SimilarityScore   float64            `json:"similarity_score"`
	ATSScore          float64            `json:"ats_score"`
	SkillMatchPercent float64            `json:"skill_match_percent"`
	MatchedSkills     []string           `json:"matched_skills"`
	MissingSkills     []string           `json:"missing_skills"`
	ResumeSkills      []string           `json:"resume_skills"`
	JobSkills         []string           `json:"jd_skills"`
	Tier              string             `json:"tier"`
	CareerSuggestions []CareerSuggestion `json:"career_suggestions"`
	Tips              []string           `json:"tips"`
}

// NamedResume pairs resume text with its source identity (usually a file name).
type NamedResume struct {
	Name string `json:"name"`
	Text string `json:"-"`
}

// RankingEntry wraps one scored resume inside a ranking. Rank is 1-based;
// ties in ATSScore keep the original input order.
type RankingEntry struct {
	Rank   int          `json:"rank"`
	Name   string       `json:"name"`
	Result *ScoreResult `json:"result"`
}

// RankingResult is an ordered sequence of entries, best match first.
type RankingResult struct {
	Rankings []RankingEntry `json:"rankings"`
}
