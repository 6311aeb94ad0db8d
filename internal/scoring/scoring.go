// Package scoring blends textual similarity and skill overlap into the
// composite ATS score and derives the presentation tier and resume tips.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/similarity"
)

// Blend weights: 60% textual similarity, 40% explicit skill overlap.
const (
	similarityWeight = 0.6
	skillWeight      = 0.4
)

// Blended is the partial score record produced by Blend; the engine enriches
// it with career suggestions before returning a full ScoreResult.
type Blended struct {
	SimilarityScore   float64
	ATSScore          float64
	SkillMatchPercent float64
	Matched           *extraction.SkillSet
	Missing           *extraction.SkillSet
}

// Blend combines a similarity percentage with resume/job skill sets.
// Matched is the intersection and Missing the job set minus the resume set,
// so every job-required skill is classified exactly once. A job with no
// extractable skills contributes zero to the skill term rather than failing:
// the ATS score then collapses to the weighted similarity component.
func Blend(similarityScore float64, resumeSkills, jobSkills *extraction.SkillSet) Blended {
	matched := jobSkills.Intersect(resumeSkills)
	missing := jobSkills.Subtract(resumeSkills)

	ratio := 0.0
	if jobSkills.Len() > 0 {
		ratio = float64(matched.Len()) / float64(jobSkills.Len())
	}

	ats := similarityScore*similarityWeight + ratio*100*skillWeight
	if ats < 0 {
		ats = 0
	}
	if ats > 100 {
		ats = 100
	}

	return Blended{
		SimilarityScore:   similarityScore,
		ATSScore:          similarity.Round1(ats),
		SkillMatchPercent: similarity.Round1(ratio * 100),
		Matched:           matched,
		Missing:           missing,
	}
}

// Tier maps an ATS score to its qualitative band. It is always derived, never
// stored, so score and tier cannot drift apart.
func Tier(atsScore float64) string {
	switch {
	case atsScore >= 75:
		return "excellent"
	case atsScore >= 60:
		return "good"
	case atsScore >= 40:
		return "average"
	case atsScore >= 25:
		return "fair"
	default:
		return "poor"
	}
}

// Tips returns resume improvement advice tiered by score, with callouts for
// the most important missing skills. The sequence is deterministic for a
// fixed score and missing set and is never empty.
func Tips(atsScore float64, missing *extraction.SkillSet) []string {
	var tips []string

	switch {
	case atsScore < 30:
		tips = append(tips,
			"Your resume needs significant improvement for this role. Focus on adding relevant keywords.",
			"Rewrite your resume to match the job description more closely.",
			"Add a strong summary section targeting this specific role.",
		)
	case atsScore < 60:
		tips = append(tips,
			"Your resume is a partial match. Add more of the skills the job description asks for.",
			"Quantify achievements with numbers (e.g. \"improved performance by 30%\").",
			"Use action verbs such as developed, implemented, designed, led.",
		)
	default:
		tips = append(tips,
			"Strong match. A few tweaks will make it even better.",
			"Make sure your online profiles match your resume.",
			"Add links to projects or a portfolio that back up your top skills.",
		)
	}

	if missing.Len() > 0 {
		top := missing.Skills()
		if len(top) > 3 {
			top = top[:3]
		}
		tips = append(tips,
			fmt.Sprintf("Learn these in-demand skills the job requires: %s.", strings.Join(top, ", ")),
			"Add relevant certifications or coursework to cover skill gaps.",
		)
	}

	tips = append(tips,
		"Keep your resume to one or two pages.",
		"Use a clean, ATS-friendly layout without graphics or tables.",
	)
	return tips
}
