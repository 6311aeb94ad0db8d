// Package extraction finds known skills in normalized document text using
// boundary-anchored phrase matching against the skill vocabulary.
package extraction

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/textnorm"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// SkillSet is a set of canonical skill names with a deterministic iteration
// order (vocabulary order).
type SkillSet struct {
	skills []string
	seen   map[string]bool
}

// NewSkillSet builds a SkillSet preserving the order of first occurrence.
func NewSkillSet(skills ...string) *SkillSet {
	s := &SkillSet{seen: make(map[string]bool, len(skills))}
	for _, skill := range skills {
		s.add(skill)
	}
	return s
}

func (s *SkillSet) add(skill string) {
	if skill == "" || s.seen[skill] {
		return
	}
	s.seen[skill] = true
	s.skills = append(s.skills, skill)
}

// Contains reports set membership by canonical name.
func (s *SkillSet) Contains(skill string) bool {
	return s != nil && s.seen[skill]
}

// Len reports the number of skills in the set.
func (s *SkillSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.skills)
}

// Skills returns the members in deterministic order. Callers must not mutate
// the returned slice.
func (s *SkillSet) Skills() []string {
	if s == nil {
		return nil
	}
	return s.skills
}

// Intersect returns the members of s also present in other, keeping s's order.
func (s *SkillSet) Intersect(other *SkillSet) *SkillSet {
	out := &SkillSet{seen: make(map[string]bool)}
	if s == nil {
		return out
	}
	for _, skill := range s.skills {
		if other.Contains(skill) {
			out.add(skill)
		}
	}
	return out
}

// Subtract returns the members of s absent from other, keeping s's order.
func (s *SkillSet) Subtract(other *SkillSet) *SkillSet {
	out := &SkillSet{seen: make(map[string]bool)}
	if s == nil {
		return out
	}
	for _, skill := range s.skills {
		if !other.Contains(skill) {
			out.add(skill)
		}
	}
	return out
}

// Extract scans raw text for vocabulary skills. Matching is case-insensitive
// and whole-word: a vocabulary phrase matches only when bounded by token
// separators on both sides, so "java" never fires inside "javascript" and "c"
// never fires inside "c++". Multi-word entries match as contiguous phrases.
// Each vocabulary entry contributes at most once; result order follows
// vocabulary order. Empty input yields an empty set.
func Extract(rawText string, vocab *vocabulary.Vocabulary) *SkillSet {
	scan := textnorm.ScanForm(rawText)
	return ExtractFromScan(scan, vocab)
}

// ExtractFromScan is Extract for text already in scan-normalized form, letting
// callers that normalized once reuse the work.
func ExtractFromScan(scan string, vocab *vocabulary.Vocabulary) *SkillSet {
	result := &SkillSet{seen: make(map[string]bool)}
	if scan == "" {
		return result
	}

	// Pad with spaces so every token boundary, including the first and last,
	// is a literal space and phrase containment is boundary-anchored.
	padded := " " + scan + " "

	for _, entry := range vocab.Entries() {
		if containsPhrase(padded, entry.Phrase) {
			result.add(entry.Canonical)
		}
	}
	for _, alias := range vocab.Aliases() {
		if result.Contains(alias.Canonical) {
			continue
		}
		if containsPhrase(padded, alias.Phrase) {
			result.add(alias.Canonical)
		}
	}

	// Alias hits append after canonical hits, so restore vocabulary order.
	result.sortByVocabulary(vocab)
	return result
}

func containsPhrase(paddedText, phrase string) bool {
	return strings.Contains(paddedText, " "+phrase+" ")
}

func (s *SkillSet) sortByVocabulary(vocab *vocabulary.Vocabulary) {
	if len(s.skills) < 2 {
		return
	}
	ordered := make([]string, 0, len(s.skills))
	for _, entry := range vocab.Entries() {
		if s.seen[entry.Canonical] {
			ordered = append(ordered, entry.Canonical)
		}
	}
	s.skills = ordered
}
