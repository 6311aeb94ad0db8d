package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

func testVocab(t *testing.T) *vocabulary.Vocabulary {
	t.Helper()
	v, err := vocabulary.New(
		[]string{"python", "java", "javascript", "c", "c++", "c#", "go", "node.js", "machine learning", "rest apis", "sql"},
		map[string]string{"golang": "go", "ml": "machine learning"},
	)
	require.NoError(t, err)
	return v
}

func TestExtractCaseInsensitive(t *testing.T) {
	v := testVocab(t)
	got := Extract("Experienced PYTHON and Java developer", v)
	assert.Equal(t, []string{"python", "java"}, got.Skills())
}

func TestExtractBoundaryAnchored(t *testing.T) {
	v := testVocab(t)

	// "javascripting" must not match java or javascript.
	got := Extract("I enjoy javascripting every day", v)
	assert.Equal(t, 0, got.Len())

	// "javascript" matches javascript but not java.
	got = Extract("javascript expert", v)
	assert.Equal(t, []string{"javascript"}, got.Skills())
}

func TestExtractPunctuatedSkills(t *testing.T) {
	v := testVocab(t)

	got := Extract("Wrote services in C++ and C#", v)
	assert.True(t, got.Contains("c++"))
	assert.True(t, got.Contains("c#"))
	assert.False(t, got.Contains("c"), "c must not fire inside c++ or c#")

	got = Extract("plain C programmer", v)
	assert.True(t, got.Contains("c"))
	assert.False(t, got.Contains("c++"))
}

func TestExtractMultiWordPhrases(t *testing.T) {
	v := testVocab(t)

	got := Extract("built machine learning pipelines and REST APIs", v)
	assert.True(t, got.Contains("machine learning"))
	assert.True(t, got.Contains("rest apis"))

	// Words present but not contiguous do not match.
	got = Extract("machine operator with learning mindset", v)
	assert.False(t, got.Contains("machine learning"))
}

func TestExtractAliasesResolveToCanonical(t *testing.T) {
	v := testVocab(t)

	got := Extract("5 years of Golang and ML experience", v)
	assert.True(t, got.Contains("go"))
	assert.True(t, got.Contains("machine learning"))
	assert.False(t, got.Contains("golang"), "aliases resolve to canonical names")
}

func TestExtractDeduplicatesAndKeepsVocabularyOrder(t *testing.T) {
	v := testVocab(t)

	got := Extract("sql then go then python, more SQL, golang again, python", v)
	assert.Equal(t, []string{"python", "go", "sql"}, got.Skills())
}

func TestExtractEmptyInput(t *testing.T) {
	v := testVocab(t)
	got := Extract("", v)
	assert.Equal(t, 0, got.Len())
	assert.Empty(t, got.Skills())
}

func TestSkillSetOperations(t *testing.T) {
	a := NewSkillSet("python", "go", "sql")
	b := NewSkillSet("go", "rust")

	assert.Equal(t, []string{"go"}, a.Intersect(b).Skills())
	assert.Equal(t, []string{"python", "sql"}, a.Subtract(b).Skills())
	assert.Equal(t, 3, a.Len())
}

func TestSkillSetNilSafe(t *testing.T) {
	var s *SkillSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("go"))
	assert.Empty(t, s.Skills())
	assert.Equal(t, 0, s.Intersect(NewSkillSet("go")).Len())
	assert.Equal(t, 0, s.Subtract(NewSkillSet("go")).Len())
}
