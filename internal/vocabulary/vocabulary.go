// Package vocabulary provides the static reference set of known technical
// skills used by skill extraction. The vocabulary is loaded once at process
// start, is immutable afterwards, and is safe for unsynchronized concurrent
// reads.
package vocabulary

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-matcher/internal/textnorm"
)

//go:embed data/vocabulary.yaml
var embeddedVocabulary []byte

// vocabularyFile is the on-disk YAML shape.
type vocabularyFile struct {
	Skills  []string          `yaml:"skills"`
	Aliases map[string]string `yaml:"aliases"`
}

// Entry is one canonical skill with its normalized phrase form used for
// boundary-anchored matching.
type Entry struct {
	Canonical string
	Phrase    string
}

// Vocabulary is an ordered, deduplicated set of canonical skills plus alias
// phrases that resolve to them. Construct via Load, LoadFile or New.
type Vocabulary struct {
	entries []Entry
	order   map[string]int
	aliases []Entry // alias phrase -> canonical, matched after canonicals
}

// Load builds the vocabulary from the embedded data file. An empty or
// malformed vocabulary is a configuration error and should abort startup.
func Load() (*Vocabulary, error) {
	return parse(embeddedVocabulary)
}

// LoadFile builds the vocabulary from an external YAML file, allowing
// deployments to swap the skill list without rebuilding.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	return parse(data)
}

// New builds a vocabulary from explicit skill and alias lists. Entries are
// deduplicated case-insensitively; the first occurrence fixes canonical order.
func New(skills []string, aliases map[string]string) (*Vocabulary, error) {
	v := &Vocabulary{order: make(map[string]int)}

	for _, s := range skills {
		canonical := strings.ToLower(strings.TrimSpace(s))
		if canonical == "" {
			continue
		}
		if _, seen := v.order[canonical]; seen {
			continue
		}
		phrase := textnorm.ScanForm(canonical)
		if phrase == "" {
			continue
		}
		v.order[canonical] = len(v.entries)
		v.entries = append(v.entries, Entry{Canonical: canonical, Phrase: phrase})
	}

	if len(v.entries) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}

	for variant, target := range aliases {
		canonical := strings.ToLower(strings.TrimSpace(target))
		if _, known := v.order[canonical]; !known {
			return nil, fmt.Errorf("alias %q points to unknown skill %q", variant, target)
		}
		phrase := textnorm.ScanForm(variant)
		if phrase == "" {
			continue
		}
		v.aliases = append(v.aliases, Entry{Canonical: canonical, Phrase: phrase})
	}

	return v, nil
}

func parse(data []byte) (*Vocabulary, error) {
	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary YAML: %w", err)
	}
	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary data contains no skills")
	}
	return New(file.Skills, file.Aliases)
}

// Entries returns canonical entries in vocabulary order. Callers must not
// mutate the returned slice.
func (v *Vocabulary) Entries() []Entry {
	return v.entries
}

// Aliases returns alias entries. Callers must not mutate the returned slice.
func (v *Vocabulary) Aliases() []Entry {
	return v.aliases
}

// Len reports the number of canonical skills.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// OrderOf returns the canonical position of a skill, or -1 when unknown.
// Matched/missing skill lists are sorted by this position so output is
// deterministic regardless of scan order.
func (v *Vocabulary) OrderOf(canonical string) int {
	if i, ok := v.order[canonical]; ok {
		return i
	}
	return -1
}

// Contains reports whether the canonical skill is in the vocabulary.
func (v *Vocabulary) Contains(canonical string) bool {
	_, ok := v.order[strings.ToLower(canonical)]
	return ok
}
