// Package career maps matched skill clusters to career path suggestions.
// The mapping is a declarative lookup table, not branching logic, so the
// cluster content can be swapped without touching code.
package career

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/types"
)

//go:embed data/careers.yaml
var embeddedClusters []byte

// Match strength thresholds on the fraction of a cluster's defining skills
// present in the matched set.
const (
	highThreshold   = 0.5
	mediumThreshold = 0.25

	maxSuggestions = 3
)

// Cluster defines one career path and the skills that signal it.
type Cluster struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	NextSteps   string   `yaml:"next_steps"`
	Skills      []string `yaml:"skills"`
}

// Table is the immutable cluster lookup table plus the generic fallback
// entry. Load once at startup; safe for concurrent reads.
type Table struct {
	Clusters []Cluster `yaml:"clusters"`
	Fallback Cluster   `yaml:"fallback"`
}

// Load builds the table from the embedded cluster data.
func Load() (*Table, error) {
	return parse(embeddedClusters)
}

// LoadFile builds the table from an external YAML file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read career clusters file %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse career clusters YAML: %w", err)
	}
	if len(t.Clusters) == 0 {
		return nil, fmt.Errorf("career cluster table is empty")
	}
	for i, c := range t.Clusters {
		if c.Title == "" || len(c.Skills) == 0 {
			return nil, fmt.Errorf("career cluster %d is missing a title or skills", i)
		}
	}
	if t.Fallback.Title == "" {
		return nil, fmt.Errorf("career cluster table has no fallback entry")
	}
	return &t, nil
}

// Recommend returns up to three career suggestions for a matched skill set,
// strongest clusters first with table order breaking ties. A cluster needs at
// least one matched skill to appear; when none qualifies the generic fallback
// is returned so callers always have content to present.
func (t *Table) Recommend(matched *extraction.SkillSet) []types.CareerSuggestion {
	type scored struct {
		cluster  Cluster
		fraction float64
	}

	var candidates []scored
	for _, cluster := range t.Clusters {
		hits := 0
		for _, skill := range cluster.Skills {
			if matched.Contains(skill) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		candidates = append(candidates, scored{
			cluster:  cluster,
			fraction: float64(hits) / float64(len(cluster.Skills)),
		})
	}

	if len(candidates) == 0 {
		return []types.CareerSuggestion{{
			Title:       t.Fallback.Title,
			Description: t.Fallback.Description,
			Match:       "Medium",
			NextSteps:   t.Fallback.NextSteps,
		}}
	}

	// Stable sort by fraction keeps table order for equal strengths.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].fraction > candidates[j-1].fraction; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	suggestions := make([]types.CareerSuggestion, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, types.CareerSuggestion{
			Title:       c.cluster.Title,
			Description: c.cluster.Description,
			Match:       strength(c.fraction),
			NextSteps:   c.cluster.NextSteps,
		})
	}
	return suggestions
}

func strength(fraction float64) string {
	switch {
	case fraction >= highThreshold:
		return "High"
	case fraction >= mediumThreshold:
		return "Medium"
	default:
		return "Low"
	}
}
