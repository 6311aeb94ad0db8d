// Package observability provides formatted terminal output for CLI results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxSkillsToShow caps skill lists in terminal output
	maxSkillsToShow = 10
)

// Printer handles formatted output for CLI mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResult outputs a human-readable summary of one scoring run.
func (p *Printer) PrintScoreResult(name string, result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score:    %.1f / 100 (%s)\n", result.ATSScore, result.Tier))
	sb.WriteString(fmt.Sprintf("Similarity:   %.1f%%\n", result.SimilarityScore))
	sb.WriteString(fmt.Sprintf("Skill match:  %.1f%%\n", result.SkillMatchPercent))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched (%d):  %s\n", len(result.MatchedSkills), skillList(result.MatchedSkills)))
	sb.WriteString(fmt.Sprintf("Missing (%d):  %s", len(result.MissingSkills), skillList(result.MissingSkills)))

	p.printBox("Match Report: "+name, sb.String())

	if len(result.CareerSuggestions) > 0 {
		var cb strings.Builder
		for i, c := range result.CareerSuggestions {
			if i > 0 {
				cb.WriteString("\n")
			}
			cb.WriteString(fmt.Sprintf("%s (%s match)\n", c.Title, c.Match))
			cb.WriteString(fmt.Sprintf("  %s\n", c.Description))
			cb.WriteString(fmt.Sprintf("  Next: %s\n", c.NextSteps))
		}
		p.printBox("Career Suggestions", strings.TrimRight(cb.String(), "\n"))
	}

	if len(result.Tips) > 0 {
		var tb strings.Builder
		for i, tip := range result.Tips {
			if i > 0 {
				tb.WriteString("\n")
			}
			tb.WriteString("- " + tip)
		}
		p.printBox("Tips", tb.String())
	}
}

// PrintRanking outputs a ranking table, best match first.
func (p *Printer) PrintRanking(result *types.RankingResult) {
	if result == nil || len(result.Rankings) == 0 {
		return
	}

	var sb strings.Builder
	for i, entry := range result.Rankings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", entry.Rank, entry.Name))
		sb.WriteString(fmt.Sprintf("    ATS %.1f | similarity %.1f | skills %.1f%%\n",
			entry.Result.ATSScore, entry.Result.SimilarityScore, entry.Result.SkillMatchPercent))
		sb.WriteString(fmt.Sprintf("    matched: %s", skillList(entry.Result.MatchedSkills)))
	}
	p.printBox(fmt.Sprintf("Resume Ranking (%d candidates)", len(result.Rankings)), strings.TrimRight(sb.String(), "\n"))
}

func skillList(skills []string) string {
	if len(skills) == 0 {
		return "none"
	}
	shown := skills
	suffix := ""
	if len(shown) > maxSkillsToShow {
		shown = shown[:maxSkillsToShow]
		suffix = fmt.Sprintf(" (+%d more)", len(skills)-maxSkillsToShow)
	}
	return strings.Join(shown, ", ") + suffix
}
