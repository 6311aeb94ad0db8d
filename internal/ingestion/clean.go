package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace = regexp.MustCompile(`[ \t]+`)
	multiBlank = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted document text: line endings unified, runs of
// spaces collapsed, excessive blank lines reduced. PDF extraction in
// particular produces broken line breaks and stray spacing that would
// otherwise leak into scoring.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimSpace(multiSpace.ReplaceAllString(line, " ")))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
