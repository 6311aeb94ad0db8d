// Package textnorm normalizes raw document text for skill scanning and
// similarity vectorization. Extraction collaborators hand it plain text that
// may still carry broken line breaks, mixed casing and stray punctuation.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

// Patterns for contact noise that carries no matching signal.
var (
	urlPattern   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`[+(]?\d[\d\s().-]{7,}\d`)
)

// Normalized holds the two derived forms of one document: Scan for
// boundary-anchored skill-phrase matching (surface forms preserved) and
// Tokens for TF-IDF vectorization (stopwords removed, lightly stemmed).
type Normalized struct {
	Scan      string
	Tokens    []string
	RawLength int
}

// Normalize produces both derived forms. Empty or whitespace-only input
// yields an empty Normalized value, not an error.
func Normalize(raw string) Normalized {
	n := Normalized{RawLength: len(raw)}
	if strings.TrimSpace(raw) == "" {
		return n
	}

	stripped := stripNoise(raw)
	n.Scan = ScanForm(stripped)
	n.Tokens = SimilarityTokens(n.Scan)
	return n
}

// stripNoise removes URLs, e-mail addresses and phone numbers.
func stripNoise(text string) string {
	text = urlPattern.ReplaceAllString(text, " ")
	text = emailPattern.ReplaceAllString(text, " ")
	text = phonePattern.ReplaceAllString(text, " ")
	return text
}

// ScanForm lowercases text and collapses every separator run to a single
// space, keeping + # . inside tokens so surface forms like "c++", "c#" and
// "node.js" survive intact. Trailing dots are sentence punctuation, not part
// of a token; leading dots are kept for names like ".net".
func ScanForm(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return b.String()
}

// SimilarityTokens splits an already scan-normalized string into vectorization
// tokens: stopwords out, single-rune tokens out, light suffix stemming in.
// Stemming is applied only on this path; skill extraction needs the canonical
// surface form and reads the scan string directly.
func SimilarityTokens(scan string) []string {
	if scan == "" {
		return nil
	}
	fields := strings.Fields(scan)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 2 || stopwords[f] {
			continue
		}
		tokens = append(tokens, Stem(f))
	}
	return tokens
}

// Stem applies a light suffix stripper, enough to fold "developing" /
// "developed" / "develops" onto one term without a full Porter pass. Short
// tokens and tech surface forms (anything with + # .) are left alone.
func Stem(token string) string {
	if strings.ContainsAny(token, "+#.") {
		return token
	}
	switch {
	case len(token) > 5 && strings.HasSuffix(token, "ing"):
		return token[:len(token)-3]
	case len(token) > 5 && strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case len(token) > 4 && strings.HasSuffix(token, "ed"):
		return token[:len(token)-2]
	case len(token) > 3 && strings.HasSuffix(token, "es"):
		return token[:len(token)-2]
	case len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss"):
		return token[:len(token)-1]
	}
	return token
}

// stopwords filters common English words that add noise to similarity scoring.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true, "do": true,
	"for": true, "from": true, "had": true, "has": true, "have": true,
	"if": true, "in": true, "into": true, "is": true, "it": true, "its": true,
	"of": true, "on": true, "or": true, "our": true, "such": true, "that": true,
	"the": true, "their": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "to": true, "was": true, "we": true,
	"were": true, "which": true, "while": true, "will": true, "with": true,
	"you": true, "your": true, "not": true, "all": true, "also": true,
	"more": true, "than": true, "who": true, "what": true, "how": true,
	"about": true, "each": true, "other": true, "some": true, "would": true,
	"should": true, "must": true, "may": true, "any": true, "per": true,
}
