// Package engine exposes the resume-to-job scoring engine: a pure, stateless
// computation over text inputs built from the vocabulary, normalization,
// extraction, similarity, scoring and career packages.
package engine

import (
	"errors"
	"fmt"
)

// ValidationError indicates a caller-input problem: missing text or too few
// resumes. It is surfaced directly with a descriptive reason and no partial
// computation is attempted. Degenerate but well-formed input (a resume with
// no recognizable tokens, a job with no known skills) is never a
// ValidationError; those cases produce well-defined zero scores.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
