package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	verr := &engine.ValidationError{Field: "job_description", Message: "required"}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(verr))

	req := types.ScoreRequest{}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(req.Validate()))

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
