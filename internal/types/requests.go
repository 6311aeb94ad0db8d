package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest represents the request body for POST /analyze when the resume
// is submitted as plain text rather than an uploaded file.
type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// RankRequest represents the request body for POST /rank with pre-extracted texts.
type RankRequest struct {
	Resumes        []NamedResumeText `json:"resumes" validate:"required,min=2,dive"`
	JobDescription string            `json:"job_description" validate:"required,min=1"`
}

// NamedResumeText is the wire form of one resume in a RankRequest.
type NamedResumeText struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
