package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/engine"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// HTTPStatus maps engine and validation errors to HTTP status codes.
func HTTPStatus(err error) int {
	if engine.IsValidation(err) {
		return http.StatusBadRequest
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, errorBody{Error: message})
}
