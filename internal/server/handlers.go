package server

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalyzeResponse wraps a score result with the stored analysis ID when
// history is enabled.
type AnalyzeResponse struct {
	*types.ScoreResult
	AnalysisID string `json:"analysis_id,omitempty"`
}

// handleAnalyze scores one resume against a job description. The resume
// arrives either as an uploaded file (multipart field "resume") or as JSON
// with resume_text; the job description as form field or JSON.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	resumeName, resumeText, jobText, ok := s.readScoreInput(w, r)
	if !ok {
		return
	}

	if strings.TrimSpace(jobText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description is required")
		return
	}
	if len(strings.TrimSpace(jobText)) < s.cfg.MinJobLength {
		s.errorResponse(w, http.StatusBadRequest, "job description is too short to analyze")
		return
	}

	result, err := s.engine.Score(resumeText, jobText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	analysesTotal.WithLabelValues("score").Inc()

	resp := AnalyzeResponse{ScoreResult: result}
	if s.store != nil {
		id, err := s.store.SaveAnalysis(r.Context(), resumeName, jobText, result)
		if err != nil {
			// History is best effort; the scoring result still goes out.
			s.log.Warn("failed to save analysis", zap.Error(err))
		} else {
			resp.AnalysisID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// readScoreInput pulls the resume and job description out of either a
// multipart upload or a JSON body. Reports false after writing an error.
func (s *Server) readScoreInput(w http.ResponseWriter, r *http.Request) (name, resumeText, jobText string, ok bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.maxUploadBytes()); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
			return "", "", "", false
		}
		jobText = r.FormValue("job_description")

		file, header, err := r.FormFile("resume")
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "resume file is required")
			return "", "", "", false
		}
		defer file.Close()

		text, ok2 := s.extractUpload(w, header.Filename, file)
		if !ok2 {
			return "", "", "", false
		}
		return header.Filename, text, jobText, true
	}

	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return "", "", "", false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return "", "", "", false
	}
	return "resume.txt", req.ResumeText, req.JobDescription, true
}

func (s *Server) extractUpload(w http.ResponseWriter, filename string, file multipart.File) (string, bool) {
	if !ingestion.SupportedExtension(filename) {
		s.errorResponse(w, http.StatusBadRequest, "only PDF, DOCX, HTML and text files are supported")
		return "", false
	}
	text, err := ingestion.ExtractFromReader(filename, file)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "could not read "+filename+": "+err.Error())
		return "", false
	}
	return text, true
}

// handleRank ranks multiple resumes against one job description. Resumes
// arrive as repeated multipart "resumes" file fields or as a JSON RankRequest.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	resumes, jobText, ok := s.readRankInput(w, r)
	if !ok {
		return
	}

	result, err := ranking.Rank(s.engine, resumes, jobText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	analysesTotal.WithLabelValues("rank").Inc()

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) readRankInput(w http.ResponseWriter, r *http.Request) ([]types.NamedResume, string, bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.maxUploadBytes()); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
			return nil, "", false
		}
		jobText := r.FormValue("job_description")

		files := r.MultipartForm.File["resumes"]
		if len(files) < ranking.MinResumes {
			s.errorResponse(w, http.StatusBadRequest, "upload at least 2 resumes to rank")
			return nil, "", false
		}

		resumes := make([]types.NamedResume, 0, len(files))
		for _, header := range files {
			file, err := header.Open()
			if err != nil {
				s.errorResponse(w, http.StatusBadRequest, "could not open "+header.Filename)
				return nil, "", false
			}
			text, ok := s.extractUpload(w, header.Filename, file)
			file.Close()
			if !ok {
				return nil, "", false
			}
			resumes = append(resumes, types.NamedResume{Name: header.Filename, Text: text})
		}
		return resumes, jobText, true
	}

	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, "", false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, "", false
	}
	resumes := make([]types.NamedResume, 0, len(req.Resumes))
	for _, nr := range req.Resumes {
		resumes = append(resumes, types.NamedResume{Name: nr.Name, Text: nr.Text})
	}
	return resumes, req.JobDescription, true
}

// handleHistory lists recent analyses.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "analysis history is not configured")
		return
	}
	analyses, err := s.store.ListAnalyses(r.Context(), 20)
	if err != nil {
		s.log.Error("failed to list analyses", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"history": analyses})
}

// handleHistoryEntry returns one stored analysis.
func (s *Server) handleHistoryEntry(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "analysis history is not configured")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}
	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.errorResponse(w, http.StatusNotFound, "analysis not found")
			return
		}
		s.log.Error("failed to get analysis", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) maxUploadBytes() int64 {
	return int64(s.cfg.MaxUploadMB) << 20
}
