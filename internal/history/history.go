// Package history provides PostgreSQL storage for past analysis results.
// The engine never persists anything itself; the server records results here
// after scoring so users can revisit them.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the analyses table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			resume_name      TEXT NOT NULL,
			ats_score        DOUBLE PRECISION NOT NULL,
			similarity_score DOUBLE PRECISION NOT NULL,
			matched_skills   JSONB NOT NULL DEFAULT '[]',
			missing_skills   JSONB NOT NULL DEFAULT '[]',
			job_description  TEXT NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// Analysis is one stored scoring record.
type Analysis struct {
	ID              uuid.UUID `json:"id"`
	ResumeName      string    `json:"resume_name"`
	ATSScore        float64   `json:"ats_score"`
	SimilarityScore float64   `json:"similarity_score"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	JobDescription  string    `json:"job_description"`
	CreatedAt       time.Time `json:"created_at"`
}

// jobDescriptionLimit caps the stored job description excerpt.
const jobDescriptionLimit = 500

// SaveAnalysis stores a scoring result and returns its ID.
func (s *Store) SaveAnalysis(ctx context.Context, resumeName, jobDescription string, result *types.ScoreResult) (uuid.UUID, error) {
	matched, err := json.Marshal(result.MatchedSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal matched skills: %w", err)
	}
	missing, err := json.Marshal(result.MissingSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}

	if len(jobDescription) > jobDescriptionLimit {
		jobDescription = jobDescription[:jobDescriptionLimit]
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO analyses (resume_name, ats_score, similarity_score, matched_skills, missing_skills, job_description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		resumeName, result.ATSScore, result.SimilarityScore, matched, missing, jobDescription,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// ListAnalyses returns the most recent analyses, newest first.
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, resume_name, ats_score, similarity_score, matched_skills, missing_skills, job_description, created_at
		 FROM analyses
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// GetAnalysis retrieves one analysis by ID. Returns pgx.ErrNoRows when absent.
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, resume_name, ats_score, similarity_score, matched_skills, missing_skills, job_description, created_at
		 FROM analyses
		 WHERE id = $1`, id)
	a, err := scanAnalysis(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}
	return &a, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var matched, missing []byte
	if err := row.Scan(&a.ID, &a.ResumeName, &a.ATSScore, &a.SimilarityScore,
		&matched, &missing, &a.JobDescription, &a.CreatedAt); err != nil {
		return a, err
	}
	if err := json.Unmarshal(matched, &a.MatchedSkills); err != nil {
		return a, fmt.Errorf("failed to decode matched skills: %w", err)
	}
	if err := json.Unmarshal(missing, &a.MissingSkills); err != nil {
		return a, fmt.Errorf("failed to decode missing skills: %w", err)
	}
	return a, nil
}
