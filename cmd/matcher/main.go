// Package main provides the resume-matcher CLI: score one resume against a
// job description, rank several, or serve the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/career"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "matcher",
	Short: "Resume-to-job matching engine",
	Long:  "Resume Matcher computes ATS-style match scores between resumes and job descriptions, extracts skill overlaps and produces career recommendations.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildEngine loads configuration and the static data files and constructs
// the engine. An empty or unloadable vocabulary aborts here, before any
// request is served.
func buildEngine() (*config.Config, *engine.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("vocabulary configuration error: %w", err)
	}
	careers, err := loadCareers(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("career table configuration error: %w", err)
	}

	eng := engine.New(vocab, careers, engine.WithMinJobLength(cfg.MinJobLength))
	return cfg, eng, nil
}

func loadVocabulary(cfg *config.Config) (*vocabulary.Vocabulary, error) {
	if cfg.Vocabulary != "" {
		return vocabulary.LoadFile(cfg.Vocabulary)
	}
	return vocabulary.Load()
}

func loadCareers(cfg *config.Config) (*career.Table, error) {
	if cfg.Careers != "" {
		return career.LoadFile(cfg.Careers)
	}
	return career.Load()
}
