package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var (
	scoreResumePath string
	scoreJobPath    string
	scoreJSON       bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job description",
	Long:  `Score computes the ATS match score, matched and missing skills, career suggestions and resume tips for a single resume against a job description.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResumePath, "resume", "", "Path to the resume (PDF, DOCX, HTML or text)")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to the job description (PDF, DOCX, HTML or text)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the raw JSON result")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	_, eng, err := buildEngine()
	if err != nil {
		return err
	}

	resumeText, err := readDocument(scoreResumePath)
	if err != nil {
		return err
	}
	jobText, err := readDocument(scoreJobPath)
	if err != nil {
		return err
	}

	result, err := eng.Score(resumeText, jobText)
	if err != nil {
		return err
	}

	if scoreJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreResult(scoreResumePath, result)
	return nil
}

// readDocument loads and extracts text from a document on disk.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err := ingestion.ExtractText(path, data)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, nil
}
