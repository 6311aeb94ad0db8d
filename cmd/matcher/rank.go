package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	rankJobPath string
	rankJSON    bool
)

var rankCmd = &cobra.Command{
	Use:   "rank [resume files...]",
	Short: "Rank multiple resumes against one job description",
	Long:  `Rank scores every given resume against the same job description and prints them best match first.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankJobPath, "job", "", "Path to the job description (PDF, DOCX, HTML or text)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the raw JSON result")
	_ = rankCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, args []string) error {
	if len(args) < ranking.MinResumes {
		return fmt.Errorf("at least 2 resume files are required for ranking, got %d", len(args))
	}

	_, eng, err := buildEngine()
	if err != nil {
		return err
	}

	jobText, err := readDocument(rankJobPath)
	if err != nil {
		return err
	}

	resumes := make([]types.NamedResume, 0, len(args))
	for _, path := range args {
		text, err := readDocument(path)
		if err != nil {
			return err
		}
		resumes = append(resumes, types.NamedResume{Name: filepath.Base(path), Text: text})
	}

	result, err := ranking.Rank(eng, resumes, jobText)
	if err != nil {
		return err
	}

	if rankJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRanking(result)
	return nil
}
