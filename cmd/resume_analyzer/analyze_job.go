package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Extract skills and keywords from a job description",
	Long:  "Reads a job description from a file or job posting URL and outputs an AnalysisResult JSON with skills and top keywords.",
	Args:  cobra.NoArgs,
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobInput  string
	analyzeJobURL    string
	analyzeJobOutput string
	analyzeJobTopN   int
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobInput, "in", "i", "", "Path to job description file")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobURL, "url", "u", "", "URL of a job posting")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeJobCmd.Flags().IntVarP(&analyzeJobTopN, "top-n", "n", 0, "Number of keywords to report (default 15)")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(cmd *cobra.Command, _ []string) error {
	source, err := exactlyOne("--in", analyzeJobInput, "--url", analyzeJobURL)
	if err != nil {
		return err
	}

	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	doc, err := sess.readDocument(cmd.Context(), source)
	if err != nil {
		return err
	}

	result := sess.analyzer.AnalyzeJobDescription(doc.Text)
	if sess.cfg.Verbose {
		sess.printer.PrintAnalysis(source, result)
	}

	return writeResult(cmd, schemas.AnalysisResult, analyzeJobOutput, result)
}

// exactlyOne returns whichever of two mutually exclusive flag values is set
func exactlyOne(nameA, a, nameB, b string) (string, error) {
	if a == "" && b == "" {
		return "", fmt.Errorf("either %s or %s must be provided", nameA, nameB)
	}
	if a != "" && b != "" {
		return "", fmt.Errorf("%s and %s are mutually exclusive; provide only one", nameA, nameB)
	}
	if a != "" {
		return a, nil
	}
	return b, nil
}
