package main

import (
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/spf13/cobra"
)

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume",
	Short: "Extract skills, action verbs and keywords from a resume",
	Long:  "Reads a resume (text, Markdown, HTML, PDF or DOCX) and outputs an AnalysisResult JSON with skills, action verbs and top keywords.",
	Args:  cobra.NoArgs,
	RunE:  runAnalyzeResume,
}

var (
	analyzeResumeInput  string
	analyzeResumeOutput string
	analyzeResumeTopN   int
	analyzeResumeCounts bool
)

func init() {
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeInput, "in", "i", "", "Path to resume file (required)")
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeResumeCmd.Flags().IntVarP(&analyzeResumeTopN, "top-n", "n", 0, "Number of keywords to report (default 15)")
	analyzeResumeCmd.Flags().BoolVar(&analyzeResumeCounts, "counts", false, "Print keyword occurrence counts to stderr")

	_ = analyzeResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeResumeCmd)
}

func runAnalyzeResume(cmd *cobra.Command, _ []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	doc, err := sess.readDocument(cmd.Context(), analyzeResumeInput)
	if err != nil {
		return err
	}

	result := sess.analyzer.AnalyzeResume(doc.Text)
	if sess.cfg.Verbose {
		sess.printer.PrintAnalysis(analyzeResumeInput, result)
	}
	if analyzeResumeCounts {
		sess.printer.PrintKeywordCounts(sess.analyzer.RankKeywords(doc.Text), sess.analyzer.TopN())
	}

	return writeResult(cmd, schemas.AnalysisResult, analyzeResumeOutput, result)
}
