package main

import (
	"log/slog"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long: `Compares the skills found in a resume with those required by a job
description and outputs a MatchResult JSON with the match score, matched and
missing skills, and recommendations.`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

var (
	matchResume string
	matchJob    string
	matchJobURL string
	matchOutput string
	matchTopN   int
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description file")
	matchCmd.Flags().StringVarP(&matchJobURL, "job-url", "u", "", "URL of a job posting")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().IntVarP(&matchTopN, "top-n", "n", 0, "Number of keywords extracted per document (default 15)")

	_ = matchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	jobSource, err := exactlyOne("--job", matchJob, "--job-url", matchJobURL)
	if err != nil {
		return err
	}

	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	// Load both documents concurrently; a job URL fetch dominates latency
	var resumeText, jobText string
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		doc, err := sess.readDocument(ctx, matchResume)
		if err != nil {
			return err
		}
		resumeText = doc.Text
		return nil
	})
	g.Go(func() error {
		doc, err := sess.readDocument(ctx, jobSource)
		if err != nil {
			return err
		}
		jobText = doc.Text
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	result := sess.engine.Match(resumeText, jobText)
	sess.logger.Info("match complete",
		slog.Float64("score", result.MatchScore),
		slog.Any("skills", result.MatchedSkills))
	if sess.cfg.Verbose {
		sess.printer.PrintMatch(result)
	}

	return writeResult(cmd, schemas.MatchResult, matchOutput, result)
}
