package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank several job descriptions by how well a resume matches them",
	Long: `Matches one resume against many job descriptions (files or posting URLs)
and outputs a JobRanking JSON ordered by match score, best first.`,
	Args: cobra.NoArgs,
	RunE: runRankJobs,
}

var (
	rankJobsResume string
	rankJobsJobs   []string
	rankJobsOutput string
	rankJobsTopN   int
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankJobsResume, "resume", "r", "", "Path to resume file (required)")
	rankJobsCmd.Flags().StringSliceVarP(&rankJobsJobs, "jobs", "j", nil, "Job description files or URLs (repeatable or comma-separated, required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankJobsCmd.Flags().IntVarP(&rankJobsTopN, "top-n", "n", 0, "Number of keywords extracted per document (default 15)")

	_ = rankJobsCmd.MarkFlagRequired("resume")
	_ = rankJobsCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(cmd *cobra.Command, _ []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	resume, err := sess.readDocument(cmd.Context(), rankJobsResume)
	if err != nil {
		return err
	}

	jobs := make([]matching.Job, 0, len(rankJobsJobs))
	for _, source := range rankJobsJobs {
		doc, err := sess.readDocument(cmd.Context(), source)
		if err != nil {
			return err
		}
		jobs = append(jobs, matching.Job{ID: jobID(source, len(jobs)+1), Source: source, Text: doc.Text})
	}

	ranked, err := sess.engine.Rank(cmd.Context(), resume.Text, jobs)
	if err != nil {
		return err
	}

	ranking := types.JobRanking{ResumeSource: rankJobsResume, Jobs: ranked}
	if sess.cfg.Verbose {
		sess.printer.PrintRanking(ranking)
	}

	return writeResult(cmd, schemas.JobRanking, rankJobsOutput, ranking)
}

// jobID derives a readable identifier from a file name, falling back to the position
func jobID(source string, position int) string {
	if isURL(source) {
		return fmt.Sprintf("job-%d", position)
	}
	base := filepath.Base(source)
	if id := strings.TrimSuffix(base, filepath.Ext(base)); id != "" && id != "." {
		return id
	}
	return fmt.Sprintf("job-%d", position)
}
