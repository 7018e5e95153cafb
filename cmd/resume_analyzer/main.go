// Package main implements the resume_analyzer CLI: skill, action-verb and
// keyword extraction for resumes and job descriptions, and resume-to-job matching.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Analyze resumes and job descriptions and score how well they match",
	Long: `resume_analyzer extracts skills, action verbs and keywords from resumes and
job descriptions (text, Markdown, HTML, PDF, DOCX or job posting URLs) and
reports which required skills a resume covers.

Configuration can be loaded from a JSON file using --config. Command-line
flags override config file values; RESUME_ANALYZER_* environment variables
fill anything still unset.`,
	SilenceUsage: true,
}

var (
	configPath  string
	lexiconPath string
	logLevel    string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "Path to a YAML/JSON lexicon file (default: built-in lexicon)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
