package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect and validate skill and action-verb lexicons",
}

var lexiconValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a lexicon file",
	Long:  "Checks a YAML or JSON lexicon file against the lexicon schema and builds it, reporting phrase counts.",
	Args:  cobra.NoArgs,
	RunE:  runLexiconValidate,
}

var lexiconShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the phrases of the active lexicon",
	Long:  "Prints the normalized phrases of the configured (or built-in) lexicon, one per line.",
	Args:  cobra.NoArgs,
	RunE:  runLexiconShow,
}

var (
	lexiconValidateFile string
	lexiconShowLabel    string
)

func init() {
	lexiconValidateCmd.Flags().StringVarP(&lexiconValidateFile, "file", "f", "", "Path to lexicon file (required)")
	_ = lexiconValidateCmd.MarkFlagRequired("file")

	lexiconShowCmd.Flags().StringVarP(&lexiconShowLabel, "label", "l", "", "Only show one label: skill or action_verb")

	lexiconCmd.AddCommand(lexiconValidateCmd, lexiconShowCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func runLexiconValidate(cmd *cobra.Command, _ []string) error {
	set, err := lexicon.Load(lexiconValidateFile)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Lexicon %s is valid: %d skills, %d action verbs, %d stopwords; longest phrase %d tokens\n",
		lexiconValidateFile, set.Skills.Len(), set.ActionVerbs.Len(), len(set.Stopwords),
		max(set.Skills.MaxPhraseLen(), set.ActionVerbs.MaxPhraseLen()))
	return nil
}

func runLexiconShow(cmd *cobra.Command, _ []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	labels := []lexicon.Label{lexicon.LabelSkill, lexicon.LabelActionVerb}
	if lexiconShowLabel != "" {
		label := lexicon.Label(lexiconShowLabel)
		if !label.Valid() {
			return &lexicon.UnknownLabelError{Label: lexiconShowLabel}
		}
		labels = []lexicon.Label{label}
	}

	out := cmd.OutOrStdout()
	for i, label := range labels {
		phrases := sess.lexicons.Lexicon(label).Phrases()
		if len(labels) > 1 {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintf(out, "# %s (%d)\n", label, len(phrases))
		}
		_, _ = fmt.Fprintln(out, strings.Join(phrases, "\n"))
	}
	return nil
}
