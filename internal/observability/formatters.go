// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs the skills, action verbs and keywords of one document.
func (p *Printer) PrintAnalysis(source string, result types.AnalysisResult) {
	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source:   %s\n\n", source))
	}

	writeList(&sb, "Skills", result.Skills, maxItemsToShow*2)
	if result.Kind == types.KindResume {
		writeList(&sb, "Action verbs", result.ActionVerbs, maxItemsToShow*2)
	}
	writeList(&sb, "Keywords", result.Keywords, maxItemsToShow)

	title := "RESUME ANALYSIS"
	if result.Kind == types.KindJobDescription {
		title = "JOB DESCRIPTION ANALYSIS"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordCounts outputs up to limit keywords with their occurrence counts.
// A limit of zero or less prints every keyword.
func (p *Printer) PrintKeywordCounts(counts []extraction.KeywordCount, limit int) {
	if len(counts) == 0 {
		p.printBox("KEYWORD COUNTS", "No keywords")
		return
	}
	if limit <= 0 || limit > len(counts) {
		limit = len(counts)
	}

	var sb strings.Builder
	for _, kc := range counts[:limit] {
		sb.WriteString(fmt.Sprintf("%-40s %5d\n", kc.Word, kc.Count))
	}
	if len(counts) > limit {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(counts)-limit))
	}

	p.printBox("KEYWORD COUNTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the match score, skill gaps and recommendations.
func (p *Printer) PrintMatch(result types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.2f  %s\n\n", result.MatchScore, scoreBar(result.MatchScore)))

	writeList(&sb, "Matched", result.MatchedSkills, maxItemsToShow*2)
	writeList(&sb, "Missing", result.MissingSkills, maxItemsToShow*2)

	if len(result.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("  ➜ %s\n", rec))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked jobs with scores and missing skills.
func (p *Printer) PrintRanking(ranking types.JobRanking) {
	if len(ranking.Jobs) == 0 {
		p.printBox("JOB RANKING", "No jobs ranked")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranking.Jobs)))

	count := min(len(ranking.Jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := ranking.Jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", job.Rank, job.JobID))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", job.Result.MatchScore))
		if len(job.Result.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", strings.Join(job.Result.MissingSkills, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranking.Jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranking.Jobs)-maxItemsToShow))
	}

	p.printBox("JOB RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// writeList writes a labelled bullet list, eliding entries beyond limit
func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("%s: none\n\n", label))
		return
	}
	sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(items)))
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// scoreBar renders a score in [0, 1] as a ten-cell bar
func scoreBar(score float64) string {
	filled := int(score*10 + 0.5)
	filled = max(0, min(filled, 10))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}
