// Package analysis extracts skills, action verbs and keywords from resumes and job descriptions.
package analysis

import (
	"fmt"
	"log/slog"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyzer composes the phrase and keyword extractors over a shared, read-only
// lexicon Set. Every method is pure and safe for concurrent use.
type Analyzer struct {
	skills   *extraction.PhraseExtractor
	verbs    *extraction.PhraseExtractor
	keywords *extraction.KeywordExtractor
	topN     int
	logger   *slog.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithTopN sets the number of keywords kept per document (default 15)
func WithTopN(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topN = n
		}
	}
}

// WithLogger sets the logger used to report recovered faults
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Analyzer over set. set must not be modified afterwards.
func New(set *lexicon.Set, opts ...Option) (*Analyzer, error) {
	if set == nil || set.Skills == nil || set.ActionVerbs == nil {
		return nil, fmt.Errorf("analysis: lexicon set is incomplete")
	}

	a := &Analyzer{
		skills:   extraction.NewPhraseExtractor(set.Skills),
		verbs:    extraction.NewPhraseExtractor(set.ActionVerbs),
		keywords: extraction.NewKeywordExtractor(set.Stopwords),
		topN:     extraction.DefaultTopN,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// TopN returns the configured keyword limit
func (a *Analyzer) TopN() int {
	return a.topN
}

// AnalyzeResume extracts skills, action verbs and keywords from resume text.
// A fault in any extraction stage yields the empty resume result.
func (a *Analyzer) AnalyzeResume(text string) (result types.AnalysisResult) {
	defer a.recoverInto(&result, types.KindResume)

	doc := newDocument(text)
	return types.AnalysisResult{
		Kind:        types.KindResume,
		Skills:      a.skills.ExtractTokens(doc.phraseTokens),
		ActionVerbs: a.verbs.ExtractTokens(doc.phraseTokens),
		Keywords:    a.keywords.ExtractTokens(doc.wordTokens, a.topN),
	}
}

// AnalyzeJobDescription extracts skills and keywords from job-description text.
// Action verbs are not evaluated for job descriptions.
func (a *Analyzer) AnalyzeJobDescription(text string) (result types.AnalysisResult) {
	defer a.recoverInto(&result, types.KindJobDescription)

	doc := newDocument(text)
	return types.AnalysisResult{
		Kind:     types.KindJobDescription,
		Skills:   a.skills.ExtractTokens(doc.phraseTokens),
		Keywords: a.keywords.ExtractTokens(doc.wordTokens, a.topN),
	}
}

// RankKeywords returns every keyword of text with its count, most frequent first
func (a *Analyzer) RankKeywords(text string) []extraction.KeywordCount {
	return a.keywords.RankTokens(newDocument(text).wordTokens)
}

// recoverInto converts a panic raised during analysis into the empty result shape
func (a *Analyzer) recoverInto(result *types.AnalysisResult, kind types.DocumentKind) {
	if r := recover(); r != nil {
		a.logger.Error("analysis fault recovered",
			slog.String("kind", string(kind)),
			slog.Any("error", r))
		*result = types.EmptyAnalysis(kind)
	}
}

// document is normalized text split once for both extractors
type document struct {
	phraseTokens []string
	wordTokens   []string
}

func newDocument(text string) document {
	normalized := parsing.Normalize(text)
	return document{
		phraseTokens: parsing.PhraseTokens(normalized),
		wordTokens:   parsing.WordTokens(normalized),
	}
}
