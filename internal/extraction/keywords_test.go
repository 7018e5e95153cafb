package extraction

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultStopwords(t *testing.T) lexicon.StopwordSet {
	t.Helper()
	set, err := lexicon.Default()
	require.NoError(t, err)
	return set.Stopwords
}

func TestKeywordExtractor_Extract(t *testing.T) {
	extractor := NewKeywordExtractor(defaultStopwords(t))

	tests := []struct {
		name     string
		text     string
		topN     int
		expected []string
	}{
		{"Empty text", "", 15, []string{}},
		{"Only stopwords", "the and of a to", 15, []string{}},
		{"Drops stopwords", "Developed and deployed a Python and AWS pipeline", 15, []string{"developed", "deployed", "python", "aws", "pipeline"}},
		{"Frequency first", "go rust go python go rust", 15, []string{"go", "rust", "python"}},
		{"Ties keep first-seen order", "zeta alpha mid zeta alpha mid", 15, []string{"zeta", "alpha", "mid"}},
		{"Respects topN", "one two three four", 2, []string{"one", "two"}},
		{"Splits punctuation", "node.js, c++; ci-cd", 15, []string{"node", "js", "c", "ci", "cd"}},
		{"Case folded", "Python PYTHON python", 15, []string{"python"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.Extract(tt.text, tt.topN))
		})
	}
}

func TestKeywordExtractor_DefaultTopN(t *testing.T) {
	extractor := NewKeywordExtractor(lexicon.NewStopwordSet(nil))

	words := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		words = append(words, "w"+strings.Repeat("x", i))
	}

	assert.Len(t, extractor.Extract(strings.Join(words, " "), 0), DefaultTopN)
	assert.Len(t, extractor.Extract(strings.Join(words, " "), -3), DefaultTopN)
}

func TestKeywordExtractor_NeverReturnsStopwords(t *testing.T) {
	stopwords := defaultStopwords(t)
	extractor := NewKeywordExtractor(stopwords)

	texts := []string{
		"I am the one who has been doing this for years and years",
		"We are looking for an engineer who can own the platform",
		"Led the team, managed the budget; built it all myself.",
	}

	for _, text := range texts {
		for _, kw := range extractor.Extract(text, 50) {
			assert.False(t, stopwords.Contains(kw), "keyword %q is a stopword", kw)
		}
	}
}

func TestKeywordExtractor_LengthBound(t *testing.T) {
	extractor := NewKeywordExtractor(defaultStopwords(t))
	text := "kubernetes terraform helm argo prometheus grafana loki tempo istio envoy"

	for topN := 1; topN <= 12; topN++ {
		assert.LessOrEqual(t, len(extractor.Extract(text, topN)), topN)
	}
}

func TestKeywordExtractor_RankTokens(t *testing.T) {
	extractor := NewKeywordExtractor(lexicon.NewStopwordSet([]string{"the"}))

	ranked := extractor.RankTokens([]string{"b", "the", "a", "b", "c", "a", "b"})

	assert.Equal(t, []KeywordCount{
		{Word: "b", Count: 3},
		{Word: "a", Count: 2},
		{Word: "c", Count: 1},
	}, ranked)
}
