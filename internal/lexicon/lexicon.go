// Package lexicon holds the configured phrase lists (skills, action verbs) and
// stopwords, indexed for multi-word phrase matching over tokenized text.
package lexicon

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// Label tags a lexicon with the category of its phrases
type Label string

const (
	// LabelSkill marks a skills lexicon
	LabelSkill Label = "skill"
	// LabelActionVerb marks an action-verb lexicon
	LabelActionVerb Label = "action_verb"
)

// Valid reports whether l is a known label
func (l Label) Valid() bool {
	return l == LabelSkill || l == LabelActionVerb
}

// Phrase is a single lexicon entry: its normalized text and the token
// sequence that must appear contiguously for it to match.
type Phrase struct {
	Text   string
	Tokens []string
}

// Lexicon is an immutable, ordered set of phrases indexed by first token.
// It is safe for concurrent use.
type Lexicon struct {
	label   Label
	phrases []Phrase
	// byFirst maps a phrase's first token to the candidate phrases, longest first
	byFirst map[string][]Phrase
	maxLen  int
}

// New builds a Lexicon from raw phrases. Phrases are normalized and tokenized
// the same way document text is; empty and duplicate phrases are skipped while
// the order of first appearance is kept.
func New(label Label, phrases []string) (*Lexicon, error) {
	if !label.Valid() {
		return nil, &UnknownLabelError{Label: string(label)}
	}

	lex := &Lexicon{
		label:   label,
		byFirst: make(map[string][]Phrase),
	}

	seen := make(map[string]bool)
	for _, raw := range phrases {
		normalized := parsing.Normalize(raw)
		tokens := parsing.PhraseTokens(normalized)
		if len(tokens) == 0 {
			continue
		}

		key := strings.Join(tokens, " ")
		if seen[key] {
			continue
		}
		seen[key] = true

		phrase := Phrase{Text: normalized, Tokens: tokens}
		lex.phrases = append(lex.phrases, phrase)
		lex.byFirst[tokens[0]] = append(lex.byFirst[tokens[0]], phrase)
		if len(tokens) > lex.maxLen {
			lex.maxLen = len(tokens)
		}
	}

	if len(lex.phrases) == 0 {
		return nil, &EmptyLexiconError{Label: label}
	}

	for first := range lex.byFirst {
		candidates := lex.byFirst[first]
		sort.SliceStable(candidates, func(i, j int) bool {
			return len(candidates[i].Tokens) > len(candidates[j].Tokens)
		})
	}

	return lex, nil
}

// Label returns the lexicon's category
func (l *Lexicon) Label() Label {
	return l.label
}

// Len returns the number of distinct phrases
func (l *Lexicon) Len() int {
	return len(l.phrases)
}

// MaxPhraseLen returns the token length of the longest phrase
func (l *Lexicon) MaxPhraseLen() int {
	return l.maxLen
}

// Phrases returns the normalized phrase texts in configuration order
func (l *Lexicon) Phrases() []string {
	out := make([]string, len(l.phrases))
	for i, p := range l.phrases {
		out[i] = p.Text
	}
	return out
}

// Candidates returns the phrases whose first token is tok, longest first.
// The returned slice must not be modified.
func (l *Lexicon) Candidates(tok string) []Phrase {
	return l.byFirst[tok]
}
