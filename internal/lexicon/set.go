package lexicon

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/*.txt
var dataFS embed.FS

// Set is the immutable analysis configuration: the skills lexicon, the
// action-verb lexicon and the stopword set. It is built once at startup and
// shared by every analyzer.
type Set struct {
	Skills      *Lexicon
	ActionVerbs *Lexicon
	Stopwords   StopwordSet
}

// NewSet builds a Set from raw phrase and stopword lists
func NewSet(skills, actionVerbs, stopwords []string) (*Set, error) {
	skillLex, err := New(LabelSkill, skills)
	if err != nil {
		return nil, err
	}
	verbLex, err := New(LabelActionVerb, actionVerbs)
	if err != nil {
		return nil, err
	}
	return &Set{
		Skills:      skillLex,
		ActionVerbs: verbLex,
		Stopwords:   NewStopwordSet(stopwords),
	}, nil
}

// Lexicon returns the lexicon for label, or nil for an unknown label
func (s *Set) Lexicon(label Label) *Lexicon {
	switch label {
	case LabelSkill:
		return s.Skills
	case LabelActionVerb:
		return s.ActionVerbs
	default:
		return nil
	}
}

var defaultSet = sync.OnceValues(func() (*Set, error) {
	lists, err := DefaultLists()
	if err != nil {
		return nil, err
	}
	return NewSet(lists.Skills, lists.ActionVerbs, lists.Stopwords)
})

// Default returns the built-in Set. It is constructed once and shared.
func Default() (*Set, error) {
	return defaultSet()
}

// DefaultLists returns copies of the built-in phrase and stopword lists
func DefaultLists() (*File, error) {
	skills, err := readDataList("skills.txt")
	if err != nil {
		return nil, err
	}
	verbs, err := readDataList("action_verbs.txt")
	if err != nil {
		return nil, err
	}
	stopwords, err := readDataList("stopwords.txt")
	if err != nil {
		return nil, err
	}
	return &File{Skills: skills, ActionVerbs: verbs, Stopwords: stopwords}, nil
}

// readDataList reads an embedded one-entry-per-line list, skipping blanks and '#' comments
func readDataList(name string) ([]string, error) {
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return nil, &LoadError{Path: "data/" + name, Message: "embedded list missing", Cause: err}
	}

	var out []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read embedded list %s: %w", name, err)
	}
	return out, nil
}
