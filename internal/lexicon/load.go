package lexicon

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"gopkg.in/yaml.v3"
)

// File is the on-disk lexicon format. YAML and JSON are both accepted.
type File struct {
	Skills         []string `yaml:"skills" json:"skills"`
	ActionVerbs    []string `yaml:"action_verbs" json:"action_verbs"`
	Stopwords      []string `yaml:"stopwords,omitempty" json:"stopwords,omitempty"`
	ExtendDefaults bool     `yaml:"extend_defaults,omitempty" json:"extend_defaults,omitempty"`
}

// Load reads a lexicon file, validates it against the lexicon schema and
// builds a Set. When the file sets extend_defaults, its phrases are appended
// to the built-in lists. A file without stopwords uses the built-in set.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	set, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid lexicon", Cause: err}
	}

	slog.Debug("lexicon loaded",
		slog.String("path", path),
		slog.Int("skills", set.Skills.Len()),
		slog.Int("action_verbs", set.ActionVerbs.Len()),
		slog.Int("stopwords", len(set.Stopwords)))

	return set, nil
}

// Parse builds a Set from YAML or JSON lexicon content
func Parse(data []byte) (*Set, error) {
	// Decode generically first so schema violations are reported by field
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	if err := schemas.ValidateValue(schemas.Lexicon, doc); err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode lexicon: %w", err)
	}

	return file.Build()
}

// Build turns the file lists into a Set, merging with the built-in lists
// when ExtendDefaults is set.
func (f *File) Build() (*Set, error) {
	skills := f.Skills
	verbs := f.ActionVerbs
	stopwords := f.Stopwords

	if f.ExtendDefaults || len(stopwords) == 0 {
		defaults, err := DefaultLists()
		if err != nil {
			return nil, err
		}
		if f.ExtendDefaults {
			skills = append(defaults.Skills, skills...)
			verbs = append(defaults.ActionVerbs, verbs...)
			stopwords = append(defaults.Stopwords, stopwords...)
		} else {
			stopwords = defaults.Stopwords
		}
	}

	return NewSet(skills, verbs, stopwords)
}
