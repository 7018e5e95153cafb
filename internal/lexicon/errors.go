package lexicon

import "fmt"

// LoadError represents a failure to read or validate a lexicon source
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("lexicon %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// EmptyLexiconError is returned when a lexicon has no usable phrases
type EmptyLexiconError struct {
	Label Label
}

func (e *EmptyLexiconError) Error() string {
	return fmt.Sprintf("%s lexicon has no usable phrases", e.Label)
}

// UnknownLabelError is returned for a label other than skill or action_verb
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown lexicon label %q", e.Label)
}
