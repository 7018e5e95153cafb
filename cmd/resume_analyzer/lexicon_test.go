package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconValidateCommand(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "lexicon.yaml", "skills: [go, machine learning]\naction_verbs: [built]\nstopwords: [the]\n")

	stdout, _, err := executeCommand(t, "lexicon", "validate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid: 2 skills, 1 action verbs, 1 stopwords; longest phrase 2 tokens")
}

func TestLexiconValidateCommand_Invalid(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "lexicon.yaml", "skills: []\naction_verbs: [built]\ncolors: [red]\n")

	_, _, err := executeCommand(t, "lexicon", "validate", "--file", path)
	require.Error(t, err)
}

func TestLexiconShowCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "lexicon", "show", "--label", "skill")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, "python", lines[0])
	assert.Contains(t, lines, "machine learning")
	assert.Contains(t, lines, "c++")
	assert.NotContains(t, lines, "developed")
}

func TestLexiconShowCommand_AllLabels(t *testing.T) {
	stdout, _, err := executeCommand(t, "lexicon", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "# skill (24)")
	assert.Contains(t, stdout, "# action_verb (15)")
	assert.Contains(t, stdout, "developed")
}

func TestLexiconShowCommand_UnknownLabel(t *testing.T) {
	_, _, err := executeCommand(t, "lexicon", "show", "--label", "tool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool")
}
