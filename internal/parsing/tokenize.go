package parsing

import "regexp"

// phraseTokenPattern matches a word token (letters, digits, underscore) that may
// contain inner '.' joins and trailing '+' or '#' ("node.js", "c++", "c#"), or a
// single punctuation character. Hyphens always split, so "python-based" yields
// "python", "-", "based".
var phraseTokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+(?:\.[\p{L}\p{N}_]+)*[+#]*|[^\s\p{L}\p{N}_]`)

// wordTokenPattern matches runs of word characters
var wordTokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// PhraseTokens splits normalized text into the token sequence used for lexicon
// phrase matching. Punctuation is kept as separate single-character tokens so
// that it breaks phrase contiguity without hiding adjacent words.
func PhraseTokens(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return phraseTokenPattern.FindAllString(normalized, -1)
}

// WordTokens splits normalized text on word boundaries, discarding punctuation.
func WordTokens(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return wordTokenPattern.FindAllString(normalized, -1)
}
