package markov

import "strings"

// Tokenize splits a sentence into whitespace-delimited tokens. Runs of
// spaces, tabs, newlines, and carriage returns act as a single delimiter and
// empty segments are discarded, so an empty or all-whitespace sentence yields
// no tokens. No quoting or escaping is recognized.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}
