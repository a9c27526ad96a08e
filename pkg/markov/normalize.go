package markov

import (
	"fmt"
	"strings"
)

// LetterCase selects the casing policy applied to every ingested token.
type LetterCase int

const (
	// CaseUnchanged leaves tokens exactly as they appear in the input.
	CaseUnchanged LetterCase = iota
	// CaseLower converts every token to its lower-case form.
	CaseLower
	// CaseUpper converts every token to its upper-case form.
	CaseUpper
)

// ParseLetterCase maps a config string onto a LetterCase value. The empty
// string and "unchanged" both select CaseUnchanged.
func ParseLetterCase(s string) (LetterCase, error) {
	switch strings.ToLower(s) {
	case "", "unchanged":
		return CaseUnchanged, nil
	case "lower":
		return CaseLower, nil
	case "upper":
		return CaseUpper, nil
	default:
		return CaseUnchanged, fmt.Errorf("unknown letter case %q", s)
	}
}

// Transformer rewrites a single token during normalization. Implementations
// must be pure and must not introduce whitespace into a token; a token with
// embedded whitespace breaks the chain table's context keying.
type Transformer interface {
	Transform(token string) string
}

// TransformerFunc adapts an ordinary function to the Transformer interface.
type TransformerFunc func(string) string

// Transform calls f(token).
func (f TransformerFunc) Transform(token string) string { return f(token) }

// normalize applies the model's pipeline to tokens and returns a new slice,
// leaving the input untouched. Per token the order is fixed: every filter in
// registration order (each operating on the previous filter's output), then
// the transform if one is configured, then the casing policy.
func (m *Model) normalize(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		for _, f := range m.filters {
			tok = f.ReplaceAllString(tok, "")
		}
		if m.transform != nil {
			tok = m.transform.Transform(tok)
		}
		switch m.letterCase {
		case CaseLower:
			tok = strings.ToLower(tok)
		case CaseUpper:
			tok = strings.ToUpper(tok)
		}
		out[i] = tok
	}
	return out
}
