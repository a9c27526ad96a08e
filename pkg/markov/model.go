package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"regexp"
)

// Context is an ordered pair of consecutive tokens used as the lookup key
// into the chain table. Order matters: (a, b) and (b, a) are distinct keys.
type Context struct {
	First  string
	Second string
}

// Model holds the seed list and the chain table for one trigram model,
// together with its normalization pipeline and random source. A Model is
// created empty, grows only through ingestion (entries are never removed or
// edited), and is read non-destructively by generation. It is not safe for
// concurrent use; the caller owns it exclusively.
type Model struct {
	seeds  []Context
	chains map[Context][]string

	filters    []*regexp.Regexp
	transform  Transformer
	letterCase LetterCase

	rng    *rand.Rand
	logger *slog.Logger
}

// modelOptions collects construction parameters before validation.
type modelOptions struct {
	filterPatterns []string
	transform      Transformer
	letterCase     LetterCase
	src            rand.Source
}

// Option is a function that configures a Model during construction.
type Option func(*modelOptions)

// WithFilter adds a pattern-removal rule to the normalization pipeline.
// Every substring of a token matching the pattern is deleted. Rules are
// applied in registration order, each operating on the output of the one
// before it. The pattern is compiled by NewModel; an invalid pattern makes
// construction fail.
func WithFilter(pattern string) Option {
	return func(o *modelOptions) {
		o.filterPatterns = append(o.filterPatterns, pattern)
	}
}

// WithTransformer sets the custom token transform, applied to each token
// after filtering and before casing. At most one transform is supported;
// registering another replaces the previous one.
func WithTransformer(t Transformer) Option {
	return func(o *modelOptions) {
		o.transform = t
	}
}

// WithLetterCase sets the casing policy applied to every ingested token.
// Default: CaseUnchanged.
func WithLetterCase(c LetterCase) Option {
	return func(o *modelOptions) {
		o.letterCase = c
	}
}

// WithRandSource sets the source of randomness used for seed and successor
// selection. By default a Model draws from a PCG source seeded off the
// process-wide generator; tests needing reproducible output should pass a
// fixed source.
func WithRandSource(src rand.Source) Option {
	return func(o *modelOptions) {
		o.src = src
	}
}

// NewModel creates an empty Model. Filter patterns are compiled here so that
// a bad configuration is rejected up front and the ingestion path stays
// error-free.
func NewModel(opts ...Option) (*Model, error) {
	o := &modelOptions{letterCase: CaseUnchanged}
	for _, opt := range opts {
		opt(o)
	}

	filters := make([]*regexp.Regexp, 0, len(o.filterPatterns))
	for _, pattern := range o.filterPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		filters = append(filters, re)
	}

	src := o.src
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Model{
		chains:     make(map[Context][]string),
		filters:    filters,
		transform:  o.transform,
		letterCase: o.letterCase,
		rng:        rand.New(src),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger for the Model. By default, all logs are
// discarded.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// HasContext reports whether at least one successor has been recorded for
// the ordered pair (first, second).
func (m *Model) HasContext(first, second string) bool {
	_, ok := m.chains[Context{First: first, Second: second}]
	return ok
}

// recordSeed appends ctx to the seed list unconditionally. Duplicates are
// kept so that more common sentence openings are proportionally more likely
// to be picked.
func (m *Model) recordSeed(ctx Context) {
	m.seeds = append(m.seeds, ctx)
}

// appendSuccessor records tok as an observed successor of ctx, creating the
// chain entry on first sight. Successor lists keep duplicates.
func (m *Model) appendSuccessor(ctx Context, tok string) {
	m.chains[ctx] = append(m.chains[ctx], tok)
}

// sampleSuccessor draws uniformly over the successor list for ctx, so a
// transition observed n times is n times as likely to be chosen. The second
// return is false when ctx has no chain entry.
func (m *Model) sampleSuccessor(ctx Context) (string, bool) {
	successors := m.chains[ctx]
	if len(successors) == 0 {
		return "", false
	}
	return successors[m.rng.IntN(len(successors))], true
}

// pickSeed draws uniformly over the seed list. The second return is false
// when nothing has been ingested yet.
func (m *Model) pickSeed() (Context, bool) {
	if len(m.seeds) == 0 {
		return Context{}, false
	}
	return m.seeds[m.rng.IntN(len(m.seeds))], true
}
