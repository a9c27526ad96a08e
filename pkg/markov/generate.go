package markov

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrEmptyModel is returned by Generate when nothing has been ingested yet.
var ErrEmptyModel = errors.New("markov: model has no seeds")

// Generate performs a random walk over the chain table and returns the
// resulting sentence, joined with single spaces. The walk starts from a
// random seed and extends one token at a time, using the two most recent
// tokens (oldest first) as the lookup context; a context with no recorded
// successors ends the walk early, which is normal termination rather than an
// error. When Generate succeeds the output holds between 2 and maxLength
// tokens. Generate never mutates the model.
func (m *Model) Generate(maxLength int) (string, error) {
	if maxLength < 2 {
		return "", fmt.Errorf("markov: maxLength must be at least 2, got %d", maxLength)
	}

	seed, ok := m.pickSeed()
	if !ok {
		return "", ErrEmptyModel
	}

	words := make([]string, 0, maxLength)
	words = append(words, seed.First, seed.Second)

	for len(words) < maxLength {
		ctx := Context{First: words[len(words)-2], Second: words[len(words)-1]}
		next, ok := m.sampleSuccessor(ctx)
		if !ok {
			m.logger.Debug("Generation stopped at a dead end",
				slog.String("first", ctx.First),
				slog.String("second", ctx.Second),
				slog.Int("generated_length", len(words)),
			)
			break
		}
		words = append(words, next)
	}

	return strings.Join(words, " "), nil
}
