package markov

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// Ingest tokenizes and normalizes one sentence, then records it in the
// model: the first two tokens become a seed and every consecutive token pair
// maps to the token that follows it. It reports whether the sentence was
// accepted; sentences with fewer than two tokens carry no usable context and
// are rejected without mutating the model.
func (m *Model) Ingest(sentence string) bool {
	return m.ingestTokens(m.normalize(Tokenize(sentence)))
}

// IngestAll ingests each sentence in the given order and returns the number
// accepted. Sentences are independent: a rejected sentence has no effect on
// the ones around it.
func (m *Model) IngestAll(sentences []string) int {
	var accepted int
	for _, sentence := range sentences {
		if m.Ingest(sentence) {
			accepted++
		}
	}
	return accepted
}

// IngestFrom reads r line by line, treating each line as one sentence, and
// returns the number of sentences accepted.
func (m *Model) IngestFrom(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	var accepted int
	for scanner.Scan() {
		if m.Ingest(scanner.Text()) {
			accepted++
		}
	}
	if err := scanner.Err(); err != nil {
		return accepted, fmt.Errorf("corpus read error: %w", err)
	}

	m.logger.Debug("Bulk ingestion completed",
		slog.Int("sentences_accepted", accepted),
	)

	return accepted, nil
}

// ingestTokens records one already-normalized sentence.
func (m *Model) ingestTokens(tokens []string) bool {
	if len(tokens) < 2 {
		m.logger.Debug("Sentence rejected, not enough tokens",
			slog.Int("token_count", len(tokens)),
		)
		return false
	}

	m.recordSeed(Context{First: tokens[0], Second: tokens[1]})
	for i := 0; i+2 < len(tokens); i++ {
		m.appendSuccessor(Context{First: tokens[i], Second: tokens[i+1]}, tokens[i+2])
	}
	return true
}
