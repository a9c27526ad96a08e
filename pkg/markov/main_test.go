package markov

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
)

// newTestModel builds a Model with a fixed random source so that tests which
// draw from multi-element collections are reproducible across runs.
func newTestModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	opts = append([]Option{WithRandSource(rand.NewPCG(1, 2))}, opts...)
	m, err := NewModel(opts...)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

var (
	benchmarkCorpus []string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus builds a deterministic synthetic corpus so benchmark
// numbers are comparable between runs.
func createBenchmarkCorpus() []string {
	corpusOnce.Do(func() {
		vocab := strings.Fields(
			"the a every some quick slow red blue fox fish crow river stone " +
				"jumps swims watches crosses over under beside towards quietly " +
				"quickly again never always at dawn at dusk",
		)
		rng := rand.New(rand.NewPCG(42, 0))

		sentences := make([]string, 0, 2000)
		var sb strings.Builder
		for i := 0; i < 2000; i++ {
			sb.Reset()
			n := 5 + rng.IntN(12)
			for j := 0; j < n; j++ {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(vocab[rng.IntN(len(vocab))])
			}
			sentences = append(sentences, sb.String())
		}
		benchmarkCorpus = sentences
	})
	return benchmarkCorpus
}
