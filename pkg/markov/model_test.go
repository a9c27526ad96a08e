package markov

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewModelRejectsInvalidFilter(t *testing.T) {
	_, err := NewModel(WithFilter(`[unterminated`))
	if err == nil {
		t.Fatal("expected an error for an invalid filter pattern, got none")
	}
	if !strings.Contains(err.Error(), "invalid filter pattern") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestIngestRejectsShortSentences(t *testing.T) {
	testCases := []struct {
		name     string
		sentence string
	}{
		{"empty", ""},
		{"whitespace only", " \t "},
		{"single token", "lonely"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t)
			if m.Ingest(tc.sentence) {
				t.Errorf("Ingest(%q) = true, want rejection", tc.sentence)
			}
			if got := m.Stats(); got != (ModelStats{}) {
				t.Errorf("rejected sentence mutated the model: %+v", got)
			}
		})
	}
}

func TestIngestRecordsSeedAndChains(t *testing.T) {
	m := newTestModel(t)

	if !m.Ingest("a b c d") {
		t.Fatal("Ingest() rejected a four-token sentence")
	}

	want := ModelStats{Seeds: 1, Contexts: 2, Transitions: 2}
	if got := m.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	if !reflect.DeepEqual(m.seeds, []Context{{First: "a", Second: "b"}}) {
		t.Errorf("unexpected seeds: %v", m.seeds)
	}
	if !m.HasContext("a", "b") || !m.HasContext("b", "c") {
		t.Error("expected chain entries for (a,b) and (b,c)")
	}
	// Context order matters, and the final pair has nothing after it.
	if m.HasContext("b", "a") {
		t.Error("HasContext must be order-sensitive")
	}
	if m.HasContext("c", "d") {
		t.Error("the trailing pair has no successor and must not get an entry")
	}
}

func TestIngestTwoTokenSentence(t *testing.T) {
	m := newTestModel(t)

	if !m.Ingest("a b") {
		t.Fatal("Ingest() rejected a two-token sentence")
	}

	// Two tokens seed the model but record no transitions.
	want := ModelStats{Seeds: 1, Contexts: 0, Transitions: 0}
	if got := m.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestIngestKeepsDuplicates(t *testing.T) {
	m := newTestModel(t)

	m.IngestAll([]string{"a b c", "a b c", "a b d"})

	want := ModelStats{Seeds: 3, Contexts: 1, Transitions: 3}
	if got := m.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	// The (a,b) entry keeps every observation, duplicate "c" included.
	if got := m.chains[Context{First: "a", Second: "b"}]; !reflect.DeepEqual(got, []string{"c", "c", "d"}) {
		t.Errorf("successors = %v, want [c c d]", got)
	}
}

func TestIngestAll(t *testing.T) {
	m := newTestModel(t, WithFilter(`[^a-zA-Z0-9 ]`))

	sentences := []string{
		"Hello, how are you?",
		"What are you going to wear tonight?",
		"nope",
		"What time is it?",
	}
	if got := m.IngestAll(sentences); got != 3 {
		t.Errorf("IngestAll() = %d, want 3", got)
	}

	var found bool
	for _, seed := range m.seeds {
		if seed == (Context{First: "Hello", Second: "how"}) {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected a (Hello, how) seed with punctuation stripped")
	}
}

func TestIngestFrom(t *testing.T) {
	m := newTestModel(t)

	accepted, err := m.IngestFrom(strings.NewReader("a b c\n\nshort\nd e\n"))
	if err != nil {
		t.Fatalf("IngestFrom() error = %v", err)
	}
	if accepted != 2 {
		t.Errorf("IngestFrom() = %d, want 2", accepted)
	}
	if got := m.Stats().Seeds; got != 2 {
		t.Errorf("expected 2 seeds, got %d", got)
	}
}

func BenchmarkIngest(b *testing.B) {
	corpus := createBenchmarkCorpus()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := NewModel()
		if err != nil {
			b.Fatalf("NewModel() error = %v", err)
		}
		m.IngestAll(corpus)
	}
}
