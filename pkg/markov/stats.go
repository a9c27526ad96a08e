package markov

// ModelStats holds aggregate counts for a single model.
type ModelStats struct {
	Seeds       int // Seed entries, duplicates included.
	Contexts    int // Distinct contexts in the chain table.
	Transitions int // Successor entries across all contexts, duplicates included.
}

// Stats returns a snapshot of the model's aggregate counts.
func (m *Model) Stats() ModelStats {
	var transitions int
	for _, successors := range m.chains {
		transitions += len(successors)
	}
	return ModelStats{
		Seeds:       len(m.seeds),
		Contexts:    len(m.chains),
		Transitions: transitions,
	}
}
