package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"

	"github.com/drosera07/babble/pkg/markov"
)

// loadCorpusFile ingests one sentence per line from the file at path and
// returns the number of accepted sentences.
func loadCorpusFile(m *markov.Model, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return m.IngestFrom(bufio.NewReader(f))
}

// loadCorpusDB runs query against the SQLite database at path, reading the
// first column of every row as one sentence, and returns the number of
// accepted sentences.
func loadCorpusDB(m *markov.Model, path, query string) (int, error) {
	db, err := initDB(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open corpus database: %w", err)
	}
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	rows, err := db.Query(query)
	if err != nil {
		return 0, fmt.Errorf("corpus query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var accepted int
	for rows.Next() {
		var sentence string
		if err = rows.Scan(&sentence); err != nil {
			return accepted, fmt.Errorf("failed to scan corpus row: %w", err)
		}
		if m.Ingest(sentence) {
			accepted++
		}
	}
	if err = rows.Err(); err != nil {
		return accepted, err
	}

	return accepted, nil
}
