// Package storage reads and writes the catalog's single JSON backing file.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/XetPy1030/Lbrary-Management/internal/model"
)

// Storage is a stateless gateway to one backing file. It holds no
// books itself; the library owns the live collection.
type Storage struct {
	path string
}

// New returns a Storage for the given file path. The file does not
// have to exist yet; Save creates it on first write.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Path returns the path of the backing file.
func (s *Storage) Path() string {
	return s.path
}

// Load reads the entire backing file and deserializes every record.
//
// A missing file and a file that does not parse as JSON both yield an
// empty collection with no error: the catalog simply starts fresh.
// A well-formed JSON array whose records are structurally bad (missing
// keys, unrecognized status literal) is an error and propagates.
func (s *Storage) Load() ([]model.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("backing file absent, starting empty", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Debug("backing file unparseable, starting empty", "path", s.path, "err", err)
		return nil, nil
	}

	books := make([]model.Book, 0, len(records))
	for i, r := range records {
		b, err := model.Deserialize(r)
		if err != nil {
			return nil, fmt.Errorf("invalid record %d in %s: %w", i, s.path, err)
		}
		books = append(books, b)
	}

	slog.Debug("loaded catalog", "path", s.path, "books", len(books))
	return books, nil
}

// Save serializes the full collection and overwrites the backing file
// in one shot. The write is a plain truncate-and-write, not atomic.
// The output is a pretty-printed UTF-8 JSON array with HTML escaping
// off so the status literals are written as-is.
func (s *Storage) Save(books []model.Book) error {
	records := make([]model.Record, len(books))
	for i, b := range books {
		records[i] = model.Serialize(b)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	slog.Debug("saved catalog", "path", s.path, "books", len(books))
	return nil
}
