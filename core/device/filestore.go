package device

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore serves records from a JSON array file. The whole file is
// decoded on construction and reads are answered from memory; description
// updates are written back to disk atomically so a crash mid-write never
// leaves a truncated database behind.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	records []Record
	byID    map[int]int // id -> index into records
}

// NewFileStore loads the JSON database at path.
func NewFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStoreUnavailable, path, err)
	}

	byID := make(map[int]int, len(records))
	for i, r := range records {
		byID[r.ID] = i
	}

	return &FileStore{path: path, records: records, byID: byID}, nil
}

// All returns every record in file order.
func (s *FileStore) All(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Get returns the record with the given id, or ErrRecordNotFound.
func (s *FileStore) Get(ctx context.Context, id int) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	return s.records[i], nil
}

// SaveDescription updates a record's description in memory and rewrites
// the database file.
func (s *FileStore) SaveDescription(ctx context.Context, id int, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	s.records[i].Description = description

	return s.flushLocked()
}

// Len reports the number of records loaded.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// flushLocked writes the full record set to a temp file in the same
// directory and renames it over the database. Callers must hold mu.
func (s *FileStore) flushLocked() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
