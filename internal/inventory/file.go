package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists capacities as a flat JSON document, e.g.
// {"Deluxe": 7, "Executive": 7}. The file is created with the default
// capacities on first access. Writes go through a temp file and rename so
// a crash mid-write cannot truncate the document; a mutex serializes
// read-modify-write, which is only safe within a single process.
type FileStore struct {
	mu       sync.Mutex
	path     string
	defaults map[string]int
}

func NewFileStore(path string, defaults map[string]int) *FileStore {
	return &FileStore{path: path, defaults: defaults}
}

func (s *FileStore) Get(_ context.Context, roomType string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts, err := s.load()
	if err != nil {
		return 0, err
	}
	n, ok := counts[roomType]
	if !ok {
		return 0, fmt.Errorf("unknown room type %q", roomType)
	}
	return n, nil
}

func (s *FileStore) Set(_ context.Context, roomType string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts, err := s.load()
	if err != nil {
		return err
	}
	counts[roomType] = count
	return s.save(counts)
}

func (s *FileStore) All(_ context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (map[string]int, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		counts := make(map[string]int, len(s.defaults))
		for k, v := range s.defaults {
			counts[k] = v
		}
		if err := s.save(counts); err != nil {
			return nil, err
		}
		return counts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read inventory file: %w", err)
	}
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("parse inventory file %s: %w", s.path, err)
	}
	return counts, nil
}

func (s *FileStore) save(counts map[string]int) error {
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write inventory file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

var _ Store = (*FileStore)(nil)
