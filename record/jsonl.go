package record

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"
)

// JSONLStore appends one JSON record per line to a single file. This matches
// the original complaints file layout and is the default store.
type JSONLStore struct {
	mu   sync.Mutex
	file *os.File
}

// OpenJSONL opens (or creates) the append-only record file.
func OpenJSONL(path string) (*JSONLStore, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	return &JSONLStore{file: f}, nil
}

func (s *JSONLStore) Append(ctx context.Context, c Complaint) error {
	line, err := sonic.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.Write(line); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

func (s *JSONLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

var _ Store = (*JSONLStore)(nil)
