package store

import "fmt"

// MemoryStore keeps serialized values in a map. Used in tests and as the
// "memory" backend; values go through the same JSON round-trip as the
// durable backends so encoding bugs surface everywhere.
type MemoryStore struct {
	data map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string, out any) (bool, error) {
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	s.data[key] = raw
	return nil
}

func (s *MemoryStore) Close() error { return nil }
