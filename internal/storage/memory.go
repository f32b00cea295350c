package storage

// Memory is an in-memory KV used in tests.
type Memory struct {
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements KV.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	data, ok := m.data[key]
	return data, ok, nil
}

// Set implements KV.
func (m *Memory) Set(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}
