package catalog

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/errors"
)

// Memory is an in-memory catalog backed by a fixed set of item data.
// Useful for the CLI (loaded from a JSON file) and for tests.
type Memory struct {
	mu    sync.RWMutex
	items map[string]*dasu.ItemData
}

// NewMemory creates a catalog from the given entries. Entries without a
// reference are skipped.
func NewMemory(entries []*dasu.ItemData) *Memory {
	m := &Memory{items: make(map[string]*dasu.ItemData, len(entries))}
	for _, e := range entries {
		if e != nil && e.Reference != "" {
			m.items[e.Reference] = e.Clone()
		}
	}
	return m
}

// LoadFile creates a catalog from a JSON file holding an array of item
// data entries.
func LoadFile(path string) (*Memory, error) {
	raw, err := os.ReadFile(path) // #nosec G304 // operator-supplied path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}

	var entries []*dasu.ItemData
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog file %s", path)
	}

	return NewMemory(entries), nil
}

// Ensure Memory implements the Client interface
var _ Client = (*Memory)(nil)

// Resolve implements Client
func (m *Memory) Resolve(_ context.Context, reference string) (*dasu.ItemData, error) {
	if reference == "" {
		return nil, errors.InvalidArgument("reference cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[reference]
	if !ok {
		return nil, errors.NotFoundf("catalog reference %q not found", reference)
	}
	return item.Clone(), nil
}

// ListByType implements Client
func (m *Memory) ListByType(_ context.Context, itemType dasu.ItemType) ([]*dasu.ItemData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*dasu.ItemData
	for _, item := range m.items {
		if item.Type == itemType {
			out = append(out, item.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reference < out[j].Reference })
	return out, nil
}
