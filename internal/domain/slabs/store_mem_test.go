package slabs_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/domain/slabs"
)

type memStore struct {
	mu       sync.Mutex
	items    map[string]slabs.Slab
	calls    int
	variants []string
	failWith error
}

func newMemStore() *memStore { return &memStore{items: map[string]slabs.Slab{}} }

func (m *memStore) touch() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.failWith
}

func (m *memStore) Save(_ context.Context, s *slabs.Slab) error {
	if err := m.touch(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[s.ID] = *s
	return nil
}

func (m *memStore) FindByID(_ context.Context, id string) (*slabs.Slab, error) {
	if err := m.touch(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	if err := m.touch(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memStore) Find(_ context.Context, q filter.Query) ([]slabs.Slab, error) {
	if err := m.touch(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variants = append(m.variants, q.Variant())
	out := []slabs.Slab{}
	for _, s := range m.items {
		if q.Match(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) Exists(ctx context.Context, q filter.Query) (bool, error) {
	found, err := m.Find(ctx, q)
	return len(found) > 0, err
}

func (m *memStore) lastVariant() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[len(m.variants)-1]
}

var errStoreDown = errors.New("store down")
