package prices_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/domain/prices"
)

type memStore struct {
	mu       sync.Mutex
	items    map[string]prices.Price
	saves    int
	failSave error
}

func newMemStore() *memStore { return &memStore{items: map[string]prices.Price{}} }

func (m *memStore) Save(_ context.Context, p *prices.Price) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave != nil {
		return m.failSave
	}
	m.saves++
	m.items[p.ID] = *p
	return nil
}

func (m *memStore) FindByID(_ context.Context, id string) (*prices.Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memStore) Find(_ context.Context, q filter.Query) ([]prices.Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []prices.Price{}
	for _, p := range m.items {
		if q.Match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

var errStoreDown = errors.New("store down")
