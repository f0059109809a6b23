package samples_test

import (
	"context"
	"sort"
	"sync"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
	"github.com/Spok95/stone-inventory/internal/domain/samples"
)

type memStore struct {
	mu       sync.Mutex
	items    map[string]samples.Sample
	calls    int
	variants []string
}

func newMemStore() *memStore { return &memStore{items: map[string]samples.Sample{}} }

func (m *memStore) Save(_ context.Context, s *samples.Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.items[s.ID] = *s
	return nil
}

func (m *memStore) FindByID(_ context.Context, id string) (*samples.Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	s, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	delete(m.items, id)
	return nil
}

func (m *memStore) Find(_ context.Context, q filter.Query) ([]samples.Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.variants = append(m.variants, q.Variant())
	out := []samples.Sample{}
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

func (m *memStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// gate holds FindByID until n readers have read.
type gate struct {
	*memStore
	wg sync.WaitGroup
}

func newGate(m *memStore, n int) *gate {
	g := &gate{memStore: m}
	g.wg.Add(n)
	return g
}

func (g *gate) FindByID(ctx context.Context, id string) (*samples.Sample, error) {
	s, err := g.memStore.FindByID(ctx, id)
	g.wg.Done()
	g.wg.Wait()
	return s, err
}
