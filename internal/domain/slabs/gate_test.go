package slabs_test

import (
	"context"
	"sync"

	"github.com/Spok95/stone-inventory/internal/domain/slabs"
)

// gate holds every FindByID until n readers have read, forcing interleaved read-modify-write.
type gate struct {
	*memStore
	wg sync.WaitGroup
}

func newGate(m *memStore, n int) *gate {
	g := &gate{memStore: m}
	g.wg.Add(n)
	return g
}

func (g *gate) FindByID(ctx context.Context, id string) (*slabs.Slab, error) {
	s, err := g.memStore.FindByID(ctx, id)
	g.wg.Done()
	g.wg.Wait()
	return s, err
}
