package bot

import (
	"context"
	"sort"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/stone-inventory/internal/domain/filter"
)

type fakeAPI struct {
	mu      sync.Mutex
	sent    []tgbotapi.Chattable
	updates chan tgbotapi.Update
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	if f.updates == nil {
		f.updates = make(chan tgbotapi.Update)
	}
	return f.updates
}

func (f *fakeAPI) GetFileDirectURL(fileID string) (string, error) {
	return "https://files.test/" + fileID, nil
}

func (f *fakeAPI) last() tgbotapi.Chattable {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1]
}

// lastText is the text of the last message or the caption of the last document.
func (f *fakeAPI) lastText() string {
	switch m := f.last().(type) {
	case tgbotapi.MessageConfig:
		return m.Text
	case tgbotapi.DocumentConfig:
		return m.Caption
	default:
		return ""
	}
}

// memStore serves every record kind; id extracts the primary key.
type memStore[T filter.Record] struct {
	mu    sync.Mutex
	items map[string]T
	id    func(T) string
}

func newMemStore[T filter.Record](id func(T) string) *memStore[T] {
	return &memStore[T]{items: map[string]T{}, id: id}
}

func (m *memStore[T]) Save(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[m.id(*v)] = *v
	return nil
}

func (m *memStore[T]) FindByID(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m *memStore[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memStore[T]) Find(_ context.Context, q filter.Query) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []T{}
	for _, v := range m.items {
		if q.Match(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.id(out[i]) < m.id(out[j]) })
	return out, nil
}

func (m *memStore[T]) Exists(ctx context.Context, q filter.Query) (bool, error) {
	found, err := m.Find(ctx, q)
	return len(found) > 0, err
}
