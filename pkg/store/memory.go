package store

import (
	"context"
	"sort"
	"sync"

	"github.com/matzehuels/squarespiral/pkg/errors"
	"github.com/matzehuels/squarespiral/pkg/layout"
)

// MemoryStore keeps layouts in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string]layout.Layout
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: make(map[string]layout.Layout)}
}

func (s *MemoryStore) Save(ctx context.Context, l *layout.Layout) error {
	prepare(l)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layouts[l.ID] = *l
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (layout.Layout, error) {
	if err := errors.ValidateLayoutID(id); err != nil {
		return layout.Layout{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.layouts[id]
	if !ok {
		return layout.Layout{}, notFound(id)
	}
	return l, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateLayoutID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.layouts[id]; !ok {
		return notFound(id)
	}
	delete(s.layouts, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, limit int) ([]Summary, error) {
	s.mu.RLock()
	out := make([]Summary, 0, len(s.layouts))
	for _, l := range s.layouts {
		out = append(out, summarize(l))
	}
	s.mu.RUnlock()

	sortNewestFirst(out)
	if n := normalizeLimit(limit); len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// sortNewestFirst orders by creation time, ties broken by ID.
func sortNewestFirst(ss []Summary) {
	sort.Slice(ss, func(i, j int) bool {
		if !ss[i].CreatedAt.Equal(ss[j].CreatedAt) {
			return ss[i].CreatedAt.After(ss[j].CreatedAt)
		}
		return ss[i].ID < ss[j].ID
	})
}

var _ Store = (*MemoryStore)(nil)
