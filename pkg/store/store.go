// Package store persists packed layouts for the HTTP API.
//
// Backends:
//   - [MemoryStore]: in-process map, for development and tests
//   - [FileStore]: one JSON file per layout below a directory
//   - [MongoStore]: MongoDB collection for multi-instance deployments
//
// Layout IDs are random UUIDs assigned on [Store.Save].
//
// # Usage
//
//	st := store.NewMemoryStore()
//	if err := st.Save(ctx, &l); err != nil {
//	    return err
//	}
//	got, err := st.Get(ctx, l.ID)
//	if errors.IsNotFound(err) {
//	    // Unknown ID
//	}
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/squarespiral/pkg/errors"
	"github.com/matzehuels/squarespiral/pkg/layout"
)

// DefaultListLimit bounds [Store.List] when no limit is given.
const DefaultListLimit = 100

// Summary is the listing view of a stored layout.
type Summary struct {
	ID        string    `json:"id"`
	Count     int       `json:"count"`
	MaxValue  float64   `json:"max_value"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the interface for layout storage backends.
type Store interface {
	// Save assigns an ID and creation time when missing and stores l.
	Save(ctx context.Context, l *layout.Layout) error

	// Get returns the layout with the given ID or a LAYOUT_NOT_FOUND error.
	Get(ctx context.Context, id string) (layout.Layout, error)

	// Delete removes a layout; unknown IDs yield LAYOUT_NOT_FOUND.
	Delete(ctx context.Context, id string) error

	// List returns up to limit summaries, newest first.
	List(ctx context.Context, limit int) ([]Summary, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewID returns a fresh layout ID.
func NewID() string {
	return uuid.NewString()
}

func prepare(l *layout.Layout) {
	if l.ID == "" {
		l.ID = NewID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
}

func summarize(l layout.Layout) Summary {
	return Summary{ID: l.ID, Count: len(l.Squares), MaxValue: l.MaxValue, CreatedAt: l.CreatedAt}
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}
