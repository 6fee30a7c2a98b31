package search

import (
	"context"

	"queryhub.app/api/internal/model"
)

// QuestionIndex is the full-text index over questions. Indexing failures
// are non-fatal to writes; the store keeps the source of truth and callers
// fall back to database search when the index is unavailable.
type QuestionIndex interface {
	Index(ctx context.Context, q *model.Question) error
	Remove(ctx context.Context, id int64) error
	// Search returns matching question ids, best match first.
	Search(ctx context.Context, query string, limit int) ([]int64, error)
	Enabled() bool
}

type noopIndex struct{}

// NewNoop returns an index that indexes nothing and matches nothing.
// Used when no search backend is configured; callers then search the store.
func NewNoop() QuestionIndex {
	return noopIndex{}
}

func (noopIndex) Index(context.Context, *model.Question) error { return nil }

func (noopIndex) Remove(context.Context, int64) error { return nil }

func (noopIndex) Search(context.Context, string, int) ([]int64, error) { return nil, nil }

func (noopIndex) Enabled() bool { return false }
