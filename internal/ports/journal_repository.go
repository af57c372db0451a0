package ports

import (
	"context"

	"github.com/hanguiano/activador/internal/domain"
)

// JournalRepository persists the journal as one collection: every mutation
// rewrites the stored collection so it always mirrors memory.
type JournalRepository interface {
	List(ctx context.Context) ([]domain.JournalEntry, error)
	Append(ctx context.Context, entry domain.JournalEntry) error
	Delete(ctx context.Context, id string) error
}
