package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
)

var (
	ErrMissingFields         = errors.New("name and intention are required")
	ErrUnsupportedActivation = errors.New("unsupported activation type")
)

const (
	journalDateLayout = "2/1/2006"
	journalIDLayout   = time.RFC3339Nano
)

// Journal manages the outcome diary: append and delete only, entries are
// never edited.
type Journal struct {
	repo  ports.JournalRepository
	clock ports.Clock
}

func NewJournal(repo ports.JournalRepository, clock ports.Clock) *Journal {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Journal{repo: repo, clock: clock}
}

func (j *Journal) Add(ctx context.Context, activation domain.ActivationType, name, intention, result string) (domain.JournalEntry, error) {
	name = strings.TrimSpace(name)
	intention = strings.TrimSpace(intention)
	if name == "" || intention == "" {
		return domain.JournalEntry{}, ErrMissingFields
	}
	if !activation.Valid() {
		return domain.JournalEntry{}, fmt.Errorf("%w: %q", ErrUnsupportedActivation, activation)
	}

	now := j.clock.Now()
	entry := domain.JournalEntry{
		ID:        now.Format(journalIDLayout),
		Date:      now.Format(journalDateLayout),
		Type:      activation,
		Name:      name,
		Intention: intention,
		Result:    strings.TrimSpace(result),
	}

	if err := j.repo.Append(ctx, entry); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("append journal entry: %w", err)
	}

	return entry, nil
}

// List returns the entries newest first. The id is the creation timestamp,
// so ordering by id descending is ordering by age.
func (j *Journal) List(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := j.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].ID > entries[b].ID
	})

	return entries, nil
}

func (j *Journal) Delete(ctx context.Context, id string) error {
	if err := j.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}

	return nil
}
