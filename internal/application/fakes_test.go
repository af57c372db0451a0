package application

import (
	"context"
	"errors"
	"time"

	"github.com/hanguiano/activador/internal/domain"
)

type fakeOracle struct {
	completeFn   func(ctx context.Context, prompt string) (string, error)
	illustrateFn func(ctx context.Context, prompt string) (domain.Illustration, error)
	prompts      []string
}

func (f *fakeOracle) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.completeFn == nil {
		return "", errors.New("completeFn not set")
	}
	return f.completeFn(ctx, prompt)
}

func (f *fakeOracle) Illustrate(ctx context.Context, prompt string) (domain.Illustration, error) {
	f.prompts = append(f.prompts, prompt)
	if f.illustrateFn == nil {
		return domain.Illustration{}, errors.New("illustrateFn not set")
	}
	return f.illustrateFn(ctx, prompt)
}

type memoryJournal struct {
	entries []domain.JournalEntry
	failure error
}

func (m *memoryJournal) List(_ context.Context) ([]domain.JournalEntry, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	out := make([]domain.JournalEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memoryJournal) Append(_ context.Context, entry domain.JournalEntry) error {
	if m.failure != nil {
		return m.failure
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryJournal) Delete(_ context.Context, id string) error {
	if m.failure != nil {
		return m.failure
	}
	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrJournalEntryNotFound
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}
