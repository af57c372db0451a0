package application

import (
	"context"
	"testing"
	"time"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAddStampsIDAndDate(t *testing.T) {
	t.Parallel()

	repo := &memoryJournal{}
	at := time.Date(2026, 8, 30, 21, 15, 0, 0, time.UTC)
	journal := NewJournal(repo, fixedClock{at: at})

	entry, err := journal.Add(context.Background(), domain.ActivationRune, "Fehu", "claridad", "")
	require.NoError(t, err)

	assert.Equal(t, at.Format(time.RFC3339Nano), entry.ID)
	assert.Equal(t, "30/8/2026", entry.Date)
	assert.Equal(t, domain.ActivationRune, entry.Type)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, entry, repo.entries[0])
}

func TestJournalAddRequiresNameAndIntention(t *testing.T) {
	t.Parallel()

	journal := NewJournal(&memoryJournal{}, nil)

	_, err := journal.Add(context.Background(), domain.ActivationSacred, "", "claridad", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = journal.Add(context.Background(), domain.ActivationSacred, "Abundancia", "   ", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestJournalAddRejectsUnknownActivation(t *testing.T) {
	t.Parallel()

	journal := NewJournal(&memoryJournal{}, nil)

	_, err := journal.Add(context.Background(), domain.ActivationType("Tarot"), "Fehu", "claridad", "")
	assert.ErrorIs(t, err, ErrUnsupportedActivation)
}

func TestJournalListNewestFirst(t *testing.T) {
	t.Parallel()

	repo := &memoryJournal{}
	journal := NewJournal(repo, fixedClock{at: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})

	_, err := journal.Add(context.Background(), domain.ActivationSacred, "Abundancia", "prosperidad", "")
	require.NoError(t, err)

	later := NewJournal(repo, fixedClock{at: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)})
	_, err = later.Add(context.Background(), domain.ActivationRune, "Fehu", "claridad", "")
	require.NoError(t, err)

	entries, err := journal.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Fehu", entries[0].Name)
	assert.Equal(t, "Abundancia", entries[1].Name)
}

func TestJournalDeleteRemovesExactlyOne(t *testing.T) {
	t.Parallel()

	repo := &memoryJournal{}
	journal := NewJournal(repo, fixedClock{at: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	first, err := journal.Add(context.Background(), domain.ActivationSacred, "Abundancia", "prosperidad", "")
	require.NoError(t, err)

	second, err := NewJournal(repo, fixedClock{at: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}).
		Add(context.Background(), domain.ActivationRune, "Fehu", "claridad", "")
	require.NoError(t, err)

	require.NoError(t, journal.Delete(context.Background(), first.ID))

	entries, err := journal.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)

	err = journal.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrJournalEntryNotFound)
}
