package toml

import (
	"fmt"

	"github.com/hanguiano/activador/internal/domain"
)

const currentJournalSchemaVersion = 1

type journalFileSchema struct {
	Version int                  `toml:"version"`
	Entries []journalEntrySchema `toml:"entries"`
}

func (s *journalFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentJournalSchemaVersion
	}
}

func (s journalFileSchema) validateVersion() error {
	if s.Version > currentJournalSchemaVersion {
		return fmt.Errorf("unsupported journal schema version %d (current %d)", s.Version, currentJournalSchemaVersion)
	}

	return nil
}

type journalEntrySchema struct {
	ID        string `toml:"id"`
	Date      string `toml:"date"`
	Type      string `toml:"type"`
	Name      string `toml:"name"`
	Intention string `toml:"intention"`
	Result    string `toml:"result,omitempty"`
}

func entryToSchema(entry domain.JournalEntry) journalEntrySchema {
	return journalEntrySchema{
		ID:        entry.ID,
		Date:      entry.Date,
		Type:      string(entry.Type),
		Name:      entry.Name,
		Intention: entry.Intention,
		Result:    entry.Result,
	}
}

func entryFromSchema(entry journalEntrySchema) domain.JournalEntry {
	return domain.JournalEntry{
		ID:        entry.ID,
		Date:      entry.Date,
		Type:      domain.ActivationType(entry.Type),
		Name:      entry.Name,
		Intention: entry.Intention,
		Result:    entry.Result,
	}
}
