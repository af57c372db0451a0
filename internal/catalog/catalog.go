// Package catalog holds the static catalogs the application ships with.
// Entries are defined at process start and never mutated.
package catalog

import (
	"fmt"

	"github.com/hanguiano/activador/internal/domain"
)

func Sacred() domain.Catalog {
	return domain.Catalog{
		Kind:    domain.CatalogSacred,
		Title:   "Códigos Sagrados",
		Entries: sacredEntries,
	}
}

func Agesta() domain.Catalog {
	return domain.Catalog{
		Kind:    domain.CatalogAgesta,
		Title:   "Códigos de Agesta",
		Entries: agestaEntries,
	}
}

func Runes() domain.Catalog {
	return domain.Catalog{
		Kind:    domain.CatalogRunes,
		Title:   "Oráculo de Runas",
		Entries: runeEntries,
	}
}

func ByKind(kind domain.CatalogKind) (domain.Catalog, error) {
	switch kind {
	case domain.CatalogSacred:
		return Sacred(), nil
	case domain.CatalogAgesta:
		return Agesta(), nil
	case domain.CatalogRunes:
		return Runes(), nil
	default:
		return domain.Catalog{}, fmt.Errorf("unknown catalog %q", kind)
	}
}

func All() []domain.Catalog {
	return []domain.Catalog{Sacred(), Agesta(), Runes()}
}
