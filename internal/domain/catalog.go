package domain

import "strings"

type CatalogKind string

const (
	CatalogSacred CatalogKind = "sacred"
	CatalogAgesta CatalogKind = "agesta"
	CatalogRunes  CatalogKind = "runes"
)

// Coded reports whether entries of this catalog carry a numeric code.
func (k CatalogKind) Coded() bool {
	return k == CatalogSacred || k == CatalogAgesta
}

// CatalogEntry is one item of a catalog. Coded entries carry a numeric
// Code; rune entries leave it zero and are keyed by Name. Codes are not
// unique, not even within a single catalog.
type CatalogEntry struct {
	Code        int
	Name        string
	Description string
	Category    string
}

func (e CatalogEntry) Coded() bool {
	return e.Code != 0
}

type Catalog struct {
	Kind    CatalogKind
	Title   string
	Entries []CatalogEntry
}

// Categories returns the distinct category names in first-seen order.
func (c Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.Entries))
	categories := make([]string, 0, len(c.Entries))

	for _, entry := range c.Entries {
		if _, ok := seen[entry.Category]; ok {
			continue
		}
		seen[entry.Category] = struct{}{}
		categories = append(categories, entry.Category)
	}

	return categories
}

// FindByCode returns the first entry carrying the given code. Duplicated
// codes resolve to whichever entry appears first in the catalog.
func (c Catalog) FindByCode(code int) (CatalogEntry, bool) {
	if code == 0 {
		return CatalogEntry{}, false
	}

	for _, entry := range c.Entries {
		if entry.Code == code {
			return entry, true
		}
	}

	return CatalogEntry{}, false
}

// FindByName matches case-insensitively on the entry name.
func (c Catalog) FindByName(name string) (CatalogEntry, bool) {
	for _, entry := range c.Entries {
		if strings.EqualFold(entry.Name, name) {
			return entry, true
		}
	}

	return CatalogEntry{}, false
}

// ByCategory returns the entries tagged with the given category, in
// catalog order. An empty category returns every entry.
func (c Catalog) ByCategory(category string) []CatalogEntry {
	if category == "" {
		return c.Entries
	}

	entries := make([]CatalogEntry, 0, len(c.Entries))
	for _, entry := range c.Entries {
		if entry.Category == category {
			entries = append(entries, entry)
		}
	}

	return entries
}
