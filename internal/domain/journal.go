package domain

type ActivationType string

const (
	ActivationSacred ActivationType = "Código Sagrado"
	ActivationAgesta ActivationType = "Código de Agesta"
	ActivationRune   ActivationType = "Runa"
)

func (t ActivationType) Valid() bool {
	switch t {
	case ActivationSacred, ActivationAgesta, ActivationRune:
		return true
	}
	return false
}

// ActivationTypeFor maps a catalog kind to the label the journal records.
func ActivationTypeFor(kind CatalogKind) ActivationType {
	switch kind {
	case CatalogAgesta:
		return ActivationAgesta
	case CatalogRunes:
		return ActivationRune
	default:
		return ActivationSacred
	}
}

// JournalEntry records one activation outcome. ID is the creation
// timestamp and doubles as the sort key; entries are appended and deleted,
// never edited.
type JournalEntry struct {
	ID        string
	Date      string
	Type      ActivationType
	Name      string
	Intention string
	Result    string
}
