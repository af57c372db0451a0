package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		Kind:  CatalogSacred,
		Title: "Códigos Sagrados",
		Entries: []CatalogEntry{
			{Code: 520, Name: "Éxito Inesperado", Category: "Prosperidad"},
			{Code: 897, Name: "Cancelar Deudas", Category: "Prosperidad"},
			{Code: 8, Name: "Sanación General", Category: "Salud"},
			{Code: 897, Name: "Disolver la Ansiedad", Category: "Salud"},
		},
	}
}

func TestCatalogCategoriesFirstSeenOrder(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, []string{"Prosperidad", "Salud"}, c.Categories())
}

func TestCatalogFindByCodeDuplicateResolvesToFirst(t *testing.T) {
	c := testCatalog()

	entry, ok := c.FindByCode(897)
	require.True(t, ok)
	assert.Equal(t, "Cancelar Deudas", entry.Name)
}

func TestCatalogFindByCodeZeroNeverMatches(t *testing.T) {
	c := Catalog{Entries: []CatalogEntry{{Name: "Fehu"}}}

	_, ok := c.FindByCode(0)
	assert.False(t, ok)
}

func TestCatalogFindByNameCaseInsensitive(t *testing.T) {
	c := Catalog{
		Kind:    CatalogRunes,
		Entries: []CatalogEntry{{Name: "Fehu"}, {Name: "Uruz"}},
	}

	entry, ok := c.FindByName("fehu")
	require.True(t, ok)
	assert.Equal(t, "Fehu", entry.Name)

	_, ok = c.FindByName("Berkana")
	assert.False(t, ok)
}

func TestCatalogByCategory(t *testing.T) {
	c := testCatalog()

	salud := c.ByCategory("Salud")
	require.Len(t, salud, 2)
	assert.Equal(t, "Sanación General", salud[0].Name)

	assert.Len(t, c.ByCategory(""), 4)
	assert.Empty(t, c.ByCategory("Amor"))
}

func TestCatalogKindCoded(t *testing.T) {
	tests := []struct {
		name string
		kind CatalogKind
		want bool
	}{
		{name: "sacred is coded", kind: CatalogSacred, want: true},
		{name: "agesta is coded", kind: CatalogAgesta, want: true},
		{name: "runes are symbolic", kind: CatalogRunes, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Coded())
		})
	}
}

func TestActivationTypeFor(t *testing.T) {
	assert.Equal(t, ActivationSacred, ActivationTypeFor(CatalogSacred))
	assert.Equal(t, ActivationAgesta, ActivationTypeFor(CatalogAgesta))
	assert.Equal(t, ActivationRune, ActivationTypeFor(CatalogRunes))
}

func TestTranscriptAppendOnly(t *testing.T) {
	var tr Transcript
	tr.Append(ChatMessage{Role: RoleUser, Text: "¿Qué es una runa?"})
	tr.Append(ChatMessage{Role: RoleSage, Text: "Un símbolo antiguo."})

	messages := tr.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, RoleUser, messages[0].Role)

	// Mutating the returned slice must not touch the transcript.
	messages[0].Text = "altered"
	assert.Equal(t, "¿Qué es una runa?", tr.Messages()[0].Text)
}

func TestGenerationVariants(t *testing.T) {
	pending := PendingGeneration()
	assert.Equal(t, GenerationPending, pending.Phase)

	textReady := TextReadyGeneration("### Instrucciones")
	assert.Equal(t, GenerationTextReady, textReady.Phase)
	assert.Equal(t, "### Instrucciones", textReady.Text)
	assert.Nil(t, textReady.Image)

	image := &Illustration{MIMEType: "image/png", Data: []byte{0x89}}
	complete := CompleteGeneration("### Instrucciones", image)
	assert.Equal(t, GenerationComplete, complete.Phase)
	assert.Same(t, image, complete.Image)

	reason := errors.New("boom")
	failed := FailedGeneration(reason)
	assert.Equal(t, GenerationFailed, failed.Phase)
	assert.ErrorIs(t, failed.Reason, reason)
}

func TestThemeValid(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme("sepia").Valid())
}
