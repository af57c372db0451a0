package application

import (
	"context"
	"errors"
	"testing"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codedCatalog() domain.Catalog {
	return domain.Catalog{
		Kind:  domain.CatalogSacred,
		Title: "Códigos Sagrados",
		Entries: []domain.CatalogEntry{
			{Code: 71269, Name: "Abundancia", Description: "Para atraer la abundancia y la riqueza a tu vida.", Category: "Prosperidad"},
			{Code: 1021, Name: "Protección para Viajes", Description: "Asegura un viaje seguro.", Category: "Protección"},
		},
	}
}

func runeCatalog() domain.Catalog {
	return domain.Catalog{
		Kind:  domain.CatalogRunes,
		Title: "Oráculo de Runas",
		Entries: []domain.CatalogEntry{
			{Name: "Fehu", Description: "Riqueza, abundancia.", Category: "Prosperidad y Material"},
			{Name: "Algiz", Description: "Protección divina.", Category: "Protección y Defensa"},
		},
	}
}

func TestMatchResolvesCodedAnswer(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{completeFn: func(context.Context, string) (string, error) {
		return " 71269\n", nil
	}}
	matcher := NewMatcher(oracle)

	entry, err := matcher.Match(context.Background(), "mejorar mi economía", codedCatalog())
	require.NoError(t, err)
	assert.Equal(t, "Abundancia", entry.Name)

	require.Len(t, oracle.prompts, 1)
	assert.Contains(t, oracle.prompts[0], `"mejorar mi economía"`)
	assert.Contains(t, oracle.prompts[0], `"code":71269`)
}

func TestMatchResolvesRuneAnswerCaseInsensitively(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{completeFn: func(context.Context, string) (string, error) {
		return "fehu", nil
	}}

	entry, err := NewMatcher(oracle).Match(context.Background(), "prosperidad", runeCatalog())
	require.NoError(t, err)
	assert.Equal(t, "Fehu", entry.Name)
}

func TestMatchSentinelMeansNoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		catalog domain.Catalog
		answer  string
	}{
		{name: "coded sentinel zero", catalog: codedCatalog(), answer: "0"},
		{name: "rune sentinel null", catalog: runeCatalog(), answer: "null"},
		{name: "rune sentinel null uppercase", catalog: runeCatalog(), answer: "NULL"},
		{name: "coded unparseable", catalog: codedCatalog(), answer: "no lo sé"},
		{name: "coded outside catalog", catalog: codedCatalog(), answer: "999"},
		{name: "rune outside catalog", catalog: runeCatalog(), answer: "Berkana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			oracle := &fakeOracle{completeFn: func(context.Context, string) (string, error) {
				return tt.answer, nil
			}}

			_, err := NewMatcher(oracle).Match(context.Background(), "cualquier propósito", tt.catalog)
			assert.ErrorIs(t, err, domain.ErrNoMatch)
		})
	}
}

func TestMatchEmptyTextShortCircuits(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{}

	_, err := NewMatcher(oracle).Match(context.Background(), "   ", codedCatalog())
	assert.ErrorIs(t, err, domain.ErrNoMatch)
	assert.Empty(t, oracle.prompts, "no network call for empty input")
}

func TestMatchPropagatesCredentialFailureDistinctly(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{completeFn: func(context.Context, string) (string, error) {
		return "", domain.ErrCredentialInvalid
	}}

	_, err := NewMatcher(oracle).Match(context.Background(), "protección", codedCatalog())
	assert.ErrorIs(t, err, domain.ErrCredentialInvalid)
	assert.NotErrorIs(t, err, domain.ErrNoMatch)
}

func TestMatchWrapsTransportFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	oracle := &fakeOracle{completeFn: func(context.Context, string) (string, error) {
		return "", boom
	}}

	_, err := NewMatcher(oracle).Match(context.Background(), "protección", runeCatalog())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNoMatch)
}
