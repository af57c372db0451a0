package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
)

// Matcher resolves a free-text purpose to one catalog entry through a
// single-shot model call. A sentinel answer ("0" for coded catalogs, "null"
// for runes) or an answer that resolves to nothing yields
// domain.ErrNoMatch; that is a normal negative result, not a failure.
type Matcher struct {
	oracle ports.Oracle
}

func NewMatcher(oracle ports.Oracle) *Matcher {
	return &Matcher{oracle: oracle}
}

func (m *Matcher) Match(ctx context.Context, freeText string, cat domain.Catalog) (domain.CatalogEntry, error) {
	freeText = strings.TrimSpace(freeText)
	if freeText == "" {
		return domain.CatalogEntry{}, fmt.Errorf("empty purpose: %w", domain.ErrNoMatch)
	}

	prompt, err := matchPrompt(freeText, cat)
	if err != nil {
		return domain.CatalogEntry{}, err
	}

	raw, err := m.oracle.Complete(ctx, prompt)
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("consult oracle: %w", err)
	}

	token := strings.TrimSpace(raw)
	if cat.Kind.Coded() {
		return resolveCode(token, cat)
	}

	return resolveRune(token, cat)
}

func resolveCode(token string, cat domain.Catalog) (domain.CatalogEntry, error) {
	code, err := strconv.Atoi(token)
	if err != nil || code == 0 {
		return domain.CatalogEntry{}, fmt.Errorf("oracle answered %q: %w", token, domain.ErrNoMatch)
	}

	entry, ok := cat.FindByCode(code)
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("oracle suggested code %d outside the catalog: %w", code, domain.ErrNoMatch)
	}

	return entry, nil
}

func resolveRune(token string, cat domain.Catalog) (domain.CatalogEntry, error) {
	if strings.EqualFold(token, "null") {
		return domain.CatalogEntry{}, fmt.Errorf("oracle answered the sentinel: %w", domain.ErrNoMatch)
	}

	entry, ok := cat.FindByName(token)
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("oracle suggested %q outside the catalog: %w", token, domain.ErrNoMatch)
	}

	return entry, nil
}

type codedProjection struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type runeProjection struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func matchPrompt(freeText string, cat domain.Catalog) (string, error) {
	if cat.Kind.Coded() {
		projection := make([]codedProjection, 0, len(cat.Entries))
		for _, entry := range cat.Entries {
			projection = append(projection, codedProjection{Code: entry.Code, Name: entry.Name, Description: entry.Description})
		}

		listing, err := json.Marshal(projection)
		if err != nil {
			return "", fmt.Errorf("encode catalog projection: %w", err)
		}

		return fmt.Sprintf(`De la siguiente lista de códigos: %s, encuentra el más relevante para este propósito: "%s". Responde SÓLO con el número del código. Si no encuentras uno adecuado, responde con "0".`, listing, freeText), nil
	}

	projection := make([]runeProjection, 0, len(cat.Entries))
	for _, entry := range cat.Entries {
		projection = append(projection, runeProjection{Name: entry.Name, Description: entry.Description})
	}

	listing, err := json.Marshal(projection)
	if err != nil {
		return "", fmt.Errorf("encode catalog projection: %w", err)
	}

	return fmt.Sprintf(`De la siguiente lista de runas: %s, encuentra la más relevante para este propósito: "%s". Responde SÓLO con el nombre exacto de la runa (ej: 'Fehu', 'Uruz'). Si no encuentras una adecuada, responde con "null".`, listing, freeText), nil
}
