// Package env reads secrets from the process environment. It is the
// read-only primary of the credential chain: an exported GEMINI_API_KEY
// (or a .env file loaded at startup) wins over anything stored on disk.
package env

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
)

type Store struct {
	vars map[string]string
}

var _ ports.SecretStore = (*Store)(nil)

// NewStore maps logical secret keys to environment variable names, e.g.
// {"gemini/api_key": "GEMINI_API_KEY"}.
func NewStore(vars map[string]string) *Store {
	return &Store{vars: vars}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, ok := s.vars[key]
	if !ok {
		return "", fmt.Errorf("secret %q has no environment mapping: %w", key, domain.ErrSecretNotFound)
	}

	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return "", fmt.Errorf("environment variable %s is unset: %w", name, domain.ErrSecretNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("environment store is read-only, cannot put %q", key)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("environment store is read-only, cannot delete %q", key)
}
