package ports

import "context"

// SecretStore keeps the API credential outside the config files. A missing
// key reports domain.ErrSecretNotFound.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
