package ports

import (
	"context"

	"github.com/hanguiano/activador/internal/domain"
)

// Oracle is the hosted generative endpoint. Complete answers a plain text
// prompt; Illustrate returns an inline image for a prompt. Implementations
// classify an invalid-credential rejection as domain.ErrCredentialInvalid.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Illustrate(ctx context.Context, prompt string) (domain.Illustration, error)
}
