package ports

import (
	"context"

	"github.com/hanguiano/activador/internal/domain"
)

// PreferenceStore round-trips the small user preferences. An unset theme
// returns the empty value with a nil error; the caller falls back to the
// system signal.
type PreferenceStore interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}
