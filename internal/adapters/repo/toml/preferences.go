package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	preferencesPathKey  = "preferences.path"
	preferencesFileName = "preferences.toml"
)

type preferencesSchema struct {
	Theme string `toml:"theme,omitempty"`
}

// PreferenceStore round-trips the theme preference. An absent or
// unreadable file reads as "no preference"; the caller then falls back to
// the system color-scheme signal.
type PreferenceStore struct {
	path string
	mu   *sync.RWMutex
	log  *zap.Logger
}

var _ ports.PreferenceStore = (*PreferenceStore)(nil)

func NewPreferenceStore(cfg *viper.Viper, log *zap.Logger) (*PreferenceStore, error) {
	path, err := resolvePath(cfg, preferencesPathKey, preferencesFileName)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &PreferenceStore{path: path, mu: lockForPath(path), log: log}, nil
}

func (s *PreferenceStore) Theme(ctx context.Context) (domain.Theme, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read preferences file: %w", err)
	}

	var prefs preferencesSchema
	if err := toml.Unmarshal(data, &prefs); err != nil {
		s.log.Warn("preferences file is corrupt, falling back to system theme",
			zap.String("path", s.path), zap.Error(err))
		return "", nil
	}

	theme := domain.Theme(prefs.Theme)
	if theme != "" && !theme.Valid() {
		s.log.Warn("ignoring unknown theme preference", zap.String("theme", prefs.Theme))
		return "", nil
	}

	return theme, nil
}

func (s *PreferenceStore) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q", theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeTOML(s.path, preferencesSchema{Theme: string(theme)})
}
