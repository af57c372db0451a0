package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hanguiano/activador/internal/adapters/cache"
	"github.com/hanguiano/activador/internal/adapters/oracle/gemini"
	tomlrepo "github.com/hanguiano/activador/internal/adapters/repo/toml"
	chainstore "github.com/hanguiano/activador/internal/adapters/secrets/chain"
	"github.com/hanguiano/activador/internal/application"
	"github.com/hanguiano/activador/internal/catalog"
	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
)

const (
	configDirName = ".activador"
	geminiKeyRef  = "gemini/api_key"
	geminiKeyEnv  = "GEMINI_API_KEY"
)

type app struct {
	logger      *zap.Logger
	cfg         *viper.Viper
	secrets     ports.SecretStore
	journal     *application.Journal
	preferences ports.PreferenceStore
	catalogs    []domain.Catalog
}

func wireApp() (*app, error) {
	logger := newLogger()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault("cache.path", filepath.Join(homeDir, configDirName, "cache"))
	cfg.SetDefault("cache.strict_install", false)
	cfg.SetDefault("cache.offline_fallback", true)
	cfg.SetDefault("cache.manifest", []string{})
	cfg.SetDefault("gemini.text_model", "")
	cfg.SetDefault("gemini.image_model", "")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	secrets, err := chainstore.NewEnvFirstWithFileFallback(
		map[string]string{geminiKeyRef: geminiKeyEnv},
		filepath.Join(homeDir, configDirName, "secrets"),
	)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	journalRepo, err := tomlrepo.NewJournalRepository(viper.New(), logger)
	if err != nil {
		return nil, fmt.Errorf("wire journal repository: %w", err)
	}

	preferences, err := tomlrepo.NewPreferenceStore(viper.New(), logger)
	if err != nil {
		return nil, fmt.Errorf("wire preference store: %w", err)
	}

	return &app{
		logger:      logger,
		cfg:         cfg,
		secrets:     secrets,
		journal:     application.NewJournal(journalRepo, ports.SystemClock{}),
		preferences: preferences,
		catalogs:    catalog.All(),
	}, nil
}

// oracle builds the Gemini client on demand. Commands that never reach
// the model stay usable without a key.
func (a *app) oracle(ctx context.Context) (ports.Oracle, error) {
	key, err := a.secrets.Get(ctx, geminiKeyRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return nil, fmt.Errorf("no API key configured, export %s or run 'activador auth set-key': %w", geminiKeyEnv, domain.ErrCredentialMissing)
		}
		return nil, fmt.Errorf("load API key: %w", err)
	}

	client, err := gemini.New(ctx, gemini.Config{
		APIKey:     key,
		TextModel:  a.cfg.GetString("gemini.text_model"),
		ImageModel: a.cfg.GetString("gemini.image_model"),
	})
	if err != nil {
		return nil, fmt.Errorf("wire oracle: %w", err)
	}

	return client, nil
}

func (a *app) proxy() *cache.Proxy {
	return cache.New(cache.Options{
		BasePath:        a.cfg.GetString("cache.path"),
		Manifest:        a.cfg.GetStringSlice("cache.manifest"),
		StrictInstall:   a.cfg.GetBool("cache.strict_install"),
		OfflineFallback: a.cfg.GetBool("cache.offline_fallback"),
		Logger:          a.logger,
	})
}

func newLogger() *zap.Logger {
	if os.Getenv("ACTIVADOR_DEBUG") == "" {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
