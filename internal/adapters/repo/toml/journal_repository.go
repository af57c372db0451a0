package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	configName      = "config"
	configType      = "toml"
	journalPathKey  = "journal.path"
	storeFileMode   = 0o600
	storeDirMode    = 0o700
	configDirName   = ".activador"
	journalFileName = "journal.toml"
)

// JournalRepository keeps the whole journal in one TOML file. Every
// mutation rewrites the file atomically, so the persisted collection is
// always a valid serialization of the in-memory one.
type JournalRepository struct {
	path string
	mu   *sync.RWMutex
	log  *zap.Logger
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.JournalRepository = (*JournalRepository)(nil)

func NewJournalRepository(cfg *viper.Viper, log *zap.Logger) (*JournalRepository, error) {
	path, err := resolvePath(cfg, journalPathKey, journalFileName)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &JournalRepository{path: path, mu: lockForPath(path), log: log}, nil
}

func (r *JournalRepository) List(ctx context.Context) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(file.Entries))
	for _, entry := range file.Entries {
		entries = append(entries, entryFromSchema(entry))
	}

	return entries, nil
}

func (r *JournalRepository) Append(ctx context.Context, entry domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()
	file.Entries = append(file.Entries, entryToSchema(entry))

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOML(r.path, file)
}

func (r *JournalRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	kept := file.Entries[:0]
	found := false
	for _, entry := range file.Entries {
		if entry.ID == id {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrJournalEntryNotFound
	}
	file.Entries = kept

	return writeTOML(r.path, file)
}

// readSchema treats a missing file as an empty journal and a corrupt file
// as an empty journal too: the original behavior was to log the decode
// failure and show an empty diary rather than crash the screen.
func (r *JournalRepository) readSchema() (journalFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return journalFileSchema{}, nil
		}
		return journalFileSchema{}, fmt.Errorf("read journal file: %w", err)
	}

	var file journalFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		r.log.Warn("journal file is corrupt, starting from an empty collection",
			zap.String("path", r.path), zap.Error(err))
		return journalFileSchema{}, nil
	}
	if err := file.validateVersion(); err != nil {
		return journalFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func resolvePath(cfg *viper.Viper, key, fileName string) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, fileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(key, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return "", fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(key)
	if path == "" {
		return "", fmt.Errorf("%s is empty", key)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func writeTOML(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".store-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp store file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, storeFileMode); err != nil {
		return fmt.Errorf("chmod store file: %w", err)
	}

	return nil
}
