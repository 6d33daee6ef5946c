package pancakes

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/store"
)

// Store is what the demo needs from a state store.
type Store interface {
	viewstack.StateStore
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// nopCloser adds Close to stores that hold no resources.
type nopCloser struct {
	keyedStore
}

type keyedStore interface {
	viewstack.StateStore
	Delete(key string) error
	Keys() ([]string, error)
}

func (nopCloser) Close() error { return nil }

// OpenStore opens the store selected by cfg.Driver.
func OpenStore(cfg StoreConfig) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return nopCloser{store.NewMemoryStore()}, nil
	case DriverFile:
		path, err := storePath(cfg, "state.toml")
		if err != nil {
			return nil, err
		}
		return nopCloser{store.NewFileStore(path)}, nil
	case DriverSQLite:
		path, err := storePath(cfg, "state.db")
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
		return store.OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDriver, cfg.Driver)
	}
}

func storePath(cfg StoreConfig, name string) (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve store path: %w", err)
	}
	return filepath.Join(dir, configFileName, name), nil
}
