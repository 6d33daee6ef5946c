package store

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

const fileFormatVersion = 1

// fileDocument is the on-disk layout of a FileStore.
// Values are base64 so any blob survives TOML's string rules.
type fileDocument struct {
	Version int               `toml:"version"`
	Values  map[string]string `toml:"values"`
}

// FileStore keeps all keys in a single TOML file. Every Put rewrites the
// file through a temporary file and a rename, so readers never see a
// half-written document.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ viewstack.StateStore = (*FileStore)(nil)

// NewFileStore creates a store backed by path. The file and its parent
// directories are created on the first Put.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, false, err
	}

	encoded, ok := doc.Values[key]
	if !ok {
		return nil, false, nil
	}

	value, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false, fmt.Errorf("decode %q in %s: %w", key, s.path, err)
	}
	return value, true, nil
}

func (s *FileStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Values[key] = base64.StdEncoding.EncodeToString(value)
	return s.write(doc)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Values[key]; !ok {
		return nil
	}
	delete(doc.Values, key)
	return s.write(doc)
}

// Keys returns the stored keys in sorted order.
func (s *FileStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc.Values))
	for k := range doc.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FileStore) load() (fileDocument, error) {
	doc := fileDocument{Version: fileFormatVersion}

	if _, err := toml.DecodeFile(s.path, &doc); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return doc, fmt.Errorf("read %s: %w", s.path, err)
		}
	}
	if doc.Version != fileFormatVersion {
		return doc, fmt.Errorf("read %s: unsupported version %d", s.path, doc.Version)
	}
	if doc.Values == nil {
		doc.Values = make(map[string]string)
	}
	return doc, nil
}

func (s *FileStore) write(doc fileDocument) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
