package session

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"sync"

	kos "github.com/opst/foodfab/pkg/utils/os"
	"gopkg.in/yaml.v3"
)

// KeyValueStore persists string values by key.
type KeyValueStore interface {
	// Get returns the value for key, and whether it exists.
	Get(key string) (string, bool, error)

	Set(key string, value string) error

	// Delete removes keys. Missing keys are ignored.
	Delete(keys ...string) error
}

// MemoryStore is a KeyValueStore living in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

// FileStore is a KeyValueStore backed by a yaml file.
//
// The file is read on every access and rewritten on every change, so
// processes sharing the file see each other's changes.
// It is readable and writable only by the current user.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() (map[string]string, error) {
	buf, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(buf, &values); err != nil {
		return nil, fmt.Errorf("session file %s is broken: %w", f.path, err)
	}
	return values, nil
}

func (f *FileStore) save(values map[string]string) error {
	buf, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	return kos.WriteWithBackup(f.path, buf)
}

func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (f *FileStore) Set(key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

func (f *FileStore) Delete(keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return err
	}
	before := maps.Clone(values)
	for _, k := range keys {
		delete(values, k)
	}
	if maps.Equal(before, values) {
		return nil
	}
	return f.save(values)
}
