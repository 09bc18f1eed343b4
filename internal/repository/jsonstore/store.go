// Package jsonstore persists each collection as a single JSON document that
// is read in full on every access and rewritten in full on every mutation.
// A store-wide mutex makes each read-modify-write atomic within the process.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Gav1n0112/keya/internal/repository"
)

const (
	userFile     = "user.json"
	softwareFile = "software.json"
	keysFile     = "keys.json"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Init creates the data directory and seeds the collection documents with
// empty arrays. Safe to run repeatedly: existing documents are left alone.
// The user document is created later by the admin bootstrap.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	for _, name := range []string{softwareFile, keysFile} {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}

	return nil
}

func NewRepositories(store *Store) *repository.Repositories {
	return &repository.Repositories{
		User:     NewUserRepository(store),
		Software: NewSoftwareRepository(store),
		Key:      NewKeyRepository(store),
	}
}

// readDoc unmarshals the named document into v. Callers hold s.mu.
func (s *Store) readDoc(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// readCollection fills v from the named document, degrading to whatever
// zero value v already holds when the document is missing or unreadable.
// Callers hold s.mu.
func (s *Store) readCollection(name string, v interface{}) {
	if err := s.readDoc(name, v); err != nil {
		log.Printf("WARN [jsonstore] failed to read %s, treating as empty: %v", name, err)
	}
}

// writeDoc rewrites the named document as an indented snapshot. Callers
// hold s.mu.
func (s *Store) writeDoc(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
