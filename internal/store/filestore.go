package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the document in a single JSON file. Every operation is a
// full read-modify-write under one mutex; writes go through a temp file and
// rename so a crash never leaves a torn document. The file format matches
// a legacy db.json, including the flat menu shape, which upgrades on
// decode.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore opens the document at path, creating a seeded one if none
// exists. An existing file is validated but left byte-for-byte untouched;
// legacy-shape data upgrades on the read path, not on open.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		doc := &Document{}
		doc.seedDefaults()
		if err := s.persist(doc); err != nil {
			return nil, err
		}
		return s, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrUnavailable, path, err)
	}

	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) View(ctx context.Context, fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

func (s *FileStore) Update(ctx context.Context, fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.persist(doc)
}

func (s *FileStore) load() (*Document, error) {
	doc := &Document{}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc.seedDefaults()
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.path, err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrUnavailable, s.path, err)
		}
	}
	doc.seedDefaults()
	return doc, nil
}

func (s *FileStore) persist(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return fmt.Errorf("%w: temp file: %v", ErrUnavailable, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename: %v", ErrUnavailable, err)
	}
	return nil
}
