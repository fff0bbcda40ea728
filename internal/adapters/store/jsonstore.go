package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/library"
)

// document is the on-disk shape of the metadata store: one JSON object
// holding the full asset collection and the category list.
type document struct {
	Assets     []domain.Asset `json:"assets"`
	Categories []string       `json:"categories"`
}

// JSONStore persists the catalogue as a single snapshot document at
// {library}/.asset_db/assets.json. Every save rewrites the whole document
// through a temp file and an atomic rename, so a crash mid-write never
// leaves a truncated store behind.
type JSONStore struct {
	lib *library.Library
}

func NewJSONStore(lib *library.Library) *JSONStore {
	return &JSONStore{lib: lib}
}

// Load reads the persisted collection. A missing document yields an empty
// collection; an unparseable one fails with domain.ErrCorruptStore.
func (s *JSONStore) Load() ([]domain.Asset, []string, error) {
	data, err := os.ReadFile(s.lib.StoreFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: reading %s: %v", domain.ErrPersistence, s.lib.StoreFile(), err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptStore, s.lib.StoreFile(), err)
	}

	return doc.Assets, doc.Categories, nil
}

// Save writes the full snapshot atomically.
func (s *JSONStore) Save(assets []domain.Asset, categories []string) error {
	if assets == nil {
		assets = []domain.Asset{}
	}
	if categories == nil {
		categories = []string{}
	}

	data, err := json.MarshalIndent(document{Assets: assets, Categories: categories}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding store document: %v", domain.ErrPersistence, err)
	}

	dir := s.lib.StoreDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	// The temp file lives in the store directory so the rename stays on
	// one filesystem and is atomic.
	tmp, err := os.CreateTemp(dir, "assets-*.json.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if err := os.Rename(tmpName, s.lib.StoreFile()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return nil
}

// Path returns the document location, mainly for log output.
func (s *JSONStore) Path() string {
	return filepath.Clean(s.lib.StoreFile())
}
