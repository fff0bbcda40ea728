package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/library"
)

func newTestStore(t *testing.T) (*JSONStore, *library.Library) {
	t.Helper()
	lib := library.New(t.TempDir())
	if err := lib.Initialize(); err != nil {
		t.Fatalf("initialize library: %v", err)
	}
	return NewJSONStore(lib), lib
}

func sampleAssets() []domain.Asset {
	now := time.Now().UTC().Truncate(time.Second)
	return []domain.Asset{
		{
			ID:            domain.NewID(),
			Name:          "Rock",
			Category:      "Materials",
			Kind:          domain.KindFile,
			LibraryPath:   "assets/rock.png",
			ThumbnailPath: ".asset_db/thumbnails/x.jpg",
			Description:   "A mossy rock",
			Tags:          []string{"stone", "Moss"},
			SizeBytes:     2048,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:          domain.NewID(),
			Name:        "Textures",
			Category:    "Uncategorized",
			Kind:        domain.KindDirectory,
			LibraryPath: "assets/textures",
			Tags:        []string{},
			SizeBytes:   4096,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	assets := sampleAssets()
	categories := []string{"Uncategorized", "Materials"}

	if err := s.Save(assets, categories); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotAssets, gotCategories, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(gotAssets) != len(assets) {
		t.Fatalf("expected %d assets, got %d", len(assets), len(gotAssets))
	}
	for i, want := range assets {
		got := gotAssets[i]
		if got.ID != want.ID || got.Name != want.Name || got.Category != want.Category ||
			got.Kind != want.Kind || got.LibraryPath != want.LibraryPath ||
			got.ThumbnailPath != want.ThumbnailPath || got.Description != want.Description ||
			got.SizeBytes != want.SizeBytes {
			t.Errorf("asset %d does not round-trip: got %+v want %+v", i, got, want)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
			t.Errorf("asset %d timestamps do not round-trip", i)
		}
		if len(got.Tags) != len(want.Tags) {
			t.Errorf("asset %d tags do not round-trip", i)
		}
	}

	if len(gotCategories) != 2 || gotCategories[0] != "Uncategorized" || gotCategories[1] != "Materials" {
		t.Errorf("categories do not round-trip: %v", gotCategories)
	}
}

func TestJSONStore_RoundTripEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Save(nil, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	assets, categories, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(assets) != 0 || len(categories) != 0 {
		t.Errorf("expected empty collection, got %d assets, %d categories", len(assets), len(categories))
	}
}

func TestJSONStore_LoadMissing(t *testing.T) {
	s, _ := newTestStore(t)

	assets, categories, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for missing store, got %v", err)
	}
	if assets != nil || categories != nil {
		t.Error("expected nil collection for missing store")
	}
}

func TestJSONStore_LoadCorrupt(t *testing.T) {
	s, lib := newTestStore(t)

	if err := os.WriteFile(lib.StoreFile(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := s.Load()
	if !errors.Is(err, domain.ErrCorruptStore) {
		t.Errorf("expected ErrCorruptStore, got %v", err)
	}
}

func TestJSONStore_SaveLeavesNoTempFiles(t *testing.T) {
	s, lib := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.Save(sampleAssets(), []string{"Uncategorized"}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(lib.StoreDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestJSONStore_SaveOverwritesPrevious(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Save(sampleAssets(), []string{"Uncategorized", "Materials"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(nil, []string{"Uncategorized"}); err != nil {
		t.Fatal(err)
	}

	assets, categories, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 0 {
		t.Errorf("expected previous assets replaced, got %d", len(assets))
	}
	if len(categories) != 1 {
		t.Errorf("expected 1 category, got %d", len(categories))
	}
}

func TestJSONStore_SaveUnwritable(t *testing.T) {
	lib := library.New(filepath.Join(t.TempDir(), "missing", "deeper"))
	s := NewJSONStore(lib)

	// Make the parent unwritable by creating it as a file.
	parent := filepath.Dir(lib.Root())
	if err := os.WriteFile(parent, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := s.Save(sampleAssets(), []string{"Uncategorized"})
	if !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}
