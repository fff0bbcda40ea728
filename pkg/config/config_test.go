package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultCategory != "Uncategorized" {
		t.Errorf("expected default category, got %q", cfg.DefaultCategory)
	}
	if !cfg.AutoGenerateThumbnail {
		t.Error("thumbnails should default to enabled")
	}
	if cfg.ThumbnailSize != [2]int{256, 256} {
		t.Errorf("unexpected default size: %v", cfg.ThumbnailSize)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"asset_library_path": "/data/lib", "some_future_key": 42}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unknown keys must be ignored: %v", err)
	}

	if cfg.AssetLibraryPath != "/data/lib" {
		t.Errorf("explicit key not applied: %q", cfg.AssetLibraryPath)
	}
	if cfg.DefaultCategory != "Uncategorized" {
		t.Errorf("missing key lost its default: %q", cfg.DefaultCategory)
	}
}

func TestLoad_InvalidThumbnailSizeRepaired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"thumbnail_size": [0, -5]}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ThumbnailSize != [2]int{256, 256} {
		t.Errorf("invalid size not repaired: %v", cfg.ThumbnailSize)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	want := &Config{
		AssetLibraryPath:      "/data/lib",
		DefaultCategory:       "General",
		AutoGenerateThumbnail: false,
		ThumbnailSize:         [2]int{128, 96},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v want %+v", got, want)
	}
}
