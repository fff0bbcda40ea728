package library

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLibrary_Initialize(t *testing.T) {
	root := filepath.Join(t.TempDir(), "lib")
	l := New(root)

	if l.Exists() {
		t.Error("library should not exist before Initialize")
	}

	if err := l.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	for _, dir := range []string{l.AssetsDir(), l.StoreDir(), l.ThumbnailsDir()} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s", dir)
		}
	}

	if !l.Exists() {
		t.Error("library should exist after Initialize")
	}
}

func TestLibrary_RelAbs(t *testing.T) {
	l := New("/data/library")

	if got := l.Abs("assets/rock.png"); got != filepath.Join("/data/library", "assets", "rock.png") {
		t.Errorf("unexpected abs path: %s", got)
	}

	rel, err := l.Rel(filepath.Join("/data/library", "assets", "rock.png"))
	if err != nil {
		t.Fatalf("rel: %v", err)
	}
	if rel != "assets/rock.png" {
		t.Errorf("expected assets/rock.png, got %s", rel)
	}
}

func TestLibrary_StorePaths(t *testing.T) {
	l := New("/data/library")

	if got := l.StoreFile(); got != filepath.Join("/data/library", ".asset_db", "assets.json") {
		t.Errorf("unexpected store file: %s", got)
	}
	if got := l.ThumbnailsDir(); got != filepath.Join("/data/library", ".asset_db", "thumbnails") {
		t.Errorf("unexpected thumbnails dir: %s", got)
	}
}
