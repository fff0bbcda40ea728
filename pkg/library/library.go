package library

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// StoreDirName is the reserved subdirectory of the library root that
	// holds the metadata store and the thumbnail cache. Asset content
	// never lives under it.
	StoreDirName = ".asset_db"

	// AssetsDirName is where imported content is copied to.
	AssetsDirName = "assets"

	storeFileName = "assets.json"
	thumbsDirName = "thumbnails"
)

// Library represents the managed storage tree rooted at a single configured
// directory. All paths handed to callers outside this package are absolute;
// paths recorded on asset records are relative to the root.
type Library struct {
	root string
}

// New creates a Library rooted at the given absolute path. The path is not
// created until Initialize is called.
func New(root string) *Library {
	return &Library{root: filepath.Clean(root)}
}

// Root returns the configured library root.
func (l *Library) Root() string {
	return l.root
}

// SetRoot re-points the library at a new root. The caller is responsible
// for ensuring no recorded assets still reference the old root.
func (l *Library) SetRoot(root string) {
	l.root = filepath.Clean(root)
}

// AssetsDir returns the directory imported content is copied into.
func (l *Library) AssetsDir() string {
	return filepath.Join(l.root, AssetsDirName)
}

// StoreDir returns the reserved metadata directory.
func (l *Library) StoreDir() string {
	return filepath.Join(l.root, StoreDirName)
}

// StoreFile returns the path of the metadata store document.
func (l *Library) StoreFile() string {
	return filepath.Join(l.root, StoreDirName, storeFileName)
}

// ThumbnailsDir returns the thumbnail cache directory.
func (l *Library) ThumbnailsDir() string {
	return filepath.Join(l.root, StoreDirName, thumbsDirName)
}

// Abs resolves a library-relative path (as recorded on an asset) to an
// absolute one.
func (l *Library) Abs(rel string) string {
	return filepath.Join(l.root, rel)
}

// Rel converts an absolute path inside the library to the root-relative
// form recorded on asset records.
func (l *Library) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(l.root, abs)
	if err != nil {
		return "", fmt.Errorf("path %s is not inside the library: %w", abs, err)
	}
	return filepath.ToSlash(rel), nil
}

// Initialize creates the library directory structure if it doesn't exist
func (l *Library) Initialize() error {
	directories := []string{
		l.root,
		l.AssetsDir(),
		l.StoreDir(),
		l.ThumbnailsDir(),
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the library root has been created
func (l *Library) Exists() bool {
	info, err := os.Stat(l.root)
	if err != nil {
		return false
	}
	return info.IsDir()
}
