package ports

import (
	"context"

	"github.com/cura-cli/cura/internal/core/domain"
)

// Store defines the port for durable catalogue persistence. The store holds
// the full snapshot: every mutation saves the whole collection, which is
// acceptable at local-library scale and keeps crash behavior simple.
type Store interface {
	// Load reads the persisted collection. A missing store is not an
	// error and yields an empty collection; an unparseable one fails
	// with domain.ErrCorruptStore.
	Load() (assets []domain.Asset, categories []string, err error)

	// Save atomically replaces the previous snapshot. Fails with
	// domain.ErrPersistence on unwritable media.
	Save(assets []domain.Asset, categories []string) error
}

// Thumbnailer defines the port for preview generation. Generation is
// best-effort: the manager treats any error as "no thumbnail" and never
// fails an import over it.
type Thumbnailer interface {
	// Generate produces a preview for the source and returns its path
	// relative to the library root. The path is a function of the asset
	// id only, so regeneration overwrites in place.
	Generate(ctx context.Context, sourcePath string, kind domain.Kind, assetID string) (string, error)

	// Remove deletes the cached preview for an asset; a missing file is
	// not an error.
	Remove(assetID string) error
}
