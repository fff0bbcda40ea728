// Package registry holds the in-memory index over the live asset
// collection. It is a derived view: the metadata store is the source of
// truth and the registry can always be rebuilt from it, so index corruption
// is never fatal.
//
// The registry does no locking. The core runs under a single-writer model:
// the hosting application serializes mutations, and reads never overlap a
// mutation.
package registry

import (
	"fmt"

	"github.com/cura-cli/cura/internal/core/domain"
)

type Registry struct {
	order      []string // insertion order of live ids
	byID       map[string]*domain.Asset
	byPath     map[string]string   // library path -> id
	byCategory map[string][]string // category -> ids in insertion order
}

func New() *Registry {
	r := &Registry{}
	r.Rebuild(nil)
	return r
}

// Rebuild replaces the entire index with the given collection, preserving
// its order. Called at startup and after any bulk external change.
func (r *Registry) Rebuild(assets []domain.Asset) {
	r.order = make([]string, 0, len(assets))
	r.byID = make(map[string]*domain.Asset, len(assets))
	r.byPath = make(map[string]string, len(assets))
	r.byCategory = make(map[string][]string)

	for i := range assets {
		a := assets[i].Clone()
		r.order = append(r.order, a.ID)
		r.byID[a.ID] = &a
		r.byPath[a.LibraryPath] = a.ID
		r.byCategory[a.Category] = append(r.byCategory[a.Category], a.ID)
	}
}

// Insert adds a new asset. The id and library path must both be unused.
func (r *Registry) Insert(asset domain.Asset) error {
	if _, exists := r.byID[asset.ID]; exists {
		return fmt.Errorf("%w: asset id %s", domain.ErrDuplicate, asset.ID)
	}
	if other, exists := r.byPath[asset.LibraryPath]; exists {
		return fmt.Errorf("%w: library path %q is owned by asset %s", domain.ErrDuplicate, asset.LibraryPath, other)
	}

	a := asset.Clone()
	r.order = append(r.order, a.ID)
	r.byID[a.ID] = &a
	r.byPath[a.LibraryPath] = a.ID
	r.byCategory[a.Category] = append(r.byCategory[a.Category], a.ID)
	return nil
}

// Remove drops an asset from all indexes.
func (r *Registry) Remove(id string) error {
	asset, exists := r.byID[id]
	if !exists {
		return fmt.Errorf("%w: asset %s", domain.ErrNotFound, id)
	}

	delete(r.byID, id)
	delete(r.byPath, asset.LibraryPath)
	r.order = removeString(r.order, id)
	r.byCategory[asset.Category] = removeString(r.byCategory[asset.Category], id)
	return nil
}

// Replace swaps the stored record for id while keeping its insertion
// position. The replacement must keep the same id.
func (r *Registry) Replace(id string, asset domain.Asset) error {
	old, exists := r.byID[id]
	if !exists {
		return fmt.Errorf("%w: asset %s", domain.ErrNotFound, id)
	}
	if asset.ID != id {
		return fmt.Errorf("%w: replacement changes asset id", domain.ErrValidation)
	}
	if owner, taken := r.byPath[asset.LibraryPath]; taken && owner != id {
		return fmt.Errorf("%w: library path %q is owned by asset %s", domain.ErrDuplicate, asset.LibraryPath, owner)
	}

	a := asset.Clone()
	if old.LibraryPath != a.LibraryPath {
		delete(r.byPath, old.LibraryPath)
		r.byPath[a.LibraryPath] = id
	}
	if old.Category != a.Category {
		r.byCategory[old.Category] = removeString(r.byCategory[old.Category], id)
		r.byCategory[a.Category] = append(r.byCategory[a.Category], id)
	}
	r.byID[id] = &a
	return nil
}

// GetByID returns a copy of the asset.
func (r *Registry) GetByID(id string) (domain.Asset, error) {
	asset, exists := r.byID[id]
	if !exists {
		return domain.Asset{}, fmt.Errorf("%w: asset %s", domain.ErrNotFound, id)
	}
	return asset.Clone(), nil
}

// HasLibraryPath reports whether any live asset owns the given path.
func (r *Registry) HasLibraryPath(path string) bool {
	_, exists := r.byPath[path]
	return exists
}

// All returns every live asset in insertion order.
func (r *Registry) All() []domain.Asset {
	out := make([]domain.Asset, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

// Len returns the number of live assets.
func (r *Registry) Len() int {
	return len(r.order)
}

// Search returns every asset whose name, description, or any tag contains
// the keyword case-insensitively, in insertion order. An empty keyword
// matches everything.
func (r *Registry) Search(keyword string) []domain.Asset {
	var out []domain.Asset
	for _, id := range r.order {
		a := r.byID[id]
		if keyword == "" || a.MatchesKeyword(keyword) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// FilterByCategory returns the members of a category in insertion order.
// An unknown category yields an empty result, not an error.
func (r *Registry) FilterByCategory(category string) []domain.Asset {
	ids := r.byCategory[category]
	out := make([]domain.Asset, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

func removeString(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
