package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/internal/core/ports"
	"github.com/cura-cli/cura/internal/core/registry"
	"github.com/cura-cli/cura/pkg/library"
)

// Manager is the only component allowed to span the store, the thumbnail
// pipeline, and the registry in one state transition. Callers see each
// operation as atomic: a failed mutation leaves no partial record and no
// orphaned content.
//
// The manager assumes serialized mutations (single-writer model); it does
// no internal locking.
type Manager struct {
	lib    *library.Library
	store  ports.Store
	thumbs ports.Thumbnailer
	reg    *registry.Registry

	defaultCategory string
	autoThumbnail   bool
	categories      []string
}

// ManagerOptions configures catalogue policy at construction time.
type ManagerOptions struct {
	DefaultCategory string
	AutoThumbnail   bool
}

// NewManager loads the persisted catalogue and builds the in-memory index.
//
// A corrupt store is recovered, not fatal: the returned manager starts from
// an empty catalogue and the error (matching domain.ErrCorruptStore) reports
// the condition so the caller can warn the user.
func NewManager(lib *library.Library, store ports.Store, thumbs ports.Thumbnailer, opts ManagerOptions) (*Manager, error) {
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = "Uncategorized"
	}

	m := &Manager{
		lib:             lib,
		store:           store,
		thumbs:          thumbs,
		reg:             registry.New(),
		defaultCategory: opts.DefaultCategory,
		autoThumbnail:   opts.AutoThumbnail,
	}

	assets, categories, err := store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrCorruptStore) {
			m.categories = m.withDefault(nil)
			return m, err
		}
		return nil, err
	}

	m.categories = m.withDefault(categories)
	m.reg.Rebuild(assets)
	return m, nil
}

// withDefault returns the category list with the reserved default first.
func (m *Manager) withDefault(categories []string) []string {
	out := []string{m.defaultCategory}
	for _, c := range categories {
		if c != m.defaultCategory {
			out = append(out, c)
		}
	}
	return out
}

func (m *Manager) hasCategory(name string) bool {
	for _, c := range m.categories {
		if c == name {
			return true
		}
	}
	return false
}

func (m *Manager) persist() error {
	return m.store.Save(m.reg.All(), m.categories)
}

// AddAsset imports a file or folder into the library: the content is copied
// under the library root, a preview is generated best-effort, and the record
// is indexed and persisted. If persistence fails, the insert is rolled back
// and the copied content removed so no orphan survives the attempt.
func (m *Manager) AddAsset(ctx context.Context, req domain.AddRequest) (domain.Asset, error) {
	if err := req.Validate(); err != nil {
		return domain.Asset{}, err
	}

	info, err := os.Stat(req.SourcePath)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("%w: source %s: %v", domain.ErrImport, req.SourcePath, err)
	}

	kind := domain.KindFile
	if info.IsDir() {
		kind = domain.KindDirectory
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = filepath.Base(req.SourcePath)
	}

	category, err := m.resolveCategory(req.Category)
	if err != nil {
		return domain.Asset{}, err
	}

	id := domain.NewID()
	destRel := m.reserveLibraryPath(name, id, kind, req.SourcePath)
	destAbs := m.lib.Abs(destRel)

	if err := os.MkdirAll(filepath.Dir(destAbs), 0755); err != nil {
		return domain.Asset{}, fmt.Errorf("%w: %v", domain.ErrImport, err)
	}

	if kind == domain.KindDirectory {
		err = copyTree(ctx, req.SourcePath, destAbs)
	} else {
		err = copyFile(ctx, req.SourcePath, destAbs)
	}
	if err != nil {
		// A cancelled or failed copy must not leave a half-imported
		// tree behind.
		os.RemoveAll(destAbs)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Asset{}, ctxErr
		}
		return domain.Asset{}, fmt.Errorf("%w: copying %s: %v", domain.ErrImport, req.SourcePath, err)
	}

	size, err := pathSize(destAbs)
	if err != nil {
		os.RemoveAll(destAbs)
		return domain.Asset{}, fmt.Errorf("%w: sizing content: %v", domain.ErrImport, err)
	}

	// Thumbnailing is best-effort: a decode failure costs the preview,
	// never the import.
	thumbRel := ""
	if m.autoThumbnail {
		if p, err := m.thumbs.Generate(ctx, destAbs, kind, id); err == nil {
			thumbRel = p
		}
	}

	now := time.Now()
	asset := domain.Asset{
		ID:            id,
		Name:          name,
		Category:      category,
		Kind:          kind,
		LibraryPath:   destRel,
		ThumbnailPath: thumbRel,
		Description:   req.Description,
		Tags:          domain.NormalizeTags(req.Tags),
		SizeBytes:     size,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := m.reg.Insert(asset); err != nil {
		os.RemoveAll(destAbs)
		m.thumbs.Remove(id)
		return domain.Asset{}, err
	}

	if err := m.persist(); err != nil {
		m.reg.Remove(id)
		os.RemoveAll(destAbs)
		m.thumbs.Remove(id)
		return domain.Asset{}, err
	}

	return asset, nil
}

// reserveLibraryPath picks a collision-free slot under assets/. On a name
// collision the id's first segment disambiguates, which also guarantees the
// path can never clash with a live record.
func (m *Manager) reserveLibraryPath(name, id string, kind domain.Kind, sourcePath string) string {
	base := domain.SanitizeFilename(name)
	ext := ""
	if kind == domain.KindFile {
		ext = strings.ToLower(filepath.Ext(sourcePath))
		base = strings.TrimSuffix(base, filepath.Ext(base))
		if base == "" {
			base = "asset"
		}
	}

	rel := library.AssetsDirName + "/" + base + ext
	if !m.taken(rel) {
		return rel
	}

	suffix := id
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return library.AssetsDirName + "/" + base + "-" + suffix + ext
}

func (m *Manager) taken(rel string) bool {
	if m.reg.HasLibraryPath(rel) {
		return true
	}
	_, err := os.Stat(m.lib.Abs(rel))
	return err == nil
}

// RemoveAsset deletes the record and, once the deletion is durable, the
// content and cached thumbnail. Content cleanup after a successful persist
// is best-effort: a leftover file is preferable to a record pointing at
// deleted content.
func (m *Manager) RemoveAsset(id string) error {
	asset, err := m.reg.GetByID(id)
	if err != nil {
		return err
	}

	snapshot := m.reg.All()
	m.reg.Remove(id)

	if err := m.persist(); err != nil {
		m.reg.Rebuild(snapshot)
		return err
	}

	os.RemoveAll(m.lib.Abs(asset.LibraryPath))
	m.thumbs.Remove(id)
	return nil
}

// UpdateAsset applies the provided fields and bumps updated_at. Fields not
// present in the patch are untouched.
func (m *Manager) UpdateAsset(id string, patch domain.UpdatePatch) (domain.Asset, error) {
	if err := patch.Validate(); err != nil {
		return domain.Asset{}, err
	}

	asset, err := m.reg.GetByID(id)
	if err != nil {
		return domain.Asset{}, err
	}

	if patch.IsZero() {
		return asset, nil
	}

	if patch.Name != nil {
		asset.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		if !m.hasCategory(*patch.Category) {
			return domain.Asset{}, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *patch.Category)
		}
		asset.Category = *patch.Category
	}
	if patch.Description != nil {
		asset.Description = *patch.Description
	}
	if patch.Tags != nil {
		asset.Tags = domain.NormalizeTags(*patch.Tags)
	}
	asset.UpdatedAt = time.Now()

	snapshot := m.reg.All()
	if err := m.reg.Replace(id, asset); err != nil {
		return domain.Asset{}, err
	}
	if err := m.persist(); err != nil {
		m.reg.Rebuild(snapshot)
		return domain.Asset{}, err
	}

	return asset, nil
}

// GetAsset returns a single record by id.
func (m *Manager) GetAsset(id string) (domain.Asset, error) {
	return m.reg.GetByID(id)
}

// AllAssets returns every live record in insertion order.
func (m *Manager) AllAssets() []domain.Asset {
	return m.reg.All()
}

// SearchAssets delegates to the registry's keyword index.
func (m *Manager) SearchAssets(keyword string) []domain.Asset {
	return m.reg.Search(keyword)
}

// FilterByCategory delegates to the registry's category index.
func (m *Manager) FilterByCategory(category string) []domain.Asset {
	return m.reg.FilterByCategory(category)
}

// Categories returns the category list, default first.
func (m *Manager) Categories() []string {
	return append([]string(nil), m.categories...)
}

// DefaultCategory returns the reserved category name.
func (m *Manager) DefaultCategory() string {
	return m.defaultCategory
}

// AddCategory creates a new category. Names are case-sensitive.
func (m *Manager) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name cannot be empty", domain.ErrValidation)
	}
	if m.hasCategory(name) {
		return fmt.Errorf("%w: category %q", domain.ErrDuplicate, name)
	}

	m.categories = append(m.categories, name)
	if err := m.persist(); err != nil {
		m.categories = m.categories[:len(m.categories)-1]
		return err
	}
	return nil
}

// RemoveCategory deletes a category. Its members are reassigned to the
// default category first; assets are never deleted by category removal.
// The default category itself is protected.
func (m *Manager) RemoveCategory(name string) error {
	if name == m.defaultCategory {
		return fmt.Errorf("%w: %q is the default category", domain.ErrProtectedCategory, name)
	}
	if !m.hasCategory(name) {
		return fmt.Errorf("%w: category %q", domain.ErrNotFound, name)
	}

	snapshot := m.reg.All()
	prevCategories := append([]string(nil), m.categories...)

	now := time.Now()
	for _, member := range m.reg.FilterByCategory(name) {
		member.Category = m.defaultCategory
		member.UpdatedAt = now
		if err := m.reg.Replace(member.ID, member); err != nil {
			m.reg.Rebuild(snapshot)
			return err
		}
	}

	kept := m.categories[:0:0]
	for _, c := range m.categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	m.categories = kept

	if err := m.persist(); err != nil {
		m.reg.Rebuild(snapshot)
		m.categories = prevCategories
		return err
	}
	return nil
}

// SetLibraryPath re-points the catalogue at a new root and loads whatever
// store exists there. The call is rejected while assets are recorded under
// the current root: moving content is an explicit migration, not a config
// change, and silently orphaning a library is worse than refusing.
func (m *Manager) SetLibraryPath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: library path cannot be empty", domain.ErrValidation)
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: library path must be absolute", domain.ErrValidation)
	}
	if m.reg.Len() > 0 {
		return fmt.Errorf("%w: library is not empty; remove its assets before changing the root", domain.ErrValidation)
	}

	m.lib.SetRoot(path)
	if err := m.lib.Initialize(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return m.Reload()
}

// LibraryPath returns the configured library root.
func (m *Manager) LibraryPath() string {
	return m.lib.Root()
}

// Reload rebuilds the registry from the store. Used after external changes
// to the store document; the index is derived state and always rebuildable.
// A corrupt store leaves an empty catalogue and reports the condition.
func (m *Manager) Reload() error {
	assets, categories, err := m.store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrCorruptStore) {
			m.reg.Rebuild(nil)
			m.categories = m.withDefault(nil)
		}
		return err
	}

	m.reg.Rebuild(assets)
	m.categories = m.withDefault(categories)
	return nil
}

// ReimportAsset recomputes the stored size from the current content and
// regenerates the thumbnail. Sizes are otherwise frozen at import time.
func (m *Manager) ReimportAsset(ctx context.Context, id string) (domain.Asset, error) {
	asset, err := m.reg.GetByID(id)
	if err != nil {
		return domain.Asset{}, err
	}

	abs := m.lib.Abs(asset.LibraryPath)
	size, err := pathSize(abs)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("%w: %v", domain.ErrImport, err)
	}
	asset.SizeBytes = size

	if m.autoThumbnail {
		if p, err := m.thumbs.Generate(ctx, abs, asset.Kind, id); err == nil {
			asset.ThumbnailPath = p
		}
	}
	asset.UpdatedAt = time.Now()

	snapshot := m.reg.All()
	if err := m.reg.Replace(id, asset); err != nil {
		return domain.Asset{}, err
	}
	if err := m.persist(); err != nil {
		m.reg.Rebuild(snapshot)
		return domain.Asset{}, err
	}
	return asset, nil
}

// RegenerateThumbnails rebuilds every cached preview. Returns the number of
// assets that got a thumbnail. Idempotent cache paths make this safe to run
// at any time.
func (m *Manager) RegenerateThumbnails(ctx context.Context) (int, error) {
	assets := m.reg.All()
	generated := 0

	for i := range assets {
		if err := ctx.Err(); err != nil {
			return generated, err
		}

		a := &assets[i]
		p, err := m.thumbs.Generate(ctx, m.lib.Abs(a.LibraryPath), a.Kind, a.ID)
		if err != nil {
			a.ThumbnailPath = ""
			continue
		}
		a.ThumbnailPath = p
		generated++
	}

	snapshot := m.reg.All()
	m.reg.Rebuild(assets)
	if err := m.persist(); err != nil {
		m.reg.Rebuild(snapshot)
		return generated, err
	}
	return generated, nil
}

func (m *Manager) resolveCategory(requested string) (string, error) {
	if requested == "" {
		return m.defaultCategory, nil
	}
	if !m.hasCategory(requested) {
		return "", fmt.Errorf("%w: unknown category %q", domain.ErrValidation, requested)
	}
	return requested, nil
}
