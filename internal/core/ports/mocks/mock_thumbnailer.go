package mocks

import (
	"context"
	"fmt"

	"github.com/cura-cli/cura/internal/core/domain"
)

// MockThumbnailer is a canned implementation of the Thumbnailer port
type MockThumbnailer struct {
	GenerateErr error

	GenerateCalls int
	RemoveCalls   []string
}

// NewMockThumbnailer creates a new mock thumbnailer
func NewMockThumbnailer() *MockThumbnailer {
	return &MockThumbnailer{}
}

// Generate returns a deterministic path derived from the asset id
func (m *MockThumbnailer) Generate(ctx context.Context, sourcePath string, kind domain.Kind, assetID string) (string, error) {
	m.GenerateCalls++
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return fmt.Sprintf(".asset_db/thumbnails/%s.jpg", assetID), nil
}

// Remove records the removal request
func (m *MockThumbnailer) Remove(assetID string) error {
	m.RemoveCalls = append(m.RemoveCalls, assetID)
	return nil
}
