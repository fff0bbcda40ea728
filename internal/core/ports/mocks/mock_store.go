package mocks

import (
	"github.com/cura-cli/cura/internal/core/domain"
)

// MockStore is an in-memory implementation of the Store port for testing
type MockStore struct {
	Assets     []domain.Asset
	Categories []string

	LoadErr error
	SaveErr error

	SaveCalls int
}

// NewMockStore creates a new empty mock store
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Load returns the canned collection or the injected error
func (m *MockStore) Load() ([]domain.Asset, []string, error) {
	if m.LoadErr != nil {
		return nil, nil, m.LoadErr
	}
	return cloneAssets(m.Assets), append([]string(nil), m.Categories...), nil
}

// Save records the snapshot or fails with the injected error
func (m *MockStore) Save(assets []domain.Asset, categories []string) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Assets = cloneAssets(assets)
	m.Categories = append([]string(nil), categories...)
	return nil
}

func cloneAssets(assets []domain.Asset) []domain.Asset {
	out := make([]domain.Asset, 0, len(assets))
	for i := range assets {
		out = append(out, assets[i].Clone())
	}
	return out
}
