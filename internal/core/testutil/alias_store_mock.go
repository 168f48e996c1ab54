package testutil

import (
	"errors"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
)

// MockAliasStore is a mock implementation of ports.AliasStore for testing.
type MockAliasStore struct {
	GetSavedAliasesFunc func() ([]alias.Alias, error)
	SaveAliasFunc       func(newAlias alias.Alias) (bool, error)
	ClearAliasesFunc    func() error
}

func (m *MockAliasStore) GetSavedAliases() ([]alias.Alias, error) {
	if m.GetSavedAliasesFunc != nil {
		return m.GetSavedAliasesFunc()
	}
	return nil, errors.New("MockAliasStore: GetSavedAliasesFunc not implemented")
}

func (m *MockAliasStore) SaveAlias(newAlias alias.Alias) (bool, error) {
	if m.SaveAliasFunc != nil {
		return m.SaveAliasFunc(newAlias)
	}
	return false, errors.New("MockAliasStore: SaveAliasFunc not implemented")
}

func (m *MockAliasStore) ClearAliases() error {
	if m.ClearAliasesFunc != nil {
		return m.ClearAliasesFunc()
	}
	return errors.New("MockAliasStore: ClearAliasesFunc not implemented")
}

var _ ports.AliasStore = (*MockAliasStore)(nil)
