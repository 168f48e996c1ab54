package aliasstore

import (
	"sync"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
)

// MemoryStore keeps aliases for the lifetime of the process only.
type MemoryStore struct {
	mu      sync.Mutex
	aliases []alias.Alias
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetSavedAliases implements the ports.AliasStore interface.
func (m *MemoryStore) GetSavedAliases() ([]alias.Alias, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]alias.Alias{}, m.aliases...), nil
}

// SaveAlias implements the ports.AliasStore interface.
func (m *MemoryStore) SaveAlias(newAlias alias.Alias) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.aliases {
		if existing.Name == newAlias.Name {
			if existing == newAlias {
				return false, nil
			}
			m.aliases[i] = newAlias
			return true, nil
		}
	}
	m.aliases = append(m.aliases, newAlias)
	return true, nil
}

// ClearAliases implements the ports.AliasStore interface.
func (m *MemoryStore) ClearAliases() error {
	m.mu.Lock()
	m.aliases = nil
	m.mu.Unlock()
	return nil
}

var _ ports.AliasStore = (*MemoryStore)(nil)
