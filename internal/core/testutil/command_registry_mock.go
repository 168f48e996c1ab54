package testutil

import (
	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
)

// MockCommandRegistry is a map-backed ports.CommandRegistry that records Seed calls.
// Unlike the real registry it lets tests plant entries pointing at any action.
type MockCommandRegistry struct {
	Entries   map[string]command.Action
	Builtins  []command.Action
	SeedCalls int
}

// NewMockCommandRegistry creates a mock seeded with builtins.
func NewMockCommandRegistry(builtins ...command.Action) *MockCommandRegistry {
	m := &MockCommandRegistry{Builtins: builtins}
	m.Seed()
	m.SeedCalls = 0
	return m
}

func (m *MockCommandRegistry) Seed() {
	m.SeedCalls++
	m.Entries = make(map[string]command.Action, len(m.Builtins))
	for _, action := range m.Builtins {
		m.Entries[string(action)] = action
	}
}

func (m *MockCommandRegistry) Register(word string, action command.Action) {
	m.Entries[word] = action
}

func (m *MockCommandRegistry) Resolve(word string) (command.Action, bool) {
	action, ok := m.Entries[word]
	return action, ok
}

// Snapshot returns entries in unspecified order.
func (m *MockCommandRegistry) Snapshot() []alias.Alias {
	out := make([]alias.Alias, 0, len(m.Entries))
	for word, action := range m.Entries {
		out = append(out, alias.Alias{Name: word, Action: action})
	}
	return out
}

var _ ports.CommandRegistry = (*MockCommandRegistry)(nil)
