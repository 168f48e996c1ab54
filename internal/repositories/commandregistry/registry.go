package commandregistry

import (
	"sort"
	"sync"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
)

// Registry is an in-memory word to action table. The zero value is not usable; call New.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]command.Action
	builtins []command.Action
}

// New creates a registry seeded with an identity mapping for each builtin.
func New(builtins []command.Action) ports.CommandRegistry {
	r := &Registry{
		builtins: append([]command.Action(nil), builtins...),
	}
	r.Seed()
	return r
}

// Seed implements the ports.CommandRegistry interface.
func (r *Registry) Seed() {
	entries := make(map[string]command.Action, len(r.builtins))
	for _, action := range r.builtins {
		entries[string(action)] = action
	}

	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()
}

// Register implements the ports.CommandRegistry interface.
func (r *Registry) Register(word string, action command.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[word] = action
}

// Resolve implements the ports.CommandRegistry interface.
func (r *Registry) Resolve(word string) (command.Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	action, ok := r.entries[word]
	return action, ok
}

// Snapshot implements the ports.CommandRegistry interface.
func (r *Registry) Snapshot() []alias.Alias {
	r.mu.RLock()
	out := make([]alias.Alias, 0, len(r.entries))
	for word, action := range r.entries {
		out = append(out, alias.Alias{Name: word, Action: action})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
