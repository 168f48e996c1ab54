package ports

import (
	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
)

/*
CommandRegistry defines the contract for the mutable table of recognized
command words. Implementations must be safe for concurrent use: lookups
may run in parallel, mutations exclude everything else.
*/
type CommandRegistry interface {
	// Seed drops every entry, learned aliases included, and re-inserts
	// the built-in identity mappings.
	Seed()

	// Register maps word to action, overwriting any previous mapping.
	Register(word string, action command.Action)

	// Resolve returns the action bound to word.
	Resolve(word string) (command.Action, bool)

	// Snapshot returns every entry ordered by word.
	Snapshot() []alias.Alias
}
