package ports

import (
	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
)

// RestoreResult reports what happened to each stored alias during a restore.
type RestoreResult struct {
	Restored []alias.Alias
	Skipped  []alias.Alias // Stored aliases whose action is no longer recognized
}

// AliasManagementService defines the contract for learning and persisting aliases.
type AliasManagementService interface {
	// Restore binds every stored alias into the interpreter.
	Restore() (RestoreResult, error)

	// Learn binds pending to the action of candidate and, on success,
	// persists the new alias. The bind result is returned either way.
	Learn(candidate, pending string) (command.Result, error)

	// Forget removes every persisted alias.
	Forget() error

	// ListAliases returns the persisted aliases.
	ListAliases() ([]alias.Alias, error)
}
