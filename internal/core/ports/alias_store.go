package ports

import "github.com/AntonioJCosta/rolodex/internal/core/domain/alias"

/*
AliasStore defines the interface for persisting learned aliases between
sessions. This is a driven port, typically implemented by a repository
adapter backed by a file.
*/
type AliasStore interface {
	/*
	   GetSavedAliases returns every stored alias. A store that has never
	   been written to returns an empty slice and no error.
	*/
	GetSavedAliases() ([]alias.Alias, error)

	/*
	   SaveAlias stores newAlias, replacing an entry with the same name.
	   It returns false when an identical entry was already stored.
	*/
	SaveAlias(newAlias alias.Alias) (bool, error)

	// ClearAliases removes every stored alias.
	ClearAliases() error
}
