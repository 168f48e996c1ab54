/*
Package alias defines a single entry of the command vocabulary.
*/
package alias

import "github.com/AntonioJCosta/rolodex/internal/core/domain/command"

/*
Alias maps a command word to the action it triggers. Built-in words map
to themselves; learned aliases map a new word to an existing action.
*/
type Alias struct {
	Name   string         `yaml:"alias"`
	Action command.Action `yaml:"action"`
}

// IsBuiltin reports whether the alias is an identity mapping.
func (a Alias) IsBuiltin() bool {
	return a.Name == string(a.Action)
}
