package ports

import "github.com/AntonioJCosta/rolodex/internal/core/domain/command"

/*
ArgumentParser turns the argument tail of a command line into the input
of one specific action. This is a driven port: the interpreter delegates
to it and never inspects argument values itself.
*/
type ArgumentParser interface {
	// Parse validates args and returns the structured input. Malformed
	// input yields an error matching command.ErrInvalidFormat.
	Parse(args string) (any, error)

	// Usage returns the human-readable usage text of the action.
	Usage() string
}

// ActionCatalog supplies the built-in vocabulary and its argument parsers.
type ActionCatalog interface {
	Builtins() []command.Action
	Parsers() map[command.Action]ArgumentParser
}
