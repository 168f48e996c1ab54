package ports

import (
	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
)

// Interpreter defines the contract for turning user input into commands.
type Interpreter interface {
	// Parse interprets a raw line. An unrecognized command word is
	// reported as command.UnknownCommand with a nil error.
	Parse(line string) (command.Result, error)

	// Bind maps pending onto the action candidate resolves to. It returns
	// command.NewCommand on success and command.UnknownCommand when
	// candidate is not a recognized word.
	Bind(candidate, pending string) command.Result

	// Register maps word straight onto action. It returns command.NewCommand
	// when action has a handler and command.UnknownCommand otherwise.
	Register(word string, action command.Action) command.Result

	// ListRegistered returns the current vocabulary ordered by word.
	ListRegistered() []alias.Alias

	// Usage returns the usage text for action, or "" if it has no handler.
	Usage(action command.Action) string

	// Handle installs or replaces the argument parser for action.
	Handle(action command.Action, parser ArgumentParser)
}
