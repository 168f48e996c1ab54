package interpreter

import (
	"fmt"
	"sync"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
)

type service struct {
	registry ports.CommandRegistry

	mu      sync.RWMutex
	parsers map[command.Action]ports.ArgumentParser
}

// NewService creates a new interpreter over registry.
// It panics if registry is nil. parsers may be nil; handlers can be added with Handle.
func NewService(registry ports.CommandRegistry, parsers map[command.Action]ports.ArgumentParser) ports.Interpreter {
	if registry == nil {
		panic("registry cannot be nil")
	}
	table := make(map[command.Action]ports.ArgumentParser, len(parsers))
	for action, parser := range parsers {
		if parser != nil {
			table[action] = parser
		}
	}
	return &service{registry: registry, parsers: table}
}

// Parse implements the ports.Interpreter interface.
func (s *service) Parse(line string) (command.Result, error) {
	word, remainder, err := Tokenize(line)
	if err != nil {
		return nil, err
	}

	action, ok := s.registry.Resolve(word)
	if !ok {
		return command.UnknownCommand{Word: word}, nil
	}

	parser := s.parser(action)
	if parser == nil {
		return nil, fmt.Errorf("%w: word %q is bound to action %q which has no handler", command.ErrInternalInconsistency, word, action)
	}

	input, err := parser.Parse(remainder)
	if err != nil {
		return nil, err
	}

	if action == command.ActionClear {
		s.registry.Seed()
	}

	return command.ParsedCommand{
		Word:   word,
		Action: action,
		Args:   remainder,
		Input:  input,
	}, nil
}

// Bind implements the ports.Interpreter interface.
func (s *service) Bind(candidate, pending string) command.Result {
	action, ok := s.registry.Resolve(candidate)
	if !ok {
		return command.UnknownCommand{Word: candidate}
	}
	s.registry.Register(pending, action)
	return command.NewCommand{Action: action, Word: pending}
}

// Register implements the ports.Interpreter interface.
func (s *service) Register(word string, action command.Action) command.Result {
	if s.parser(action) == nil {
		return command.UnknownCommand{Word: string(action)}
	}
	s.registry.Register(word, action)
	return command.NewCommand{Action: action, Word: word}
}

// ListRegistered implements the ports.Interpreter interface.
func (s *service) ListRegistered() []alias.Alias {
	return s.registry.Snapshot()
}

// Usage implements the ports.Interpreter interface.
func (s *service) Usage(action command.Action) string {
	if parser := s.parser(action); parser != nil {
		return parser.Usage()
	}
	return ""
}

// Handle implements the ports.Interpreter interface.
func (s *service) Handle(action command.Action, parser ports.ArgumentParser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if parser == nil {
		delete(s.parsers, action)
		return
	}
	s.parsers[action] = parser
}

func (s *service) parser(action command.Action) ports.ArgumentParser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsers[action]
}
