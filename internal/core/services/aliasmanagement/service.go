package aliasmanagement

import (
	"fmt"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
)

type service struct {
	interpreter ports.Interpreter
	store       ports.AliasStore
}

// NewService creates a new alias management service.
// It panics if interpreter or store is nil.
func NewService(in ports.Interpreter, st ports.AliasStore) ports.AliasManagementService {
	if in == nil {
		panic("interpreter cannot be nil")
	}
	if st == nil {
		panic("store cannot be nil")
	}
	return &service{interpreter: in, store: st}
}

// Restore registers every stored alias with the action it was saved with.
// An alias whose action has no handler is skipped.
func (s *service) Restore() (ports.RestoreResult, error) {
	var result ports.RestoreResult

	saved, err := s.store.GetSavedAliases()
	if err != nil {
		return result, fmt.Errorf("failed to load saved aliases: %w", err)
	}

	for _, a := range saved {
		switch s.interpreter.Register(a.Name, a.Action).(type) {
		case command.NewCommand:
			result.Restored = append(result.Restored, a)
		default:
			result.Skipped = append(result.Skipped, a)
		}
	}
	return result, nil
}

// Learn binds pending to candidate's action and persists the alias when the
// bind succeeds. A refused bind is not an error.
func (s *service) Learn(candidate, pending string) (command.Result, error) {
	res := s.interpreter.Bind(candidate, pending)

	bound, ok := res.(command.NewCommand)
	if !ok {
		return res, nil
	}

	if _, err := s.store.SaveAlias(alias.Alias{Name: bound.Word, Action: bound.Action}); err != nil {
		return res, fmt.Errorf("failed to save alias '%s': %w", bound.Word, err)
	}
	return res, nil
}

// Forget removes every persisted alias.
func (s *service) Forget() error {
	if err := s.store.ClearAliases(); err != nil {
		return fmt.Errorf("failed to forget saved aliases: %w", err)
	}
	return nil
}

// ListAliases returns the persisted aliases.
func (s *service) ListAliases() ([]alias.Alias, error) {
	aliases, err := s.store.GetSavedAliases()
	if err != nil {
		return nil, fmt.Errorf("failed to list saved aliases: %w", err)
	}
	return aliases, nil
}
