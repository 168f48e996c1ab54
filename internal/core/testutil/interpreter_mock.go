package testutil

import (
	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
)

// MockInterpreter is a mock implementation of ports.Interpreter.
type MockInterpreter struct {
	ParseFunc          func(line string) (command.Result, error)
	BindFunc           func(candidate, pending string) command.Result
	RegisterFunc       func(word string, action command.Action) command.Result
	ListRegisteredFunc func() []alias.Alias
	UsageFunc          func(action command.Action) string
	HandleFunc         func(action command.Action, parser ports.ArgumentParser)
	// BindCalls keeps track of the (candidate, pending) pairs passed to Bind.
	BindCalls [][2]string
}

func (m *MockInterpreter) Parse(line string) (command.Result, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(line)
	}
	return command.UnknownCommand{Word: line}, nil
}

func (m *MockInterpreter) Bind(candidate, pending string) command.Result {
	m.BindCalls = append(m.BindCalls, [2]string{candidate, pending})
	if m.BindFunc != nil {
		return m.BindFunc(candidate, pending)
	}
	return command.UnknownCommand{Word: candidate}
}

func (m *MockInterpreter) Register(word string, action command.Action) command.Result {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(word, action)
	}
	return command.UnknownCommand{Word: string(action)}
}

func (m *MockInterpreter) ListRegistered() []alias.Alias {
	if m.ListRegisteredFunc != nil {
		return m.ListRegisteredFunc()
	}
	return nil
}

func (m *MockInterpreter) Usage(action command.Action) string {
	if m.UsageFunc != nil {
		return m.UsageFunc(action)
	}
	return ""
}

func (m *MockInterpreter) Handle(action command.Action, parser ports.ArgumentParser) {
	if m.HandleFunc != nil {
		m.HandleFunc(action, parser)
	}
}

// Ensure MockInterpreter satisfies the Interpreter interface.
var _ ports.Interpreter = (*MockInterpreter)(nil)
