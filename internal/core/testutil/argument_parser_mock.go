package testutil

import "github.com/AntonioJCosta/rolodex/internal/core/ports"

// MockArgumentParser is a mock implementation of ports.ArgumentParser.
type MockArgumentParser struct {
	ParseFunc func(args string) (any, error)
	UsageText string
	// ParseCalls keeps track of the argument tails passed to Parse.
	ParseCalls []string
}

// Parse records args and calls ParseFunc if set, otherwise echoes args back.
func (m *MockArgumentParser) Parse(args string) (any, error) {
	m.ParseCalls = append(m.ParseCalls, args)
	if m.ParseFunc != nil {
		return m.ParseFunc(args)
	}
	return args, nil
}

// Usage returns UsageText.
func (m *MockArgumentParser) Usage() string {
	return m.UsageText
}

var _ ports.ArgumentParser = (*MockArgumentParser)(nil)
