package argparse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
)

// PreambleKind describes what may appear before the first prefix.
type PreambleKind string

const (
	PreambleNone     PreambleKind = "none"
	PreambleIndex    PreambleKind = "index"
	PreambleKeywords PreambleKind = "keywords"
	PreambleWord     PreambleKind = "word"
	PreambleText     PreambleKind = "text"
)

// Grammar declares the argument shape of one action.
type Grammar struct {
	Action          command.Action `yaml:"action"`
	Usage           string         `yaml:"usage"`
	IgnoreArguments bool           `yaml:"ignore_arguments"`
	Preamble        PreambleKind   `yaml:"preamble"`
	Required        []string       `yaml:"required"`
	Optional        []string       `yaml:"optional"`
	Repeatable      []string       `yaml:"repeatable"`
	RequireAny      bool           `yaml:"require_any"` // At least one optional or repeatable prefix
	Choices         []string       `yaml:"choices"`     // Allowed values for a word preamble
}

// Input is the structured result of parsing an argument tail against a Grammar.
type Input struct {
	Preamble string
	Index    int // 1-based, set for index preambles
	Keywords []string
	Fields   map[string][]string
}

// Value returns the last value given for prefix.
func (in Input) Value(prefix string) (string, bool) {
	values := in.Fields[prefix]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// Values returns every value given for prefix, in input order.
func (in Input) Values(prefix string) []string {
	return in.Fields[prefix]
}

func (g Grammar) prefixes() []string {
	all := make([]string, 0, len(g.Required)+len(g.Optional)+len(g.Repeatable))
	all = append(all, g.Required...)
	all = append(all, g.Optional...)
	all = append(all, g.Repeatable...)
	return all
}

func (g Grammar) validate() error {
	if g.Action == "" || strings.ContainsFunc(string(g.Action), unicode.IsSpace) {
		return fmt.Errorf("invalid action name %q", g.Action)
	}
	if g.IgnoreArguments {
		if len(g.prefixes()) > 0 || g.Preamble != "" {
			return fmt.Errorf("action %q ignores arguments but declares a grammar", g.Action)
		}
		return nil
	}
	switch g.Preamble {
	case "", PreambleNone, PreambleIndex, PreambleKeywords, PreambleWord, PreambleText:
	default:
		return fmt.Errorf("action %q has unknown preamble kind %q", g.Action, g.Preamble)
	}
	seen := make(map[string]bool)
	for _, p := range g.prefixes() {
		if !strings.HasSuffix(p, "/") || len(p) < 2 || strings.ContainsFunc(p, unicode.IsSpace) {
			return fmt.Errorf("action %q has invalid prefix %q", g.Action, p)
		}
		if seen[p] {
			return fmt.Errorf("action %q declares prefix %q twice", g.Action, p)
		}
		seen[p] = true
	}
	if g.RequireAny && len(g.Optional)+len(g.Repeatable) == 0 {
		return fmt.Errorf("action %q requires an optional field but declares none", g.Action)
	}
	return nil
}

// grammarParser adapts a Grammar to ports.ArgumentParser.
type grammarParser struct {
	grammar Grammar
}

// NewParser returns an ArgumentParser for g.
func NewParser(g Grammar) (ports.ArgumentParser, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	return &grammarParser{grammar: g}, nil
}

func (p *grammarParser) Usage() string {
	return p.grammar.Usage
}

func (p *grammarParser) Parse(args string) (any, error) {
	g := p.grammar
	if g.IgnoreArguments {
		return Input{}, nil
	}

	preamble, fields := tokenize(args, g.prefixes())
	in := Input{Preamble: preamble, Fields: fields}

	switch g.Preamble {
	case "", PreambleNone:
		if preamble != "" {
			return nil, command.InvalidFormat(g.Usage)
		}
	case PreambleIndex:
		index, err := strconv.Atoi(preamble)
		if err != nil || index <= 0 || strings.HasPrefix(preamble, "+") {
			return nil, command.InvalidFormatf(g.Usage, "Index is not a non-zero unsigned integer.")
		}
		in.Index = index
	case PreambleKeywords:
		in.Keywords = strings.Fields(preamble)
		if len(in.Keywords) == 0 {
			return nil, command.InvalidFormat(g.Usage)
		}
	case PreambleWord:
		if len(strings.Fields(preamble)) != 1 {
			return nil, command.InvalidFormat(g.Usage)
		}
		if len(g.Choices) > 0 && !slices.Contains(g.Choices, preamble) {
			return nil, command.InvalidFormatf(g.Usage, "%q is not one of %s.", preamble, strings.Join(g.Choices, ", "))
		}
	case PreambleText:
		if preamble == "" {
			return nil, command.InvalidFormat(g.Usage)
		}
	}

	for _, prefix := range g.Required {
		if _, ok := in.Value(prefix); !ok {
			return nil, command.InvalidFormat(g.Usage)
		}
	}

	if g.RequireAny && !hasAny(in, g.Optional, g.Repeatable) {
		return nil, command.InvalidFormatf(g.Usage, "At least one field to edit must be provided.")
	}

	return in, nil
}

func hasAny(in Input, groups ...[]string) bool {
	for _, group := range groups {
		for _, prefix := range group {
			if len(in.Fields[prefix]) > 0 {
				return true
			}
		}
	}
	return false
}
