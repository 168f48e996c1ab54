package argparse

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog implements ports.ActionCatalog from a list of grammars.
type Catalog struct {
	actions []command.Action
	parsers map[command.Action]ports.ArgumentParser
}

// LoadCatalog reads grammars from filePath, or from the embedded catalog
// when filePath is empty.
func LoadCatalog(filePath string) (*Catalog, error) {
	data := embeddedCatalog
	source := "embedded catalog"
	if filePath != "" {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read action catalog %s: %w", filePath, err)
		}
		data = raw
		source = filePath
	}

	grammars, err := decodeGrammars(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", source, err)
	}
	if len(grammars) == 0 {
		return nil, fmt.Errorf("%s declares no actions", source)
	}
	return NewCatalog(grammars)
}

// NewCatalog builds a catalog, rejecting invalid or duplicate grammars.
func NewCatalog(grammars []Grammar) (*Catalog, error) {
	c := &Catalog{parsers: make(map[command.Action]ports.ArgumentParser, len(grammars))}
	for _, g := range grammars {
		if _, dup := c.parsers[g.Action]; dup {
			return nil, fmt.Errorf("action %q declared twice", g.Action)
		}
		parser, err := NewParser(g)
		if err != nil {
			return nil, err
		}
		c.actions = append(c.actions, g.Action)
		c.parsers[g.Action] = parser
	}
	return c, nil
}

// Builtins implements the ports.ActionCatalog interface.
func (c *Catalog) Builtins() []command.Action {
	return append([]command.Action(nil), c.actions...)
}

// Parsers implements the ports.ActionCatalog interface.
func (c *Catalog) Parsers() map[command.Action]ports.ArgumentParser {
	out := make(map[command.Action]ports.ArgumentParser, len(c.parsers))
	for action, parser := range c.parsers {
		out[action] = parser
	}
	return out
}

func decodeGrammars(data []byte) ([]Grammar, error) {
	var grammars []Grammar
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&grammars); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return grammars, nil
}

var _ ports.ActionCatalog = (*Catalog)(nil)
