package aliasstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLStore persists learned aliases as a YAML list in a single file.
type YAMLStore struct {
	mu       sync.Mutex
	filePath string
}

// NewYAMLStore creates a store backed by filePath. The file and its
// directory are created on the first save.
func NewYAMLStore(filePath string) (ports.AliasStore, error) {
	if filePath == "" {
		return nil, fmt.Errorf("alias file path cannot be empty")
	}
	return &YAMLStore{filePath: filePath}, nil
}

// GetSavedAliases implements the ports.AliasStore interface.
// A missing or empty file holds no aliases.
func (s *YAMLStore) GetSavedAliases() ([]alias.Alias, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// SaveAlias implements the ports.AliasStore interface.
func (s *YAMLStore) SaveAlias(newAlias alias.Alias) (bool, error) {
	if newAlias.Name == "" || newAlias.Action == "" {
		return false, fmt.Errorf("alias name and action cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	aliases, err := s.read()
	if err != nil {
		return false, err
	}

	replaced := false
	for i, existing := range aliases {
		if existing.Name != newAlias.Name {
			continue
		}
		if existing == newAlias {
			return false, nil
		}
		aliases[i] = newAlias
		replaced = true
		break
	}
	if !replaced {
		aliases = append(aliases, newAlias)
	}

	if err := s.write(aliases); err != nil {
		return false, err
	}
	return true, nil
}

// ClearAliases implements the ports.AliasStore interface.
func (s *YAMLStore) ClearAliases() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove alias file %s: %w", s.filePath, err)
	}
	return nil
}

func (s *YAMLStore) read() ([]alias.Alias, error) {
	aliases := []alias.Alias{}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return aliases, nil
		}
		return nil, fmt.Errorf("failed to read alias file %s: %w", s.filePath, err)
	}
	if len(data) == 0 {
		return aliases, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&aliases); err != nil {
		// A file holding only comments decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal aliases from %s: %w", s.filePath, err)
	}
	return aliases, nil
}

func (s *YAMLStore) write(aliases []alias.Alias) error {
	dirPath := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	data, err := yaml.Marshal(aliases)
	if err != nil {
		return fmt.Errorf("failed to marshal aliases: %w", err)
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write alias file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace alias file %s: %w", s.filePath, err)
	}
	return nil
}
