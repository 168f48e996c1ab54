package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/rolodex/internal/adapters/argparse"
	"github.com/AntonioJCosta/rolodex/internal/config"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
	"github.com/AntonioJCosta/rolodex/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/rolodex/internal/core/services/interpreter"
	"github.com/AntonioJCosta/rolodex/internal/handlers/cli"
	"github.com/AntonioJCosta/rolodex/internal/logging"
	"github.com/AntonioJCosta/rolodex/internal/repositories/aliasstore"
	"github.com/AntonioJCosta/rolodex/internal/repositories/commandregistry"
)

// Version is set at build time
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cli.NewRootCommand(Version, cfg, bootstrap)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap(cfg config.Config) (*cli.Runtime, error) {
	logger := logging.New(cfg.LogLevel, os.Stderr)

	catalog, err := argparse.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	registry := commandregistry.New(catalog.Builtins())
	interp := interpreter.NewService(registry, catalog.Parsers())

	// Learned words only live for the process when persistence is off.
	var store ports.AliasStore = aliasstore.NewMemoryStore()
	if cfg.PersistAliases {
		store, err = aliasstore.NewYAMLStore(cfg.AliasFile)
		if err != nil {
			return nil, err
		}
	}
	aliases := aliasmanagement.NewService(interp, store)

	restored, err := aliases.Restore()
	if err != nil {
		logger.WithError(err).Warn("continuing without saved command words")
	}
	for _, skipped := range restored.Skipped {
		logger.WithField("word", skipped.Name).WithField("action", skipped.Action).
			Warn("saved command word points at an unknown command, skipping")
	}
	logger.WithField("count", len(restored.Restored)).Debug("saved command words restored")

	return &cli.Runtime{
		Interpreter: interp,
		Aliases:     aliases,
		Logger:      logger,
		UseFZF:      cfg.UseFZF,
	}, nil
}
