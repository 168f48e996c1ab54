package cli

import (
	"fmt"

	"github.com/AntonioJCosta/rolodex/internal/config"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Runtime holds the services the commands operate on.
type Runtime struct {
	Interpreter ports.Interpreter
	Aliases     ports.AliasManagementService
	Logger      *logrus.Logger
	UseFZF      bool
}

// runtimeFunc returns the Runtime built by the root command's pre-run hook.
type runtimeFunc func() *Runtime

// Bootstrap builds a Runtime once flags have been applied to the configuration.
type Bootstrap func(cfg config.Config) (*Runtime, error)

var rootCmd *cobra.Command

func NewRootCommand(version string, cfg config.Config, bootstrap Bootstrap) *cobra.Command {
	var rt *Runtime
	current := func() *Runtime { return rt }

	rootCmd = &cobra.Command{
		Use:   "rolodex",
		Short: "rolodex is an address book command interpreter that learns new command words.",
		Long: `rolodex reads address book commands such as 'add', 'find' and 'delete'.
Type a word it does not know and it offers to remember it as a shortcut
for an existing command.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applyFlagOverrides(cmd, &cfg)
			built, err := bootstrap(cfg)
			if err != nil {
				return fmt.Errorf("could not start rolodex: %w", err)
			}
			if built == nil || built.Interpreter == nil || built.Aliases == nil {
				return fmt.Errorf("services not initialized for command %s", cmd.Name())
			}
			rt = built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplCmd(cmd, current())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
	flags.String("catalog", cfg.CatalogFile, "Path to a YAML action catalog replacing the built-in one.")
	flags.Bool("no-persist", !cfg.PersistAliases, "Do not load or save learned command words.")
	flags.Bool("no-fzf", !cfg.UseFZF, "Type command words instead of picking them with fzf.")

	rootCmd.AddCommand(NewReplCommand(current))
	rootCmd.AddCommand(NewParseCommand(current))
	rootCmd.AddCommand(NewWordsCommand(current))
	rootCmd.AddCommand(NewBindCommand(current))
	rootCmd.AddCommand(NewForgetCommand(current))

	return rootCmd
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("catalog") {
		cfg.CatalogFile, _ = flags.GetString("catalog")
	}
	if flags.Changed("no-persist") {
		noPersist, _ := flags.GetBool("no-persist")
		cfg.PersistAliases = !noPersist
	}
	if flags.Changed("no-fzf") {
		noFZF, _ := flags.GetBool("no-fzf")
		cfg.UseFZF = !noFZF
	}
}
