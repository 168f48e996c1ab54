package cli

import (
	"fmt"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewBindCommand creates the 'bind' subcommand.
func NewBindCommand(current runtimeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "bind EXISTING NEW",
		Short: "Teach rolodex a new command word.",
		Long: `Makes NEW run the same command as the already recognized word EXISTING.
The new word is saved unless --no-persist is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBindCmd(cmd, args, current())
		},
	}
}

func runBindCmd(cmd *cobra.Command, args []string, rt *Runtime) error {
	existing, newWord := args[0], args[1]

	res, err := rt.Aliases.Learn(existing, newWord)
	if err != nil {
		return fmt.Errorf("could not save '%s': %w", newWord, err)
	}
	if unknown, ok := res.(command.UnknownCommand); ok {
		return fmt.Errorf("'%s' is not a recognized command word", unknown.Word)
	}

	printResult(cmd.OutOrStdout(), res)
	rt.Logger.WithField("word", newWord).Info("command word learned")
	return nil
}

// NewForgetCommand creates the 'forget' subcommand.
func NewForgetCommand(current runtimeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Delete every saved command word.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := current()
			if err := rt.Aliases.Forget(); err != nil {
				return fmt.Errorf("could not forget command words: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("Saved command words deleted."))
			return nil
		},
	}
}
