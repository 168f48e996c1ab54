package cli

import (
	"fmt"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the 'parse' subcommand.
func NewParseCommand(current runtimeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "parse LINE",
		Short: "Interpret a single command line and show the result.",
		Long: `Interprets LINE exactly as the interactive prompt would and prints the
resulting command. Quote LINE to keep its spacing intact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseCmd(cmd, args, current())
		},
	}
}

func runParseCmd(cmd *cobra.Command, args []string, rt *Runtime) error {
	out := cmd.OutOrStdout()

	res, err := rt.Interpreter.Parse(args[0])
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", args[0], err)
	}

	printResult(out, res)
	if unknown, ok := res.(command.UnknownCommand); ok {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Teach it with: rolodex bind <existing-word> %s", unknown.Word)))
	}
	return nil
}
