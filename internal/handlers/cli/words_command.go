package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/alias"
	"github.com/AntonioJCosta/rolodex/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewWordsCommand creates the 'words' subcommand.
func NewWordsCommand(current runtimeFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the command words rolodex recognizes.",
		Long: `Displays every recognized command word and the command it runs.
With --saved only the learned words stored on disk are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordsCmd(cmd, current())
		},
	}
	cmd.Flags().Bool("saved", false, "Show only learned command words that are saved.")
	return cmd
}

// runWordsCmd contains the core logic for the 'words' command.
func runWordsCmd(cmd *cobra.Command, rt *Runtime) error {
	savedOnly, _ := cmd.Flags().GetBool("saved")
	out := cmd.OutOrStdout()

	var entries []alias.Alias
	if savedOnly {
		saved, err := rt.Aliases.ListAliases()
		if err != nil {
			return fmt.Errorf("could not list saved command words: %w", err)
		}
		entries = saved
		if len(entries) == 0 {
			fmt.Fprintln(out, ui.InfoColor("No learned command words are saved."))
			return nil
		}
		fmt.Fprintln(out, ui.HeaderColor("Saved command words:"))
	} else {
		entries = rt.Interpreter.ListRegistered()
		fmt.Fprintln(out, ui.HeaderColor("Recognized command words:"))
	}

	renderWordTable(out, entries)
	return nil
}

func renderWordTable(out io.Writer, entries []alias.Alias) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Word", "Runs", "Kind"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range entries {
		kind := "learned"
		if a.IsBuiltin() {
			kind = "built-in"
		}
		table.Append([]string{a.Name, string(a.Action), kind})
	}
	table.Render()
}
