package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AntonioJCosta/rolodex/internal/adapters/argparse"
	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/handlers/ui"
)

// describeParsed renders a parsed command on a single line.
func describeParsed(p command.ParsedCommand) string {
	var b strings.Builder
	b.WriteString(ui.ActionColor(string(p.Action)))
	if p.Word != string(p.Action) {
		b.WriteString(ui.DetailColor(fmt.Sprintf(" (via '%s')", p.Word)))
	}

	in, ok := p.Input.(argparse.Input)
	if !ok {
		if args := strings.TrimSpace(p.Args); args != "" {
			b.WriteString(" " + ui.FieldColor(args))
		}
		return b.String()
	}

	if in.Index > 0 {
		fmt.Fprintf(&b, " #%d", in.Index)
	} else if len(in.Keywords) > 0 {
		b.WriteString(" " + ui.FieldColor(strings.Join(in.Keywords, ", ")))
	} else if in.Preamble != "" {
		b.WriteString(" " + ui.FieldColor(in.Preamble))
	}

	prefixes := make([]string, 0, len(in.Fields))
	for prefix := range in.Fields {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		for _, value := range in.Fields[prefix] {
			fmt.Fprintf(&b, " %s%s", ui.DetailColor(prefix), ui.FieldColor(value))
		}
	}
	return b.String()
}

// printResult writes the outcome of a parse or bind.
func printResult(w io.Writer, res command.Result) {
	switch r := res.(type) {
	case command.ParsedCommand:
		fmt.Fprintln(w, describeParsed(r))
	case command.NewCommand:
		fmt.Fprintln(w, ui.SuccessColor(fmt.Sprintf("'%s' now runs '%s'.", r.Word, r.Action)))
	case command.UnknownCommand:
		fmt.Fprintln(w, ui.WarningColor(fmt.Sprintf("Unknown command '%s'.", r.Word)))
	}
}
