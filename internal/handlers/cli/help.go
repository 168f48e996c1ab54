package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/core/ports"
	"github.com/AntonioJCosta/rolodex/internal/handlers/ui"
)

// wordsByAction groups the registered words under the action they run.
func wordsByAction(interp ports.Interpreter) (map[command.Action][]string, []command.Action) {
	grouped := make(map[command.Action][]string)
	for _, a := range interp.ListRegistered() {
		grouped[a.Action] = append(grouped[a.Action], a.Name)
	}
	actions := make([]command.Action, 0, len(grouped))
	for action := range grouped {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return grouped, actions
}

func knownWords(interp ports.Interpreter) []string {
	registered := interp.ListRegistered()
	words := make([]string, 0, len(registered))
	for _, a := range registered {
		words = append(words, a.Name)
	}
	return words
}

func printHelp(w io.Writer, interp ports.Interpreter) {
	grouped, actions := wordsByAction(interp)

	fmt.Fprintln(w, ui.HeaderColor("Commands:"))
	for _, action := range actions {
		others := make([]string, 0, len(grouped[action]))
		for _, word := range grouped[action] {
			if word != string(action) {
				others = append(others, word)
			}
		}

		line := "  " + ui.ActionColor(string(action))
		if len(others) > 0 {
			line += ui.DetailColor(" (also: ") + ui.WordColor(strings.Join(others, ", ")) + ui.DetailColor(")")
		}
		fmt.Fprintln(w, line)
		if usage := interp.Usage(action); usage != "" {
			for _, u := range strings.Split(usage, "\n") {
				fmt.Fprintln(w, "    "+ui.DetailColor(u))
			}
		}
	}
}
