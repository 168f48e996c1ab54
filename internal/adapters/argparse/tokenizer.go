package argparse

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type prefixPosition struct {
	prefix string
	start  int
}

/*
tokenize splits an argument tail into its preamble and the values that
follow each recognized prefix.

A prefix only counts when it starts the tail or follows whitespace, so
"n/Bob" inside "a/Main n/Bob" is found but "xn/" is not. Text that looks
like an unrecognized prefix stays part of the surrounding value.
Preamble and values are trimmed.
*/
func tokenize(args string, prefixes []string) (string, map[string][]string) {
	// Longest first so "amt/" is not mistaken for a shorter prefix it contains.
	ordered := append([]string(nil), prefixes...)
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	var positions []prefixPosition
	for i, r := range args {
		if i > 0 {
			prev, _ := utf8.DecodeLastRuneInString(args[:i])
			if !unicode.IsSpace(prev) {
				continue
			}
		} else if unicode.IsSpace(r) {
			continue
		}
		for _, p := range ordered {
			if strings.HasPrefix(args[i:], p) {
				positions = append(positions, prefixPosition{prefix: p, start: i})
				break
			}
		}
	}

	values := make(map[string][]string)
	if len(positions) == 0 {
		return strings.TrimSpace(args), values
	}

	preamble := strings.TrimSpace(args[:positions[0].start])
	for idx, pos := range positions {
		end := len(args)
		if idx+1 < len(positions) {
			end = positions[idx+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		values[pos.prefix] = append(values[pos.prefix], value)
	}
	return preamble, values
}
