package interpreter

import (
	"strings"
	"unicode"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
)

// HelpUsage is attached to input that has no command word at all.
const HelpUsage = "help: Shows program usage instructions.\nExample: help"

/*
Tokenize splits a line into its command word and the remainder.

The line is trimmed first. The word is the first run of non-whitespace
characters; the remainder is everything after it, left exactly as typed
so argument parsers see any leading whitespace.
*/
func Tokenize(line string) (word, remainder string, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", command.InvalidFormat(HelpUsage)
	}

	end := strings.IndexFunc(trimmed, unicode.IsSpace)
	if end < 0 {
		return trimmed, "", nil
	}
	return trimmed[:end], trimmed[end:], nil
}
