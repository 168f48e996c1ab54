package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/rolodex/internal/handlers/ui"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

// selectWordViaFZF lets the user pick one of words with fzf.
// An empty string with a nil error means nothing was picked.
func selectWordViaFZF(words []string, prompt string) (string, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return "", ErrFZFNotFound
	}

	if len(words) == 0 {
		return "", nil
	}

	var inputBuffer bytes.Buffer
	known := make(map[string]bool, len(words))
	for _, w := range words {
		known[w] = true
		inputBuffer.WriteString(w + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--ansi", "--prompt", ui.PromptColor(prompt))
	fzfCmd.Stdin = &inputBuffer
	fzfCmd.Stderr = os.Stderr // fzf draws its UI on stderr

	var outBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer

	err = fzfCmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// Exit code 130 indicates user cancellation (e.g., Ctrl-C, Esc).
			if exitErr.ExitCode() == 130 {
				return "", ErrFZFCancelled
			}
			// Exit code 1 means no match.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return "", nil
			}
		}
		return "", fmt.Errorf("fzf execution failed: %w", err)
	}

	selected := strings.TrimSpace(outBuffer.String())
	if selected != "" && !known[selected] {
		return "", fmt.Errorf("fzf selected an unknown line: %s", selected)
	}
	return selected, nil
}
