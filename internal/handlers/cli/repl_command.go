package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/rolodex/internal/core/domain/command"
	"github.com/AntonioJCosta/rolodex/internal/handlers/ui"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewReplCommand creates the 'repl' subcommand.
func NewReplCommand(current runtimeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read commands interactively (the default).",
		Long: `Reads one command per line until 'exit' or end of input.
When a command word is not recognized you are asked which existing
command it should run; the answer is remembered as a new command word.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplCmd(cmd, current())
		},
	}
}

func runReplCmd(cmd *cobra.Command, rt *Runtime) error {
	s := newSession(rt, cmd.InOrStdin(), cmd.OutOrStdout())
	if rt.UseFZF {
		s.pickWord = selectWordViaFZF
	}
	return s.run()
}

type session struct {
	rt       *Runtime
	in       *bufio.Scanner
	out      io.Writer
	log      *logrus.Entry
	pickWord func(words []string, prompt string) (string, error) // nil: read the answer from in
}

func newSession(rt *Runtime, in io.Reader, out io.Writer) *session {
	return &session{
		rt:  rt,
		in:  bufio.NewScanner(in),
		out: out,
		log: rt.Logger.WithField("session", uuid.New().String()),
	}
}

func (s *session) run() error {
	s.log.Debug("session started")
	fmt.Fprintln(s.out, ui.HeaderColor("rolodex: type 'help' to see the commands, 'exit' to quit."))

	for {
		fmt.Fprint(s.out, ui.PromptColor("> "))
		if !s.in.Scan() {
			break
		}
		if done := s.handleLine(s.in.Text()); done {
			s.log.Debug("session ended by exit")
			return nil
		}
	}
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(s.out)
	s.log.Debug("session ended at end of input")
	return nil
}

// handleLine interprets one line and reports whether the session should end.
func (s *session) handleLine(line string) bool {
	res, err := s.rt.Interpreter.Parse(line)
	if err != nil {
		s.reportError(err)
		return false
	}

	switch r := res.(type) {
	case command.UnknownCommand:
		s.log.WithField("word", r.Word).Debug("unknown command word")
		s.offerAlias(r.Word)
	case command.ParsedCommand:
		s.log.WithFields(logrus.Fields{"word": r.Word, "action": r.Action}).Debug("command parsed")
		return s.dispatch(r)
	}
	return false
}

func (s *session) dispatch(p command.ParsedCommand) bool {
	switch p.Action {
	case command.ActionExit:
		fmt.Fprintln(s.out, ui.InfoColor("Bye."))
		return true
	case command.ActionHelp:
		printHelp(s.out, s.rt.Interpreter)
		return false
	case command.ActionClear:
		printResult(s.out, p)
		if err := s.rt.Aliases.Forget(); err != nil {
			s.log.WithError(err).Warn("could not forget saved aliases")
			fmt.Fprintln(s.out, ui.ErrorColor(fmt.Sprintf("Custom command words were cleared for this session only: %v", err)))
			return false
		}
		fmt.Fprintln(s.out, ui.InfoColor("Custom command words cleared."))
		return false
	}
	printResult(s.out, p)
	return false
}

func (s *session) reportError(err error) {
	switch {
	case errors.Is(err, command.ErrInvalidFormat):
		fmt.Fprintln(s.out, ui.ErrorColor(err.Error()))
	case errors.Is(err, command.ErrInternalInconsistency):
		s.log.WithError(err).Warn("registry points at an action without a handler")
		fmt.Fprintln(s.out, ui.ErrorColor("Unknown command"))
	default:
		s.log.WithError(err).Error("parse failed")
		fmt.Fprintln(s.out, ui.ErrorColor(err.Error()))
	}
}

// offerAlias asks which existing command an unknown word should run and binds it.
func (s *session) offerAlias(word string) {
	fmt.Fprintln(s.out, ui.WarningColor(fmt.Sprintf("Unknown command '%s'.", word)))

	candidate, ok := s.askCandidate(word)
	if !ok || candidate == "" {
		fmt.Fprintln(s.out, ui.InfoColor(fmt.Sprintf("'%s' was not added.", word)))
		return
	}

	res, err := s.rt.Aliases.Learn(candidate, word)
	switch r := res.(type) {
	case command.NewCommand:
		s.log.WithFields(logrus.Fields{"word": r.Word, "action": r.Action}).Info("command word learned")
		printResult(s.out, r)
	case command.UnknownCommand:
		fmt.Fprintln(s.out, ui.ErrorColor(fmt.Sprintf("'%s' is not a known command either. '%s' was not added.", r.Word, word)))
	}
	if err != nil {
		s.log.WithError(err).Warn("learned command word was not saved")
		fmt.Fprintln(s.out, ui.ErrorColor(fmt.Sprintf("It will be forgotten when you quit: %v", err)))
	}
}

func (s *session) askCandidate(word string) (string, bool) {
	prompt := fmt.Sprintf("Which command should '%s' run? ", word)

	if s.pickWord != nil {
		picked, err := s.pickWord(knownWords(s.rt.Interpreter), prompt)
		switch {
		case err == nil:
			return picked, true
		case errors.Is(err, ErrFZFCancelled):
			return "", false
		case errors.Is(err, ErrFZFNotFound):
			fmt.Fprintln(s.out, ui.WarningColor("fzf not found in PATH. Falling back to typed input."))
			s.pickWord = nil
		default:
			s.log.WithError(err).Warn("fzf selection failed")
			fmt.Fprintln(s.out, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to typed input.", err)))
		}
	}

	fmt.Fprint(s.out, ui.PromptColor(prompt+"(leave empty to skip) "))
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
