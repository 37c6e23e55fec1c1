package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/Lurgrid/Glushkovizer/internal/automata"
	"github.com/Lurgrid/Glushkovizer/internal/regexp"
)

// repl reads expressions until ^D or ^C and prints their report. A line
// starting with '?' tests a word against the last automaton.
func repl(w io.Writer, cfg *config, logger *slog.Logger) error {
	var last *automata.Automaton[regexp.Letter, int]
	for {
		prompt := promptui.Prompt{
			Label:    "regexp (or ?word)",
			Validate: validateLine,
		}
		line, err := prompt.Run()
		if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		last = eval(w, line, last, cfg, logger)
	}
}

// eval handles one line and returns the automaton later words are tested
// against.
func eval(w io.Writer, line string, last *automata.Automaton[regexp.Letter, int], cfg *config, logger *slog.Logger) *automata.Automaton[regexp.Letter, int] {
	line = strings.TrimSpace(line)
	if word, ok := strings.CutPrefix(line, "?"); ok {
		switch {
		case last == nil:
			fmt.Fprintln(w, promptui.Styler(promptui.FGYellow)("no automaton yet"))
		case last.Accept(regexp.Letters(word)):
			fmt.Fprintln(w, promptui.Styler(promptui.FGGreen)(fmt.Sprintf("%q accepted", word)))
		default:
			fmt.Fprintln(w, promptui.Styler(promptui.FGRed)(fmt.Sprintf("%q rejected", word)))
		}
		return last
	}

	r, err := regexp.Parse(line)
	if err != nil {
		fmt.Fprintln(w, promptui.Styler(promptui.FGRed)(err.Error()))
		return last
	}
	a := automata.FromRegexp(r, cfg.options()...)
	logger.Debug("glushkov construction", "regexp", r.String(), "states", a.StatesCount())
	report(w, a)
	return a
}

func validateLine(line string) error {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "?") {
		return nil
	}
	_, err := regexp.Parse(line)
	return err
}
