package scaffold

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/manifoldco/promptui"
)

var au = aurora.NewAurora(true)

// Prompter asks the user one question and returns the raw answer.
type Prompter interface {
	Ask(label string) (string, error)
}

// LinePrompter reads answers line by line. It suits pipes and tests.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

func (p *LinePrompter) Ask(label string) (string, error) {
	fmt.Fprint(p.w, label+": ")

	line, err := p.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrCanceled
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// TerminalPrompter uses promptui line editing on an interactive terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) Ask(label string) (string, error) {
	p := promptui.Prompt{Label: au.Bold(label).String()}

	v, err := p.Run()
	if err != nil {
		return "", formatPromptError(err)
	}
	return v, nil
}

func formatPromptError(err error) error {
	switch {
	case errors.Is(err, promptui.ErrInterrupt),
		errors.Is(err, promptui.ErrEOF),
		errors.Is(err, promptui.ErrAbort):
		return ErrCanceled
	default:
		return err
	}
}
