package input

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"
)

// ErrNotAttachedToTerminal is returned by GetSecureString when fd is not a terminal
var ErrNotAttachedToTerminal = errors.New("not attached to a terminal")

// TerminalReader interface for reading secure input
type TerminalReader interface {
	ReadPassword(fd int) ([]byte, error)
	IsTerminal(fd int) bool
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// ReadPassword reads a line from the terminal with echo disabled
func (t *DefaultTerminal) ReadPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// IsTerminal checks if we are attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSecureString prints prompt to w and reads a line from fd without echo. An empty
// reply is returned as the empty string.
func GetSecureString(prompt string, fd int, w io.Writer, terminal TerminalReader) (string, error) {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	if !terminal.IsTerminal(fd) {
		return "", fmt.Errorf("%w: fd %d", ErrNotAttachedToTerminal, fd)
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	bytes, err := terminal.ReadPassword(fd)
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}
