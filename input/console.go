package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console reads replies to prompts, one line each
type Console struct {
	reader   *bufio.Reader
	writer   io.Writer
	terminal TerminalReader
	fd       int
}

// NewConsole creates a Console reading from r and prompting on w. Secret reads use terminal
// when r is a terminal file; nil values fall back to os.Stdin, os.Stdout and DefaultTerminal.
// A *bufio.Reader passed as r is read from directly rather than wrapped again.
func NewConsole(r io.Reader, w io.Writer, terminal TerminalReader) *Console {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	fd := -1
	if f, ok := r.(*os.File); ok {
		fd = int(f.Fd())
	}

	return &Console{
		reader:   bufio.NewReader(r),
		writer:   w,
		terminal: terminal,
		fd:       fd,
	}
}

// ReadLine prints prompt and returns the next line without its line ending. A final line
// without a newline is returned as-is; io.EOF is only returned when no input is left.
func (c *Console) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(c.writer, prompt); err != nil {
		return "", err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSecret prints prompt and reads a line with echo suppressed. Input which is not a
// terminal cannot hide the echo and is read like any other line. Lines already buffered by
// earlier reads were typed ahead with echo on; they are consumed first to keep replies in order.
func (c *Console) ReadSecret(prompt string) (string, error) {
	if !c.terminal.IsTerminal(c.fd) || c.reader.Buffered() > 0 {
		return c.ReadLine(prompt)
	}

	return GetSecureString(prompt, c.fd, c.writer, c.terminal)
}

// Printf writes a message to the console output
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.writer, format, args...)
}
