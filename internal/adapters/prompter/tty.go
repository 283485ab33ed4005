// Package prompter collects interactive credentials via the controlling
// terminal, falling back to stdin when no TTY is available (piped input,
// CI).
package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TTYPrompter reads prompts from /dev/tty when possible.
type TTYPrompter struct{}

// NewTTYPrompter creates a new TTY prompter.
func NewTTYPrompter() *TTYPrompter {
	return &TTYPrompter{}
}

// Line prompts for a single line of input.
func (p *TTYPrompter) Line(label string) (string, error) {
	tty, cleanup, err := openInput()
	if err != nil {
		return "", err
	}
	defer cleanup()

	fmt.Fprintf(tty.out, "%s: ", label)
	line, err := tty.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Password prompts for a secret. Echo suppression is not attempted; the
// prompt goes to the TTY so the secret never ends up in shell history.
func (p *TTYPrompter) Password(label string) (string, error) {
	return p.Line(label)
}

type input struct {
	out    io.Writer
	reader *bufio.Reader
}

func openInput() (*input, func(), error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		// No TTY: read from stdin, prompt on stderr.
		return &input{out: os.Stderr, reader: bufio.NewReader(os.Stdin)}, func() {}, nil
	}
	return &input{out: tty, reader: bufio.NewReader(tty)}, func() { tty.Close() }, nil
}
