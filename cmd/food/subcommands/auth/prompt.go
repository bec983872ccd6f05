package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for values not given by flags.
type Prompter interface {
	// Ask reads a line echoing input.
	Ask(prompt string) (string, error)

	// AskSecret reads a line without echo, when possible.
	AskSecret(prompt string) (string, error)
}

type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewPrompter reads from in and writes prompts to out.
//
// Secrets are read without echo when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	p := &terminalPrompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

func (p *terminalPrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *terminalPrompter) AskSecret(prompt string) (string, error) {
	if !p.tty {
		return p.Ask(prompt)
	}
	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
