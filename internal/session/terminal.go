// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalPrompter is the Prompter used when stdin and stdout are a real
// terminal: passwords are read without echo and files are edited in a
// full-screen editor. When input is already buffered (typed ahead or pasted)
// it falls back to line reads so no input is lost.
type TerminalPrompter struct {
	*LinePrompter
	in  *os.File
	out io.Writer
}

// NewTerminalPrompter reads from the terminal in and writes to out.
func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		LinePrompter: NewLinePrompter(in, out),
		in:           in,
		out:          out,
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadPassword implements Prompter without echoing the typed characters.
func (p *TerminalPrompter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	if p.Buffered() {
		return p.LinePrompter.ReadPassword(ctx, prompt)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(int(p.in.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(secret), nil
}

// Edit implements Prompter with a full-screen editor.
func (p *TerminalPrompter) Edit(ctx context.Context, name, content string) (string, error) {
	if p.Buffered() {
		return p.LinePrompter.Edit(ctx, name, content)
	}
	return runEditor(ctx, p.in, p.out, name, content)
}
