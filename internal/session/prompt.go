// SPDX-License-Identifier: MPL-2.0

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInterrupted is returned by Prompter.Edit when the user aborted the edit.
// The content returned alongside it is whatever had been typed so far.
var ErrInterrupted = errors.New("interrupted")

type (
	// Prompter performs the blocking interactive reads some commands need.
	Prompter interface {
		// ReadLine shows prompt and reads one line without its terminator.
		// It returns io.EOF once input is exhausted.
		ReadLine(ctx context.Context, prompt string) (string, error)

		// ReadPassword is ReadLine for secrets; terminals do not echo the input.
		ReadPassword(ctx context.Context, prompt string) (string, error)

		// Edit lets the user replace content for the named file and returns the
		// new content. On ErrInterrupted or io.EOF the returned content is the
		// partial input and should still be committed.
		Edit(ctx context.Context, name, content string) (string, error)
	}

	// LinePrompter reads whole lines from a stream. It is used for piped
	// input, for tests, and as the fallback of TerminalPrompter.
	LinePrompter struct {
		in  *bufio.Reader
		out io.Writer
	}
)

// NewLinePrompter reads from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// ReadLine implements Prompter.
func (p *LinePrompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// ReadPassword implements Prompter. Line input cannot hide what is typed.
func (p *LinePrompter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	return p.ReadLine(ctx, prompt)
}

// Edit implements Prompter with a single replacement line: the current
// content is shown as the prompt and the line read replaces it.
func (p *LinePrompter) Edit(ctx context.Context, _ string, content string) (string, error) {
	line, err := p.ReadLine(ctx, content)
	if err != nil {
		return content, err
	}
	return line, nil
}

// Buffered reports whether input has been read ahead of the last line.
func (p *LinePrompter) Buffered() bool {
	return p.in.Buffered() > 0
}

func trimEOL(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}
