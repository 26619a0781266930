// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// echoCommand prints its arguments separated by single spaces, expanding
// session variables such as $USER and $HOME.
type echoCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newEchoCommand())
}

func newEchoCommand() *echoCommand {
	return &echoCommand{baseCommand{name: "echo", usage: "echo [text...]", summary: "Print text"}}
}

// Run executes the echo command.
func (c *echoCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	env := expand.ListEnviron(hc.Session.Env()...)
	words := make([]string, 0, len(args))
	for _, a := range args[1:] {
		words = append(words, expandVars(a, env))
	}
	hc.Println(strings.Join(words, " "))
	return nil
}

// expandVars performs parameter expansion on word. Text between single
// quotes is left alone, quotes included.
func expandVars(word string, env expand.Environ) string {
	if !strings.Contains(word, "$") {
		return word
	}
	parts := strings.Split(word, "'")
	for i := 0; i < len(parts); i += 2 {
		parts[i] = expandSegment(parts[i], env)
	}
	return strings.Join(parts, "'")
}

// expandSegment expands the unquoted text s. Segments that do not parse,
// or that name an unset variable, are returned unchanged.
func expandSegment(s string, env expand.Environ) string {
	if !strings.Contains(s, "$") {
		return s
	}
	doc, err := syntax.NewParser().Document(strings.NewReader(s))
	if err != nil {
		return s
	}
	out, err := expand.Literal(&expand.Config{Env: env, NoUnset: true}, doc)
	if err != nil {
		return s
	}
	return out
}
