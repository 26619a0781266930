// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"

	"github.com/bootcampos/bootcamp/internal/vfs"
)

// grepCommand prints the lines of a file containing a literal substring.
type grepCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newGrepCommand())
}

func newGrepCommand() *grepCommand {
	return &grepCommand{baseCommand{name: "grep", usage: "grep <pattern> <file>", summary: "Search a file for a pattern"}}
}

// Run executes the grep command.
func (c *grepCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) < 3 {
		return c.usageError()
	}

	pattern, name := args[1], args[2]
	lines, err := hc.Session.FS.Grep(pattern, hc.Session.Abs(name))
	switch {
	case err == nil:
	case vfs.IsNotFound(err), errors.Is(err, vfs.ErrIsDirectory):
		return c.fail(ErrNotFound, err, "File not found: %s", name)
	default:
		return c.fail(ErrInvalidUsage, err, "grep: %s: %v", name, err)
	}
	for _, line := range lines {
		hc.Println(line)
	}
	return nil
}
