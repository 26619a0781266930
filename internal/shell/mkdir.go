// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"

	"github.com/bootcampos/bootcamp/internal/vfs"
)

// mkdirCommand creates a single directory.
type mkdirCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newMkdirCommand())
}

func newMkdirCommand() *mkdirCommand {
	return &mkdirCommand{baseCommand{name: "mkdir", usage: "mkdir <directory_name>", summary: "Create a directory"}}
}

// Run executes the mkdir command.
func (c *mkdirCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) < 2 {
		return c.usageError()
	}

	name := args[1]
	err := hc.Session.FS.Mkdir(hc.Session.Abs(name))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, vfs.ErrAlreadyExists):
		return c.fail(ErrAlreadyExists, err, "Directory already exists: %s", name)
	default:
		return c.fail(ErrNotFound, err, "Directory not found: %s", vfs.Parent(name))
	}
}
