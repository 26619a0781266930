// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"

	"github.com/bootcampos/bootcamp/internal/vfs"
)

// touchCommand creates an empty file. Unlike its namesake it never updates
// an existing entry.
type touchCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newTouchCommand())
}

func newTouchCommand() *touchCommand {
	return &touchCommand{baseCommand{name: "touch", usage: "touch <file_name>", summary: "Create an empty file"}}
}

// Run executes the touch command.
func (c *touchCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) < 2 {
		return c.usageError()
	}

	name := args[1]
	err := hc.Session.FS.Create(hc.Session.Abs(name))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, vfs.ErrAlreadyExists):
		return c.fail(ErrAlreadyExists, err, "File already exists: %s", name)
	default:
		return c.fail(ErrNotFound, err, "Directory not found: %s", vfs.Parent(name))
	}
}
