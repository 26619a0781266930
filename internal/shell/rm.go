// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"

	"github.com/bootcampos/bootcamp/internal/vfs"
)

// rmCommand removes a file or a whole directory tree without confirmation.
type rmCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newRmCommand())
}

func newRmCommand() *rmCommand {
	return &rmCommand{baseCommand{name: "rm", usage: "rm <file_or_directory_name>", summary: "Remove a file or directory"}}
}

// Run executes the rm command.
func (c *rmCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) < 2 {
		return c.usageError()
	}

	name := args[1]
	err := hc.Session.FS.Remove(hc.Session.Abs(name))
	switch {
	case errors.Is(err, vfs.ErrRootRemoval):
		return c.fail(ErrInvalidUsage, err, "Refusing to remove the root directory.")
	case err != nil:
		return c.fail(ErrNotFound, err, "File or directory not found: %s", name)
	}

	hc.Session.RepairCwd()
	hc.Println("Removed: " + name)
	return nil
}
