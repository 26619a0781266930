// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"io"

	"github.com/bootcampos/bootcamp/internal/session"
	"github.com/bootcampos/bootcamp/internal/vfs"
)

// nanoCommand edits a file through the prompter. An interrupted edit keeps
// whatever was typed.
type nanoCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newNanoCommand())
}

func newNanoCommand() *nanoCommand {
	return &nanoCommand{baseCommand{name: "nano", usage: "nano <filename>", summary: "Edit a file"}}
}

// Run executes the nano command.
func (c *nanoCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) < 2 {
		return c.usageError()
	}

	name := args[1]
	path := hc.Session.Abs(name)
	fs := hc.Session.FS
	if fs.IsDir(path) {
		return c.fail(ErrInvalidUsage, vfs.ErrIsDirectory, "%s is a directory", name)
	}
	if !fs.IsDir(vfs.Parent(path)) {
		return c.fail(ErrNotFound, vfs.ErrNotFound, "Directory not found: %s", vfs.Parent(name))
	}

	var content string
	if fs.Exists(path) {
		var err error
		if content, err = fs.ReadFile(path); err != nil {
			return c.fail(ErrNotFound, err, "File not found: %s", name)
		}
	}

	hc.Printf("Editing %s. Press Ctrl+C to save and exit.\n", name)
	edited, err := hc.Prompter.Edit(ctx, name, content)
	interrupted := errors.Is(err, session.ErrInterrupted) || errors.Is(err, io.EOF)
	if err != nil && !interrupted {
		return err
	}

	if err := fs.WriteFile(path, edited); err != nil {
		return c.fail(ErrNotFound, err, "File not found: %s", name)
	}
	if interrupted {
		hc.Println()
		hc.Println("File saved.")
		return nil
	}
	hc.Printf("File %s saved.\n", name)
	return nil
}
