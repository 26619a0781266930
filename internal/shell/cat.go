// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

// catCommand prints a file.
type catCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCatCommand())
}

func newCatCommand() *catCommand {
	return &catCommand{baseCommand{name: "cat", usage: "cat <file_name>", summary: "Print a file"}}
}

// Run executes the cat command. Directories count as not found.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) < 2 {
		return c.usageError()
	}

	content, err := hc.Session.FS.ReadFile(hc.Session.Abs(args[1]))
	if err != nil {
		return c.fail(ErrNotFound, err, "File not found: %s", args[1])
	}
	hc.Println(content)
	return nil
}
