// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

// cdCommand changes the working directory.
type cdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCdCommand())
}

func newCdCommand() *cdCommand {
	return &cdCommand{baseCommand{name: "cd", usage: "cd [path|..]", summary: "Change the working directory"}}
}

// Run executes the cd command. Without an argument it returns to the root.
func (c *cdCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	target := arg(args, 1)
	if err := hc.Session.Chdir(target); err != nil {
		return c.fail(ErrNotFound, err, "Directory not found: %s", target)
	}
	return nil
}
