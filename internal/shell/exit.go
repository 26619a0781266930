// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

type exitCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&exitCommand{baseCommand{name: "exit", usage: "exit", summary: "Shut down BootcampOS"}})
}

// Run prints the shutdown message and returns ErrExit.
func (c *exitCommand) Run(ctx context.Context, _ []string) error {
	GetHandlerContext(ctx).Println(shutdownMessage)
	return ErrExit
}
