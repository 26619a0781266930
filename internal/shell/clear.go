// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"

	"github.com/charmbracelet/x/ansi"
)

type clearCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&clearCommand{baseCommand{name: "clear", usage: "clear", summary: "Clear the terminal screen"}})
}

// Run homes the cursor and erases the screen.
func (c *clearCommand) Run(ctx context.Context, _ []string) error {
	GetHandlerContext(ctx).Printf("%s%s", ansi.CursorHomePosition, ansi.EraseEntireScreen)
	return nil
}
