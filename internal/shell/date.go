// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

// DateLayout is the layout date prints the system time in.
const DateLayout = "Mon Jan 02 15:04:05 MST 2006"

type dateCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&dateCommand{baseCommand{name: "date", usage: "date", summary: "Print the system date and time"}})
}

// Run executes the date command.
func (c *dateCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)
	hc.Println(hc.Session.SystemTime().Format(DateLayout))
	return nil
}
