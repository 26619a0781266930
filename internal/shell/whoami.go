// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

type whoamiCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&whoamiCommand{baseCommand{name: "whoami", usage: "whoami", summary: "Print the current user"}})
}

// Run executes the whoami command.
func (c *whoamiCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)
	hc.Println(hc.Session.User())
	return nil
}
