// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

type pwdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&pwdCommand{baseCommand{name: "pwd", usage: "pwd", summary: "Print the working directory"}})
}

// Run executes the pwd command.
func (c *pwdCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)
	hc.Println(hc.Session.Cwd())
	return nil
}
