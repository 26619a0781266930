// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"

	"github.com/bootcampos/bootcamp/internal/users"
)

// suCommand switches the current user. Without an argument it becomes
// root with no password check.
type suCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newSuCommand())
}

func newSuCommand() *suCommand {
	return &suCommand{baseCommand{name: "su", usage: "su [username]", summary: "Switch user"}}
}

// Run executes the su command. A failed attempt leaves the user unchanged.
func (c *suCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	name := arg(args, 1)
	if name == "" {
		hc.Session.BecomeRoot()
		return nil
	}
	if !hc.Session.Users.Exists(name) {
		return c.fail(ErrNotFound, users.ErrUnknownUser, "User %s does not exist.", name)
	}

	password, err := hc.Prompter.ReadPassword(ctx, "Password: ")
	if err != nil {
		return c.fail(ErrAuthentication, err, "Incorrect password.")
	}
	if err := hc.Session.SwitchUser(name, password); err != nil {
		return c.fail(ErrAuthentication, err, "Incorrect password.")
	}
	return nil
}
