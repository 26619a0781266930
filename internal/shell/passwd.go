// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"

	"github.com/bootcampos/bootcamp/internal/users"
)

// passwdCommand changes a password. Without an argument it targets the
// current user. No old password is asked for.
type passwdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newPasswdCommand())
}

func newPasswdCommand() *passwdCommand {
	return &passwdCommand{baseCommand{name: "passwd", usage: "passwd [username]", summary: "Change a user password"}}
}

// Run executes the passwd command.
func (c *passwdCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	name := arg(args, 1)
	if name == "" {
		name = hc.Session.User()
	}
	if !hc.Session.Users.Exists(name) {
		return c.fail(ErrNotFound, users.ErrUnknownUser, "User %s does not exist.", name)
	}

	password, err := hc.Prompter.ReadPassword(ctx, "Enter new password for "+name+": ")
	if err != nil {
		return c.fail(ErrInvalidUsage, err, "No password entered for %s.", name)
	}
	if err := hc.Session.Users.SetPassword(name, password); err != nil {
		return c.fail(ErrNotFound, err, "User %s does not exist.", name)
	}

	hc.Println(hc.Styles.Success("Password updated for " + name + "."))
	return nil
}
