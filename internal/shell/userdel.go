// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"

	"github.com/bootcampos/bootcamp/internal/users"
)

// userdelCommand deletes an account. Root and the logged-in user are
// protected; the home directory is left in place.
type userdelCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newUserdelCommand())
}

func newUserdelCommand() *userdelCommand {
	return &userdelCommand{baseCommand{name: "userdel", usage: "userdel <username>", summary: "Delete a user account"}}
}

// Run executes the userdel command.
func (c *userdelCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) != 2 {
		return c.usageError()
	}

	name := args[1]
	if name == hc.Session.User() && name != users.RootName {
		return c.fail(ErrInvalidUsage, users.ErrProtectedUser, "User %s is currently logged in.", name)
	}
	if err := hc.Session.Users.Delete(name); err != nil {
		return c.fail(ErrNotFound, err, "User %s does not exist or cannot be deleted.", name)
	}
	if err := hc.Session.SyncAccounts(); err != nil {
		hc.logger().Debug("account files not synced", "error", err)
	}

	hc.Println(hc.Styles.Success("User " + name + " deleted successfully."))
	return nil
}
