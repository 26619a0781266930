// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"

	"github.com/bootcampos/bootcamp/internal/users"
)

// useraddCommand creates an account after prompting for its password.
type useraddCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newUseraddCommand())
}

func newUseraddCommand() *useraddCommand {
	return &useraddCommand{baseCommand{name: "useradd", usage: "useradd <username>", summary: "Create a user account"}}
}

// Run executes the useradd command. The home directory is created when
// /home exists and the name is free.
func (c *useraddCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) != 2 {
		return c.usageError()
	}

	name := args[1]
	store := hc.Session.Users
	if store.Exists(name) {
		return c.fail(ErrAlreadyExists, users.ErrUserExists, "User %s already exists.", name)
	}

	if !users.ValidName(name) {
		return c.fail(ErrInvalidUsage, &users.InvalidNameError{Name: name}, "Invalid user name: %s", name)
	}

	password, err := hc.Prompter.ReadPassword(ctx, "Enter password for "+name+": ")
	if err != nil {
		return c.fail(ErrInvalidUsage, err, "No password entered for %s.", name)
	}
	if err := store.Add(name, password); err != nil {
		if errors.Is(err, users.ErrInvalidName) {
			return c.fail(ErrInvalidUsage, err, "Invalid user name: %s", name)
		}
		return c.fail(ErrAlreadyExists, err, "User %s already exists.", name)
	}

	home := users.Home(name)
	if hc.Session.FS.IsDir("/home") && !hc.Session.FS.Exists(home) {
		if err := hc.Session.FS.Mkdir(home); err != nil {
			hc.logger().Debug("home directory not created", "user", name, "error", err)
		}
	}
	if err := hc.Session.SyncAccounts(); err != nil {
		hc.logger().Debug("account files not synced", "error", err)
	}

	hc.Println(hc.Styles.Success("User " + name + " created successfully."))
	return nil
}
