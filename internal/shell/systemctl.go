// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"slices"
	"strings"
)

// knownUnits are the services systemctl acknowledges.
var knownUnits = []string{
	"NetworkManager",
	"bluetooth",
	"cronie",
	"sshd",
	"systemd-journald",
	"systemd-logind",
	"systemd-resolved",
	"systemd-timesyncd",
}

// systemctlCommand acknowledges service requests. No service state is kept.
type systemctlCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newSystemctlCommand())
}

func newSystemctlCommand() *systemctlCommand {
	return &systemctlCommand{baseCommand{
		name:    "systemctl",
		usage:   "systemctl <start|stop|restart|status> <service>",
		summary: "Control services",
	}}
}

// Run executes the systemctl command.
func (c *systemctlCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) < 2 {
		return c.usageError()
	}

	verb := args[1]
	var format string
	switch verb {
	case "start":
		format = "Starting %s...\n"
	case "stop":
		format = "Stopping %s...\n"
	case "restart":
		format = "Restarting %s...\n"
	case "status":
		format = "%s is running\n"
	default:
		return c.fail(ErrInvalidUsage, nil, "Unknown systemctl command: %s", verb)
	}

	if len(args) < 3 {
		return c.usageError()
	}
	unit := args[2]
	if !slices.Contains(knownUnits, strings.TrimSuffix(unit, ".service")) {
		return c.fail(ErrNotFound, nil, "Unit %s.service not found.", strings.TrimSuffix(unit, ".service"))
	}
	hc.Printf(format, unit)
	return nil
}
