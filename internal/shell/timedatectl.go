// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"strings"
)

const (
	statusTimeLayout = "Mon 2006-01-02 15:04:05 MST"
	rtcTimeLayout    = "Mon 2006-01-02 15:04:05"
)

// timedatectlCommand shows or sets the system clock.
type timedatectlCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newTimedatectlCommand())
}

func newTimedatectlCommand() *timedatectlCommand {
	return &timedatectlCommand{baseCommand{
		name:    "timedatectl",
		usage:   "timedatectl [set-time <YYYY-MM-DD HH:MM:SS>]",
		summary: "Show or set the system time",
	}}
}

// Run executes the timedatectl command. The set-time value may span
// several tokens; they are joined with single spaces before parsing.
func (c *timedatectlCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	switch sub := arg(args, 1); sub {
	case "", "status":
		t := hc.Session.SystemTime()
		hc.Printf("               Local time: %s\n", t.Format(statusTimeLayout))
		hc.Printf("           Universal time: %s\n", t.UTC().Format(statusTimeLayout))
		hc.Printf("                 RTC time: %s\n", t.UTC().Format(rtcTimeLayout))
		hc.Println("                Time zone: UTC (UTC, +0000)")
		hc.Println("System clock synchronized: yes")
		hc.Println("              NTP service: active")
		hc.Println("          RTC in local TZ: no")
		return nil
	case "set-time":
		if len(args) < 3 {
			return c.usageError()
		}
		if err := hc.Session.SetSystemTime(strings.Join(args[2:], " ")); err != nil {
			return c.fail(ErrInvalidFormat, err, "Invalid time format. Use: YYYY-MM-DD HH:MM:SS")
		}
		hc.Println("System time set to: " + hc.Session.SystemTime().Format(statusTimeLayout))
		return nil
	default:
		return c.fail(ErrInvalidUsage, nil, "Unknown timedatectl command: %s", sub)
	}
}
