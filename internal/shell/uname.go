// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"slices"
)

const kernelBuild = "#1 SMP PREEMPT Thu, 21 Oct 2021 22:50:27 +0000"

type unameCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&unameCommand{baseCommand{name: "uname", usage: "uname [-a]", summary: "Print kernel information"}})
}

// Run executes the uname command. Only -a changes the output.
func (c *unameCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if slices.Contains(args[1:], "-a") {
		hc.Printf("Linux %s %s %s x86_64 GNU/Linux\n", hc.Session.Hostname(), KernelRelease, kernelBuild)
		return nil
	}
	hc.Println("Linux")
	return nil
}
