// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

// lsCommand lists a directory, sorted by name.
type lsCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newLsCommand())
}

func newLsCommand() *lsCommand {
	return &lsCommand{baseCommand{name: "ls", usage: "ls [path]", summary: "List directory contents"}}
}

// Run executes the ls command.
func (c *lsCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	target := arg(args, 1)
	display := target
	if display == "" {
		display = hc.Session.Cwd()
	}

	nodes, err := hc.Session.FS.List(hc.Session.Abs(target))
	if err != nil {
		return c.fail(ErrNotFound, err, "Directory not found: %s", display)
	}
	for _, n := range nodes {
		if n.Dir {
			hc.Println(hc.Styles.Dir(n.Name + "/"))
			continue
		}
		hc.Println(n.Name)
	}
	return nil
}
