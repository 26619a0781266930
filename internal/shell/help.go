// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpWrap = 80

// helpCommand lists the registered commands. With color enabled the list
// is rendered as a markdown table.
type helpCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&helpCommand{baseCommand{name: "help", usage: "help", summary: "List available commands"}})
}

// Run executes the help command.
func (c *helpCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)

	var cmds []Command
	for _, name := range hc.Registry.Names() {
		if cmd, ok := hc.Registry.Lookup(name); ok {
			cmds = append(cmds, cmd)
		}
	}

	if hc.Styles.Enabled() {
		out, err := renderHelp(cmds)
		if err == nil {
			hc.Printf("%s", out)
			return nil
		}
		hc.logger().Debug("help rendering failed", "error", err)
	}

	hc.Println("Available commands:")
	for _, cmd := range cmds {
		hc.Printf("  %-40s %s\n", cmd.Usage(), cmd.Summary())
	}
	return nil
}

func renderHelp(cmds []Command) (string, error) {
	var md strings.Builder
	md.WriteString("# Available commands\n\n| Command | Description |\n| --- | --- |\n")
	for _, cmd := range cmds {
		fmt.Fprintf(&md, "| `%s` | %s |\n", strings.ReplaceAll(cmd.Usage(), "|", `\|`), cmd.Summary())
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(helpWrap))
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	return r.Render(md.String())
}
