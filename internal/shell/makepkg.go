// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

// makepkgCommand pretends to build a package. It changes no state.
type makepkgCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&makepkgCommand{baseCommand{name: "makepkg", usage: "makepkg", summary: "Build a package"}})
}

// Run executes the makepkg command.
func (c *makepkgCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)
	hc.Println("Building package...")
	if err := hc.Worker.Long(ctx, hc.Stdout, "build"); err != nil {
		return err
	}
	hc.Println(hc.Styles.Success("Package built successfully."))
	return nil
}
