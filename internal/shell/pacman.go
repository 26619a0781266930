// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"

	"github.com/bootcampos/bootcamp/internal/pkgmgr"

	"github.com/dustin/go-humanize"
)

// pacmanCommand simulates the package manager. Nothing is downloaded;
// install and remove only change the installed set after a pause.
type pacmanCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newPacmanCommand())
}

func newPacmanCommand() *pacmanCommand {
	return &pacmanCommand{baseCommand{
		name:    "pacman",
		usage:   "pacman <operation> [...]",
		summary: "Install (-S), update (-Syu), search (-Ss), remove (-R) or query (-Q) packages",
	}}
}

// Run executes the pacman command.
func (c *pacmanCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	if len(args) < 2 {
		return c.usageError()
	}

	op, targets := args[1], args[2:]
	switch op {
	case "-S":
		return c.install(ctx, hc, targets)
	case "-R":
		return c.remove(ctx, hc, targets)
	case "-Ss":
		if len(targets) == 0 {
			return c.fail(ErrInvalidUsage, nil, "Error: No search term specified")
		}
		for _, p := range hc.Session.Packages.Search(targets[0]) {
			hc.Println(p.Name)
		}
		return nil
	case "-Syu":
		hc.Println("Updating system...")
		if err := hc.Worker.Long(ctx, hc.Stdout, "sync"); err != nil {
			return err
		}
		hc.Println(hc.Styles.Success("System is up to date."))
		return nil
	case "-Q":
		for _, p := range hc.Session.Packages.Installed() {
			hc.Printf("%s %s\n", p.Name, p.Version)
		}
		return nil
	default:
		return c.fail(ErrInvalidUsage, nil, "Unknown operation: %s", op)
	}
}

func (c *pacmanCommand) install(ctx context.Context, hc *HandlerContext, targets []string) error {
	if len(targets) == 0 {
		return c.fail(ErrInvalidUsage, nil, "Error: No targets specified")
	}

	pm := hc.Session.Packages
	var installed []string
	var failures []error
	for _, name := range targets {
		if err := pm.CheckInstall(name); err != nil {
			failures = append(failures, c.targetError(hc, name, err))
			continue
		}
		hc.Printf("Installing %s...\n", name)
		if err := hc.Worker.Package(ctx, hc.Stdout, name); err != nil {
			return err
		}
		if err := pm.Install(name); err != nil {
			failures = append(failures, c.targetError(hc, name, err))
			continue
		}
		installed = append(installed, name)
		hc.Println(hc.Styles.Success(name + " installed successfully."))
	}

	if len(installed) > 0 {
		hc.Println(hc.Styles.Muted("Total Installed Size: " + humanize.IBytes(pm.TotalSize(installed))))
	}
	hc.logger().Debug("install finished", "installed", len(installed), "failed", len(failures))
	return joinReported(failures)
}

func (c *pacmanCommand) remove(ctx context.Context, hc *HandlerContext, targets []string) error {
	if len(targets) == 0 {
		return c.fail(ErrInvalidUsage, nil, "Error: No targets specified")
	}

	pm := hc.Session.Packages
	var failures []error
	for _, name := range targets {
		if err := pm.CheckRemove(name); err != nil {
			failures = append(failures, c.targetError(hc, name, err))
			continue
		}
		hc.Printf("Removing %s...\n", name)
		if err := hc.Worker.Package(ctx, hc.Stdout, name); err != nil {
			return err
		}
		if err := pm.Remove(name); err != nil {
			failures = append(failures, c.targetError(hc, name, err))
			continue
		}
		hc.Println(hc.Styles.Success(name + " removed successfully."))
	}
	return joinReported(failures)
}

// targetError converts a package manager error for one target into a
// CommandError and prints it right away, keeping output in target order.
func (c *pacmanCommand) targetError(hc *HandlerContext, name string, err error) error {
	var ce error
	switch {
	case errors.Is(err, pkgmgr.ErrAlreadyInstalled):
		ce = c.fail(ErrAlreadyExists, err, "%s is already installed.", name)
	case errors.Is(err, pkgmgr.ErrNotInstalled):
		ce = c.fail(ErrNotFound, err, "%s is not installed.", name)
	default:
		ce = c.fail(ErrNotFound, err, "Package not found: %s", name)
	}
	hc.Report(ce)
	return ce
}

func joinReported(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return reportedError{errors.Join(errs...)}
}
