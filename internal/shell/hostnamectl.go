// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

// hostnamectlCommand shows or sets the hostname.
type hostnamectlCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newHostnamectlCommand())
}

func newHostnamectlCommand() *hostnamectlCommand {
	return &hostnamectlCommand{baseCommand{
		name:    "hostnamectl",
		usage:   "hostnamectl set-hostname <new-hostname>",
		summary: "Show or set the hostname",
	}}
}

// Run executes the hostnamectl command.
func (c *hostnamectlCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	s := hc.Session

	switch sub := arg(args, 1); sub {
	case "", "status":
		hc.Printf("   Static hostname: %s\n", s.Hostname())
		hc.Println("         Icon name: computer-vm")
		hc.Println("           Chassis: vm")
		hc.Printf("        Machine ID: %s\n", s.MachineID())
		hc.Printf("           Boot ID: %s\n", s.BootID())
		hc.Println("  Operating System: BootcampOS")
		hc.Println("       CPE OS Name: cpe:/o:bootcamp:bootcampos:1")
		hc.Println("            Kernel: Linux " + KernelRelease)
		hc.Println("      Architecture: x86-64")
		return nil
	case "set-hostname":
		if len(args) != 3 {
			return c.usageError()
		}
		s.SetHostname(args[2])
		hc.Println("Hostname set to: " + s.Hostname())
		return nil
	default:
		return c.fail(ErrInvalidUsage, nil, "Unknown hostnamectl command: %s", sub)
	}
}
