// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KernelRelease is the kernel version reported by neofetch, uname and hostnamectl.
const KernelRelease = "5.13.13-bootcamp1-1"

const logo = `
       /\
      /  \
     /\   \
    /  __  \
   /  (  )  \
  / __|  |__\\
 /.'        '.\
`

// neofetchCommand prints the logo beside a system summary.
type neofetchCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(&neofetchCommand{baseCommand{name: "neofetch", usage: "neofetch", summary: "Show system information"}})
}

// Run executes the neofetch command.
func (c *neofetchCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)
	s := hc.Session

	user := s.User() + "@" + s.Hostname()
	info := []string{
		hc.Styles.Title(user),
		strings.Repeat("-", len(user)),
		"OS: BootcampOS x86_64",
		"Host: " + s.Hostname(),
		"Kernel: Linux " + KernelRelease,
		fmt.Sprintf("Uptime: %d mins", int(s.Uptime().Minutes())),
		fmt.Sprintf("Packages: %d (pacman)", len(s.Packages.InstalledNames())),
		"Shell: bash 5.1.8",
		"Resolution: 1920x1080",
		"DE: None",
		"WM: i3",
		"Theme: Arc-Dark [GTK2/3]",
		"Terminal: alacritty",
		"CPU: AMD Ryzen 9 5950X (32) @ 3.400GHz",
		"GPU: NVIDIA GeForce RTX 3080",
		"Memory: 1234MiB / 32768MiB",
	}

	art := lipgloss.NewStyle().PaddingRight(3).Render(hc.Styles.Title(strings.Trim(logo, "\n")))
	hc.Println(lipgloss.JoinHorizontal(lipgloss.Top, art, strings.Join(info, "\n")))
	return nil
}
