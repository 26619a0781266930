// SPDX-License-Identifier: MPL-2.0

package pkgmgr

import "github.com/dustin/go-humanize"

// Package is a catalog entry. Nothing is ever downloaded; Size only feeds
// the size summaries pacman prints.
type Package struct {
	Name        string
	Version     string
	Description string
	Size        uint64
}

// fallbackVersion is assigned to catalog names without built-in metadata.
const fallbackVersion = "1.0.0-1"

var knownPackages = map[string]Package{
	"base":           {Name: "base", Version: "3-2", Description: "Minimal package set to define a basic installation", Size: 2 * humanize.KiByte},
	"base-devel":     {Name: "base-devel", Version: "1-1", Description: "Basic tools to build packages", Size: 1 * humanize.KiByte},
	"linux":          {Name: "linux", Version: "5.13.13.bootcamp1-1", Description: "The Linux kernel and modules", Size: 131 * humanize.MiByte},
	"linux-firmware": {Name: "linux-firmware", Version: "20210818.c46b8c3-1", Description: "Firmware files for Linux", Size: 631 * humanize.MiByte},
	"networkmanager": {Name: "networkmanager", Version: "1.32.10-1", Description: "Network connection manager and user applications", Size: 16 * humanize.MiByte},
	"grub":           {Name: "grub", Version: "2:2.06-3", Description: "GNU GRand Unified Bootloader (2)", Size: 30 * humanize.MiByte},
	"vim":            {Name: "vim", Version: "8.2.3377-1", Description: "Vi Improved, a highly configurable, improved version of the vi text editor", Size: 3 * humanize.MiByte},
	"git":            {Name: "git", Version: "2.33.0-1", Description: "the fast distributed version control system", Size: 35 * humanize.MiByte},
	"yay":            {Name: "yay", Version: "10.3.1-1", Description: "Yet another yogurt. Pacman wrapper and AUR helper written in go.", Size: 8 * humanize.MiByte},
}

// DefaultCatalog lists the package names known to a fresh system, in catalog order.
func DefaultCatalog() []string {
	return []string{"base", "base-devel", "linux", "linux-firmware", "networkmanager", "grub", "vim", "git", "yay"}
}

// DefaultInstalled lists the packages installed on a fresh system.
func DefaultInstalled() []string {
	return []string{"base", "linux", "networkmanager"}
}

// Describe returns the metadata for name, synthesizing a small entry for
// names that have no built-in metadata.
func Describe(name string) Package {
	if p, ok := knownPackages[name]; ok {
		return p
	}
	return Package{Name: name, Version: fallbackVersion, Description: name, Size: humanize.MiByte}
}
