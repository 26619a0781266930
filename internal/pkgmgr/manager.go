// SPDX-License-Identifier: MPL-2.0

// Package pkgmgr simulates a pacman-style package manager.
//
// A Manager holds a fixed catalog and the ordered subset that is installed.
// No package is ever fetched or unpacked; Worker supplies the artificial
// pause that stands in for the work.
package pkgmgr

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrPackageNotFound is returned for names absent from the catalog.
	ErrPackageNotFound = errors.New("package not found")
	// ErrAlreadyInstalled is returned when installing an installed package.
	ErrAlreadyInstalled = errors.New("package already installed")
	// ErrNotInstalled is returned when removing a package that is not installed.
	ErrNotInstalled = errors.New("package not installed")
	// ErrInvalidSelection is the sentinel wrapped by InvalidSelectionError.
	ErrInvalidSelection = errors.New("invalid package selection")
)

type (
	// InvalidSelectionError is returned by NewManager when the installed set
	// names packages missing from the catalog. It wraps ErrInvalidSelection.
	InvalidSelectionError struct {
		Unknown []string
	}

	// Manager tracks the catalog and the installed subset.
	Manager struct {
		catalog   []Package
		index     map[string]int
		installed []string
	}
)

// Error implements the error interface for InvalidSelectionError.
func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("installed packages missing from catalog: %s", strings.Join(e.Unknown, ", "))
}

// Unwrap returns ErrInvalidSelection for errors.Is() compatibility.
func (e *InvalidSelectionError) Unwrap() error { return ErrInvalidSelection }

// NewManager builds a manager from catalog names and the initially
// installed names. Duplicate catalog names keep their first position.
func NewManager(catalog, installed []string) (*Manager, error) {
	m := &Manager{index: make(map[string]int, len(catalog))}
	for _, name := range catalog {
		if _, dup := m.index[name]; dup {
			continue
		}
		m.index[name] = len(m.catalog)
		m.catalog = append(m.catalog, Describe(name))
	}

	var unknown []string
	for _, name := range installed {
		if !m.InCatalog(name) {
			unknown = append(unknown, name)
			continue
		}
		if !m.IsInstalled(name) {
			m.installed = append(m.installed, name)
		}
	}
	if len(unknown) > 0 {
		return nil, &InvalidSelectionError{Unknown: unknown}
	}
	return m, nil
}

// InCatalog reports whether name is a known package.
func (m *Manager) InCatalog(name string) bool {
	_, ok := m.index[name]
	return ok
}

// IsInstalled reports whether name is in the installed set.
func (m *Manager) IsInstalled(name string) bool {
	return slices.Contains(m.installed, name)
}

// CheckInstall reports why name cannot be installed, or nil if it can.
func (m *Manager) CheckInstall(name string) error {
	if !m.InCatalog(name) {
		return fmt.Errorf("%s: %w", name, ErrPackageNotFound)
	}
	if m.IsInstalled(name) {
		return fmt.Errorf("%s: %w", name, ErrAlreadyInstalled)
	}
	return nil
}

// Install appends name to the installed set.
func (m *Manager) Install(name string) error {
	if err := m.CheckInstall(name); err != nil {
		return err
	}
	m.installed = append(m.installed, name)
	return nil
}

// CheckRemove reports why name cannot be removed, or nil if it can.
func (m *Manager) CheckRemove(name string) error {
	if !m.IsInstalled(name) {
		return fmt.Errorf("%s: %w", name, ErrNotInstalled)
	}
	return nil
}

// Remove drops name from the installed set.
func (m *Manager) Remove(name string) error {
	if err := m.CheckRemove(name); err != nil {
		return err
	}
	m.installed = slices.DeleteFunc(m.installed, func(n string) bool { return n == name })
	return nil
}

// Search returns catalog entries whose name contains term, in catalog order.
func (m *Manager) Search(term string) []Package {
	var out []Package
	for _, p := range m.catalog {
		if strings.Contains(p.Name, term) {
			out = append(out, p)
		}
	}
	return out
}

// Catalog returns every known package in catalog order.
func (m *Manager) Catalog() []Package {
	return slices.Clone(m.catalog)
}

// Installed returns installed packages in installation order.
func (m *Manager) Installed() []Package {
	out := make([]Package, 0, len(m.installed))
	for _, name := range m.installed {
		out = append(out, m.catalog[m.index[name]])
	}
	return out
}

// InstalledNames returns installed package names in installation order.
func (m *Manager) InstalledNames() []string {
	return slices.Clone(m.installed)
}

// TotalSize sums the catalog sizes of names. Unknown names count as zero.
func (m *Manager) TotalSize(names []string) uint64 {
	var total uint64
	for _, name := range names {
		if i, ok := m.index[name]; ok {
			total += m.catalog[i].Size
		}
	}
	return total
}
