// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// ColorAuto colors output when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways always colors output.
	ColorAlways ColorMode = "always"
	// ColorNever never colors output.
	ColorNever ColorMode = "never"
)

var (
	// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidHostname is returned for an empty or whitespace hostname.
	ErrInvalidHostname = errors.New("invalid hostname")
	// ErrNegativeValue is the sentinel error wrapped by NegativeValueError.
	ErrNegativeValue = errors.New("negative value")
	// ErrUnknownPackage is the sentinel error wrapped by UnknownPackageError.
	ErrUnknownPackage = errors.New("installed package missing from catalog")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorMode selects when output is colored.
	ColorMode string

	// InvalidColorModeError is returned when a ColorMode value is not recognized.
	InvalidColorModeError struct {
		Value ColorMode
	}

	// NegativeValueError is returned when a count or delay is below zero.
	NegativeValueError struct {
		Field string
		Value string
	}

	// UnknownPackageError is returned when an installed package is not in the catalog.
	UnknownPackageError struct {
		Name string
	}

	// InvalidConfigError collects every field error found in a Config.
	// It wraps ErrInvalidConfig and each field error.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the BootcampOS configuration.
	Config struct {
		// Hostname is the hostname at boot.
		Hostname string `json:"hostname" mapstructure:"hostname"`
		// RootPassword is root's password at boot.
		RootPassword string `json:"root_password" mapstructure:"root_password"`
		// Boot shapes the boot banner.
		Boot BootConfig `json:"boot" mapstructure:"boot"`
		// Packages configures the package manager simulation.
		Packages PackagesConfig `json:"packages" mapstructure:"packages"`
		// UI configures output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// BootConfig shapes the boot banner animation.
	BootConfig struct {
		Ticks     int           `json:"ticks" mapstructure:"ticks"`
		TickDelay time.Duration `json:"tick_delay" mapstructure:"tick_delay"`
	}

	// PackagesConfig configures the package catalog and simulated work.
	PackagesConfig struct {
		Catalog     []string      `json:"catalog" mapstructure:"catalog"`
		Installed   []string      `json:"installed" mapstructure:"installed"`
		Delay       time.Duration `json:"delay" mapstructure:"delay"`
		UpdateDelay time.Duration `json:"update_delay" mapstructure:"update_delay"`
		Progress    bool          `json:"progress" mapstructure:"progress"`
	}

	// UIConfig configures output.
	UIConfig struct {
		Color   ColorMode `json:"color" mapstructure:"color"`
		Verbose bool      `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration of a freshly installed system.
func DefaultConfig() *Config {
	return &Config{
		Hostname:     "bootcamp",
		RootPassword: "toor",
		Boot: BootConfig{
			Ticks:     5,
			TickDelay: 500 * time.Millisecond,
		},
		Packages: PackagesConfig{
			Catalog:     []string{"base", "base-devel", "linux", "linux-firmware", "networkmanager", "grub", "vim", "git", "yay"},
			Installed:   []string{"base", "linux", "networkmanager"},
			Delay:       time.Second,
			UpdateDelay: 2 * time.Second,
			Progress:    false,
		},
		UI: UIConfig{
			Color:   ColorAuto,
			Verbose: false,
		},
	}
}

// String returns the string representation of the ColorMode.
func (m ColorMode) String() string { return string(m) }

// IsValid returns whether the ColorMode is one of the defined modes.
func (m ColorMode) IsValid() (bool, []error) {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true, nil
	default:
		return false, []error{&InvalidColorModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidColorModeError.
func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q (valid: auto, always, never)", e.Value)
}

// Unwrap returns ErrInvalidColorMode for errors.Is() compatibility.
func (e *InvalidColorModeError) Unwrap() error { return ErrInvalidColorMode }

// Error implements the error interface for NegativeValueError.
func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("%s must not be negative (got %s)", e.Field, e.Value)
}

// Unwrap returns ErrNegativeValue for errors.Is() compatibility.
func (e *NegativeValueError) Unwrap() error { return ErrNegativeValue }

// Error implements the error interface for UnknownPackageError.
func (e *UnknownPackageError) Error() string {
	return fmt.Sprintf("packages.installed: %q is not in packages.catalog", e.Name)
}

// Unwrap returns ErrUnknownPackage for errors.Is() compatibility.
func (e *UnknownPackageError) Unwrap() error { return ErrUnknownPackage }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so both the
// aggregate and the individual causes match errors.Is.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// IsValid returns whether the BootConfig has valid fields.
func (c BootConfig) IsValid() (bool, []error) {
	var errs []error
	if c.Ticks < 0 {
		errs = append(errs, &NegativeValueError{Field: "boot.ticks", Value: fmt.Sprint(c.Ticks)})
	}
	if c.TickDelay < 0 {
		errs = append(errs, &NegativeValueError{Field: "boot.tick_delay", Value: c.TickDelay.String()})
	}
	return len(errs) == 0, errs
}

// IsValid returns whether the PackagesConfig has valid fields. Every
// installed package must be part of the catalog.
func (c PackagesConfig) IsValid() (bool, []error) {
	var errs []error
	for _, name := range c.Installed {
		if !slices.Contains(c.Catalog, name) {
			errs = append(errs, &UnknownPackageError{Name: name})
		}
	}
	if c.Delay < 0 {
		errs = append(errs, &NegativeValueError{Field: "packages.delay", Value: c.Delay.String()})
	}
	if c.UpdateDelay < 0 {
		errs = append(errs, &NegativeValueError{Field: "packages.update_delay", Value: c.UpdateDelay.String()})
	}
	return len(errs) == 0, errs
}

// IsValid returns whether the Config has valid fields, delegating to the
// nested sections.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.Hostname) == "" {
		errs = append(errs, fmt.Errorf("hostname %q: %w", c.Hostname, ErrInvalidHostname))
	}
	if valid, fieldErrs := c.Boot.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Packages.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.Color.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}
