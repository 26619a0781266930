// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"

	"github.com/bootcampos/bootcamp/internal/issue"
)

type (
	// LoadOptions selects the config file and the overrides applied on top of it.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath string
		// ConfigDirPath overrides the config directory lookup when set.
		ConfigDirPath string
		// Overrides take precedence over the file and the defaults.
		Overrides Overrides
	}

	// Overrides are the settings a user can force from the command line.
	Overrides struct {
		// Hostname replaces the configured hostname when non-empty.
		Hostname string
		// NoDelay zeroes the boot tick delay and every package work delay.
		NoDelay bool
	}

	// Loader builds the effective configuration for a session.
	Loader struct{}
)

// NewLoader creates a loader that reads CUE files from disk.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the config file (or the defaults when none exists), applies
// opts.Overrides and validates the result again.
func (l *Loader) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.Overrides == (Overrides{}) {
		return cfg, nil
	}

	opts.Overrides.apply(cfg)
	if valid, errs := cfg.IsValid(); !valid {
		return nil, issue.NewErrorContext().
			WithOperation("apply command line overrides").
			WithSuggestion("Pass a non-empty value to --hostname").
			Wrap(errs[0]).
			BuildError()
	}
	return cfg, nil
}

func (o Overrides) apply(cfg *Config) {
	if o.Hostname != "" {
		cfg.Hostname = o.Hostname
	}
	if o.NoDelay {
		cfg.Boot.TickDelay = 0
		cfg.Packages.Delay = 0
		cfg.Packages.UpdateDelay = 0
	}
}
