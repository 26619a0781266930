// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/bootcampos/bootcamp/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `bootcamp config` command tree.
func newConfigCommand(opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bootcamp configuration",
		Long: `Manage bootcamp configuration.

Configuration is stored in:
  - Linux: ~/.config/bootcamp/config.cue
  - macOS: ~/Library/Application Support/bootcamp/config.cue
  - Windows: %APPDATA%\bootcamp\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var defaults bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd, opts, defaults)
		},
	}
	showCmd.Flags().BoolVar(&defaults, "defaults", false, "show the built-in defaults instead of the loaded file")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfigPath(cmd, opts)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the configuration schema as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.Schema())
			return nil
		},
	})

	return cfgCmd
}

// showConfig prints the effective configuration as a CUE file, so the
// output can be redirected straight into a config file.
func showConfig(cmd *cobra.Command, opts *rootOptions, defaults bool) error {
	out := cmd.OutOrStdout()
	if defaults {
		fmt.Fprint(out, config.GenerateCUE(config.DefaultConfig()))
		return nil
	}

	loadOpts := config.LoadOptions{ConfigFilePath: opts.cfgFile}
	cfg, err := config.NewLoader().Load(cmd.Context(), loadOpts)
	if err != nil {
		return configFailure(cmd, err, opts.verbose)
	}

	path, err := config.Path(loadOpts)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(out, "// source: built-in defaults")
	} else {
		fmt.Fprintf(out, "// source: %s\n", path)
	}
	fmt.Fprint(out, config.GenerateCUE(cfg))
	return nil
}

func initConfig(cmd *cobra.Command) error {
	path, created, err := config.CreateDefaultConfig(config.LoadOptions{})
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	out := cmd.OutOrStdout()
	if !created {
		fmt.Fprintf(out, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(out, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath(cmd *cobra.Command, opts *rootOptions) error {
	out := cmd.OutOrStdout()

	if opts.cfgFile != "" {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), opts.cfgFile)
		return nil
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path, err := config.DefaultPath(config.LoadOptions{})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config directory"), cfgDir)
	status := SubtitleStyle.Render("(not created, using defaults)")
	if existing, _ := config.Path(config.LoadOptions{}); existing != "" {
		status = SuccessStyle.Render("(exists)")
	}
	fmt.Fprintf(out, "%s: %s %s\n", CmdStyle.Render("Config file"), path, status)
	return nil
}
