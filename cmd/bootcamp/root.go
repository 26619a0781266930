// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bootcampos/bootcamp/internal/config"
	"github.com/bootcampos/bootcamp/internal/issue"
	"github.com/bootcampos/bootcamp/internal/pkgmgr"
	"github.com/bootcampos/bootcamp/internal/session"
	"github.com/bootcampos/bootcamp/internal/shell"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile  string
	verbose  bool
	noDelay  bool
	hostname string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "bootcamp",
		Short: "A simulated Linux shell for learning the command line",
		Long: TitleStyle.Render("bootcamp") + SubtitleStyle.Render(" - A simulated Linux shell for learning the command line") + `

bootcamp boots BootcampOS, a pretend Arch-style system that lives entirely
in memory. Nothing you type touches the real machine: files, users,
packages and services are all simulated and vanish when you exit.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'bootcamp' and wait for the prompt
  2. Type 'help' to list the available commands
  3. Type 'exit' (or press Ctrl+D) to shut down

` + SubtitleStyle.Render("Examples:") + `
  bootcamp                          Boot and start the interactive shell
  bootcamp --no-delay < lesson.txt  Run a script of commands without pauses
  bootcamp --hostname lab           Boot with a custom hostname
  bootcamp config show              Show the current configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/bootcamp/config.cue)")
	rootCmd.Flags().BoolVar(&opts.noDelay, "no-delay", false, "skip the boot animation and simulated package work pauses")
	rootCmd.Flags().StringVar(&opts.hostname, "hostname", "", "hostname to boot with (overrides the config file)")

	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and exits with its status. It is called by
// main.main().
func Execute() {
	if code := Main(); code != 0 {
		os.Exit(code)
	}
}

// Main runs the root command against the process arguments and streams
// and returns the exit status.
func Main() int {
	// Ctrl+C is not trapped: at the prompt it ends the process like a real
	// terminal would, and nano gets it through its own raw-mode reader.
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(getVersionString()),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return configFailure(cmd, err, opts.verbose)
	}

	verbose := opts.verbose || cfg.UI.Verbose
	logger := newLogger(stderr, verbose)

	sess, err := session.New(session.Options{
		Hostname:     cfg.Hostname,
		RootPassword: cfg.RootPassword,
		Catalog:      cfg.Packages.Catalog,
		Installed:    cfg.Packages.Installed,
	})
	if err != nil {
		return fmt.Errorf("failed to boot session: %w", err)
	}
	logger.Debug("session created",
		"hostname", sess.Hostname(),
		"installed", len(sess.Packages.InstalledNames()),
		"machine_id", sess.MachineID())

	sh := shell.New(shell.Options{
		Session:  sess,
		Prompter: newPrompter(cmd.InOrStdin(), stdout),
		Stdout:   stdout,
		Worker: &pkgmgr.Worker{
			Delay:     cfg.Packages.Delay,
			LongDelay: cfg.Packages.UpdateDelay,
			Progress:  cfg.Packages.Progress,
		},
		Logger: logger,
		Color:  useColor(cfg.UI.Color, stdout),
		Boot: shell.BootOptions{
			Ticks:     cfg.Boot.Ticks,
			TickDelay: cfg.Boot.TickDelay,
		},
	})

	if err := sh.Boot(ctx); err != nil {
		return err
	}
	if err := sh.Run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			renderIssue(stderr, issue.InputUnavailableId, useColor(cfg.UI.Color, stderr))
		}
		cmd.SilenceUsage = true
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// loadConfig loads the config file with the command line flags applied.
func loadConfig(ctx context.Context, opts *rootOptions) (*config.Config, error) {
	return config.NewLoader().Load(ctx, config.LoadOptions{
		ConfigFilePath: opts.cfgFile,
		Overrides: config.Overrides{
			Hostname: opts.hostname,
			NoDelay:  opts.noDelay,
		},
	})
}

// configFailure prints a configuration error with its matching issue page
// and turns it into exit status 1.
func configFailure(cmd *cobra.Command, err error, verbose bool) error {
	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	id := issue.ConfigLoadFailedId
	if errors.Is(err, config.ErrInvalidConfig) {
		id = issue.ConfigInvalidId
	}
	renderIssue(stderr, id, useColor(config.ColorAuto, stderr))

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: 1, Err: err}
}

func renderIssue(w io.Writer, id issue.Id, color bool) {
	style := "notty"
	if color {
		style = "dark"
	}
	rendered, err := issue.Get(id).Render(style)
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "bootcamp",
		Level:  level,
	})
}

// newPrompter reads raw from a real terminal and line by line from
// anything else.
func newPrompter(in io.Reader, out io.Writer) session.Prompter {
	if f, ok := in.(*os.File); ok && session.IsTerminal(f) {
		return session.NewTerminalPrompter(f, out)
	}
	return session.NewLinePrompter(in, out)
}

func useColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && session.IsTerminal(f)
	}
}
