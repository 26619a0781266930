// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bootcampos/bootcamp/internal/pkgmgr"
	"github.com/bootcampos/bootcamp/internal/session"

	"github.com/charmbracelet/log"
)

const (
	// DefaultBootTicks is the number of dots drawn by the boot banner.
	DefaultBootTicks = 5
	// DefaultTickDelay is the pause after each boot dot.
	DefaultTickDelay = 500 * time.Millisecond
)

type (
	// Options configures New.
	Options struct {
		Session  *session.Session
		Prompter session.Prompter
		Stdout   io.Writer
		// Registry defaults to DefaultRegistry.
		Registry *Registry
		// Worker defaults to a worker without delays.
		Worker *pkgmgr.Worker
		// Logger defaults to a discarding logger.
		Logger *log.Logger
		Color  bool
		Boot   BootOptions
	}

	// BootOptions shapes the boot banner animation.
	BootOptions struct {
		Ticks     int
		TickDelay time.Duration
	}

	// Shell is the read-eval-print loop bound to one session.
	Shell struct {
		hc     *HandlerContext
		boot   BootOptions
		logger *log.Logger
	}
)

// New creates a shell. Session, Prompter and Stdout are required.
func New(opts Options) *Shell {
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry
	}
	if opts.Worker == nil {
		opts.Worker = &pkgmgr.Worker{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Worker.Clock == nil {
		opts.Worker.Clock = opts.Session.Clock
	}

	return &Shell{
		hc: &HandlerContext{
			Stdout:   opts.Stdout,
			Session:  opts.Session,
			Prompter: opts.Prompter,
			Worker:   opts.Worker,
			Registry: opts.Registry,
			Styles:   NewStyles(opts.Color),
			Logger:   opts.Logger,
		},
		boot:   opts.Boot,
		logger: opts.Logger,
	}
}

// Execute runs one line of input. Blank lines are ignored. Command
// failures are printed as a single line and returned; ErrExit is returned
// unprinted when the line asked the shell to stop.
func (s *Shell) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	s.logger.Debug("dispatch", "command", fields[0], "args", len(fields)-1)
	err := s.hc.Registry.Run(WithHandlerContext(ctx, s.hc), fields)
	if err == nil || errors.Is(err, ErrExit) {
		return err
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		s.hc.Report(err)
	}
	return err
}
