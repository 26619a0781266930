// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/benbjohnson/clock"
)

const shutdownMessage = "Shutting down BootcampOS..."

// Boot draws the boot banner: a row of dots with a pause after each one,
// then the welcome text.
func (s *Shell) Boot(ctx context.Context) error {
	s.hc.Println(s.hc.Styles.Title("Booting BootcampOS..."))
	for range s.boot.Ticks {
		s.hc.Printf(".")
		if err := pause(ctx, s.hc.Session.Clock, s.boot.TickDelay); err != nil {
			return err
		}
	}
	s.hc.Println()
	s.hc.Println(s.hc.Styles.Title("Welcome to BootcampOS!"))
	s.hc.Println("Type 'neofetch' for system info or 'help' for available commands.")
	return nil
}

// Run reads and executes lines until exit or end of input. End of input
// shuts down like exit. Command failures never stop the loop; a canceled
// context and prompter failures do.
func (s *Shell) Run(ctx context.Context) error {
	for {
		line, err := s.hc.Prompter.ReadLine(ctx, s.hc.Session.Prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.hc.Println()
				s.hc.Println(shutdownMessage)
				return nil
			}
			return err
		}

		if err := s.Execute(ctx, line); errors.Is(err, ErrExit) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// pause blocks for d on clk, returning early when ctx is canceled.
func pause(ctx context.Context, clk clock.Clock, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-clk.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
