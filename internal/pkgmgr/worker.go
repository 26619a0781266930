// SPDX-License-Identifier: MPL-2.0

package pkgmgr

import (
	"context"
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cheggaaa/pb"
)

// progressSteps is the number of increments a progress bar is split into.
const progressSteps = 20

// Worker stands in for real package work with a fixed pause. When Progress
// is set the pause is drawn as a progress bar on the output writer.
type Worker struct {
	// Clock drives every pause. Nil means the wall clock.
	Clock clock.Clock
	// Delay is the pause per package for install and remove.
	Delay time.Duration
	// LongDelay is the pause for system updates and package builds.
	LongDelay time.Duration
	// Progress draws a progress bar while pausing.
	Progress bool
}

// Package pauses for one install or remove step.
func (w *Worker) Package(ctx context.Context, out io.Writer, label string) error {
	return w.run(ctx, out, label, w.Delay)
}

// Long pauses for a system update or build.
func (w *Worker) Long(ctx context.Context, out io.Writer, label string) error {
	return w.run(ctx, out, label, w.LongDelay)
}

func (w *Worker) run(ctx context.Context, out io.Writer, label string, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if !w.Progress {
		return w.sleep(ctx, d)
	}

	bar := pb.New(progressSteps).Prefix(label + " ")
	bar.Output = out
	bar.ManualUpdate = true
	bar.ShowSpeed = false
	bar.ShowTimeLeft = false
	bar.ShowCounters = false
	bar.Start()
	defer bar.Finish()

	step := d / progressSteps
	for range progressSteps {
		if err := w.sleep(ctx, step); err != nil {
			return err
		}
		bar.Increment()
		bar.Update()
	}
	return nil
}

func (w *Worker) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	clk := w.Clock
	if clk == nil {
		clk = clock.New()
	}
	select {
	case <-clk.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
