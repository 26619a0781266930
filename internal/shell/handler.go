// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bootcampos/bootcamp/internal/pkgmgr"
	"github.com/bootcampos/bootcamp/internal/session"

	"github.com/charmbracelet/log"
)

type (
	// HandlerContext provides execution context for shell commands.
	HandlerContext struct {
		// Stdout receives everything a command prints, error lines included.
		Stdout io.Writer
		// Session is the simulator state commands read and mutate.
		Session *session.Session
		// Prompter serves interactive reads (passwords, the editor).
		Prompter session.Prompter
		// Worker simulates package work.
		Worker *pkgmgr.Worker
		// Registry is the command table, used by help.
		Registry *Registry
		// Styles renders colored output when enabled.
		Styles Styles
		// Logger receives debug diagnostics; it never writes to Stdout.
		Logger *log.Logger
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context.
// It panics if none was stored, which is a programming error.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext)
	if !ok {
		panic("shell: no HandlerContext in context")
	}
	return hc
}

// Println writes a line to Stdout.
func (hc *HandlerContext) Println(a ...any) {
	fmt.Fprintln(hc.Stdout, a...)
}

// Printf writes formatted output to Stdout.
func (hc *HandlerContext) Printf(format string, a ...any) {
	fmt.Fprintf(hc.Stdout, format, a...)
}

// Report prints the message of err as a single error line.
func (hc *HandlerContext) Report(err error) {
	hc.Println(hc.Styles.Error(Message(err)))
	var ce *CommandError
	if errors.As(err, &ce) && ce.Err != nil {
		hc.logger().Debug("command failed", "command", ce.Command, "kind", ce.Kind, "cause", ce.Err)
	}
}

func (hc *HandlerContext) logger() *log.Logger {
	if hc.Logger == nil {
		return log.New(io.Discard)
	}
	return hc.Logger
}
