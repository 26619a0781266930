// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the kind of a missing path, file, user, package or service.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is the kind of a name that is already bound.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidUsage is the kind of a command called with missing or unknown arguments.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrInvalidFormat is the kind of an unparseable value such as a date.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrAuthentication is the kind of a rejected password.
	ErrAuthentication = errors.New("authentication failure")

	// ErrExit is returned by the exit command to end the loop. It is not a failure.
	ErrExit = errors.New("exit")
)

type (
	// CommandError is the failure of a single command. Message is the line
	// shown to the user; Kind is one of the Err* values above and Err is
	// the underlying cause, if any. Both are reachable with errors.Is.
	CommandError struct {
		Command string
		Kind    error
		Message string
		Err     error
	}

	// reportedError marks an error whose lines were already printed by the
	// command, typically one per target of a multi-target operation.
	reportedError struct {
		error
	}
)

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the cause.
func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func (e reportedError) Unwrap() error { return e.error }

func newCommandError(cmd string, kind, cause error, format string, args ...any) *CommandError {
	return &CommandError{
		Command: cmd,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// Message returns the line the shell prints for err.
func Message(err error) string {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
