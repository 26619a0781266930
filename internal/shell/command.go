// SPDX-License-Identifier: MPL-2.0

package shell

import "context"

type (
	// Command is a built-in shell command.
	Command interface {
		// Name returns the token that selects the command (e.g., "ls").
		Name() string

		// Usage returns the synopsis printed for invalid usage, without the
		// "Usage: " prefix.
		Usage() string

		// Summary returns a one-line description for help.
		Summary() string

		// Run executes the command. args[0] is the command name and
		// args[1:] are the arguments. The HandlerContext is taken from ctx.
		Run(ctx context.Context, args []string) error
	}

	// baseCommand carries the descriptive fields shared by all commands.
	baseCommand struct {
		name    string
		usage   string
		summary string
	}
)

// Name returns the command name.
func (c *baseCommand) Name() string { return c.name }

// Usage returns the command synopsis.
func (c *baseCommand) Usage() string { return c.usage }

// Summary returns the help line.
func (c *baseCommand) Summary() string { return c.summary }

// usageError reports that the command was called without the arguments it needs.
func (c *baseCommand) usageError() error {
	return &CommandError{Command: c.name, Kind: ErrInvalidUsage, Message: "Usage: " + c.usage}
}

// fail builds a CommandError of the given kind for this command.
func (c *baseCommand) fail(kind, cause error, format string, args ...any) error {
	return newCommandError(c.name, kind, cause, format, args...)
}

// arg returns args[i], or "" when the argument is absent.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
