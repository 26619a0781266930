// SPDX-License-Identifier: MPL-2.0

// Package shell implements the BootcampOS command line: the boot banner,
// the read-eval-print loop, and the built-in commands it dispatches to.
//
// Every command implements the Command interface and registers itself in
// DefaultRegistry from an init function. A line of input is split on
// whitespace; the first token selects the command and the whole token
// slice (command name included) is passed to Command.Run. Commands reach
// the session, the prompter and the output stream through the
// HandlerContext stored in the context.
//
// Command failures are never fatal. They are returned as *CommandError
// values carrying one of the Err* kinds below, printed as a single line by
// the shell, and the loop continues.
package shell
