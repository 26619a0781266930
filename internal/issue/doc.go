// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for failures that happen before
// the simulated system is running, such as loading configuration.
//
// Errors carry the failed operation, the resource involved and suggestions
// for fixing it. Well-known problems also have a Markdown write-up that the
// CLI renders with glamour.
package issue
