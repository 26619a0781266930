// SPDX-License-Identifier: MPL-2.0

// Package vfs implements the simulator's virtual filesystem.
//
// The tree lives entirely in memory on top of an afero MemMapFs and is
// unrelated to the host filesystem. Every path handed to an FS method is an
// absolute, slash-separated virtual path; use Resolve to turn a user supplied
// argument into one relative to a working directory.
//
// There are no symlinks and no permission checks. Ownership and modes are
// whatever afero records and are never consulted.
package vfs
