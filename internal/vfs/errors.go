// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a path (or one of its parents) does not exist.
	ErrNotFound = errors.New("no such file or directory")
	// ErrAlreadyExists is returned when creating a name that is already bound.
	ErrAlreadyExists = errors.New("file exists")
	// ErrNotDirectory is returned when a directory was required but a file was found.
	ErrNotDirectory = errors.New("not a directory")
	// ErrIsDirectory is returned when a file was required but a directory was found.
	ErrIsDirectory = errors.New("is a directory")
	// ErrRootRemoval is returned when asked to remove "/".
	ErrRootRemoval = errors.New("refusing to remove root directory")
)

// PathError records the operation and virtual path that failed.
// It wraps one of the package sentinel errors for errors.Is() checks.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the sentinel cause.
func (e *PathError) Unwrap() error { return e.Err }

func pathErr(op, p string, err error) error {
	return &PathError{Op: op, Path: p, Err: err}
}
