// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"path"
	"strings"
)

// Root is the absolute path of the tree root.
const Root = "/"

// Resolve turns p into a cleaned absolute path. Relative paths are joined to
// cwd; "." and ".." segments collapse lexically and ".." never climbs above
// the root. An empty p resolves to cwd.
func Resolve(cwd, p string) string {
	if p == "" {
		return clean(cwd)
	}
	if path.IsAbs(p) {
		return clean(p)
	}
	return clean(path.Join(cwd, p))
}

// Parent returns the directory containing p. The parent of the root is the root.
func Parent(p string) string {
	return path.Dir(clean(p))
}

// Base returns the last element of p.
func Base(p string) string {
	return path.Base(clean(p))
}

// IsWithin reports whether p equals dir or lies below it.
func IsWithin(p, dir string) bool {
	p, dir = clean(p), clean(dir)
	if dir == Root {
		return true
	}
	return p == dir || strings.HasPrefix(p, dir+"/")
}

func clean(p string) string {
	if p == "" {
		return Root
	}
	if !path.IsAbs(p) {
		p = "/" + p
	}
	return path.Clean(p)
}
