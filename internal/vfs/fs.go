// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

type (
	// FS is an in-memory directory tree. Names are unique within a directory
	// and the structure is always a tree rooted at "/".
	FS struct {
		fs afero.Afero
	}

	// Node describes a single entry of the tree.
	Node struct {
		// Path is the absolute virtual path of the entry.
		Path string
		// Name is the last path element ("/" for the root).
		Name string
		// Dir reports whether the entry is a directory.
		Dir bool
		// Size is the content length in bytes for files, zero for directories.
		Size int64
	}
)

// New returns an FS holding only the root directory.
func New() *FS {
	return &FS{fs: afero.Afero{Fs: afero.NewMemMapFs()}}
}

// NewSeeded returns an FS populated with the default skeleton:
// /home, /etc/passwd, /etc/group, /var and /usr/bin.
func NewSeeded() *FS {
	f := New()
	for _, dir := range []string{"/home", "/etc", "/var", "/usr", "/usr/bin"} {
		// The skeleton is fixed and the tree is empty, so these cannot fail.
		_ = f.Mkdir(dir)
	}
	_ = f.Create("/etc/passwd")
	_ = f.Create("/etc/group")
	return f
}

// Lookup resolves an absolute path to its node. It fails with ErrNotFound if
// any segment is missing.
func (f *FS) Lookup(p string) (Node, error) {
	p = clean(p)
	info, err := f.fs.Stat(p)
	if err != nil {
		return Node{}, pathErr("lookup", p, ErrNotFound)
	}
	n := Node{Path: p, Name: Base(p), Dir: info.IsDir()}
	if !n.Dir {
		n.Size = info.Size()
	}
	return n, nil
}

// IsDir reports whether p resolves to a directory.
func (f *FS) IsDir(p string) bool {
	n, err := f.Lookup(p)
	return err == nil && n.Dir
}

// Exists reports whether p resolves to any node.
func (f *FS) Exists(p string) bool {
	_, err := f.Lookup(p)
	return err == nil
}

// List returns the entries of directory p sorted by name.
func (f *FS) List(p string) ([]Node, error) {
	p = clean(p)
	if err := f.requireDir("list", p); err != nil {
		return nil, err
	}
	infos, err := f.fs.ReadDir(p)
	if err != nil {
		return nil, pathErr("list", p, fmt.Errorf("reading directory: %w", err))
	}
	nodes := make([]Node, 0, len(infos))
	for _, info := range infos {
		n := Node{Path: joinChild(p, info.Name()), Name: info.Name(), Dir: info.IsDir()}
		if !n.Dir {
			n.Size = info.Size()
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Mkdir creates the directory p. Its parent must already exist.
func (f *FS) Mkdir(p string) error {
	p = clean(p)
	if err := f.requireDir("mkdir", Parent(p)); err != nil {
		return err
	}
	if f.Exists(p) {
		return pathErr("mkdir", p, ErrAlreadyExists)
	}
	if err := f.fs.Mkdir(p, dirPerm); err != nil {
		return pathErr("mkdir", p, err)
	}
	return nil
}

// Create creates an empty file at p. It fails with ErrAlreadyExists if the
// name is bound to either a file or a directory, leaving it untouched.
func (f *FS) Create(p string) error {
	p = clean(p)
	if err := f.requireDir("create", Parent(p)); err != nil {
		return err
	}
	if f.Exists(p) {
		return pathErr("create", p, ErrAlreadyExists)
	}
	if err := f.fs.WriteFile(p, nil, filePerm); err != nil {
		return pathErr("create", p, err)
	}
	return nil
}

// ReadFile returns the content of file p.
func (f *FS) ReadFile(p string) (string, error) {
	n, err := f.Lookup(p)
	if err != nil {
		return "", pathErr("read", clean(p), ErrNotFound)
	}
	if n.Dir {
		return "", pathErr("read", n.Path, ErrIsDirectory)
	}
	data, err := f.fs.ReadFile(n.Path)
	if err != nil {
		return "", pathErr("read", n.Path, err)
	}
	return string(data), nil
}

// WriteFile creates p or replaces its content. A directory at p is never
// overwritten.
func (f *FS) WriteFile(p, content string) error {
	p = clean(p)
	if err := f.requireDir("write", Parent(p)); err != nil {
		return err
	}
	if f.IsDir(p) {
		return pathErr("write", p, ErrIsDirectory)
	}
	if err := f.fs.WriteFile(p, []byte(content), filePerm); err != nil {
		return pathErr("write", p, err)
	}
	return nil
}

// Remove deletes p immediately. Directories are removed with everything below them.
func (f *FS) Remove(p string) error {
	p = clean(p)
	if p == Root {
		return pathErr("remove", p, ErrRootRemoval)
	}
	if !f.Exists(p) {
		return pathErr("remove", p, ErrNotFound)
	}
	if err := f.fs.RemoveAll(p); err != nil {
		return pathErr("remove", p, err)
	}
	return nil
}

// Grep returns the lines of file p containing pattern as a literal,
// case-sensitive substring, in file order.
func (f *FS) Grep(pattern, p string) ([]string, error) {
	content, err := f.ReadFile(p)
	if err != nil {
		return nil, err
	}

	var matches []string
	for line := range strings.SplitSeq(content, "\n") {
		if strings.Contains(line, pattern) {
			matches = append(matches, line)
		}
	}
	return matches, nil
}

// requireDir checks that dir exists and is a directory.
func (f *FS) requireDir(op, dir string) error {
	n, err := f.Lookup(dir)
	if err != nil {
		return pathErr(op, dir, ErrNotFound)
	}
	if !n.Dir {
		return pathErr(op, dir, ErrNotDirectory)
	}
	return nil
}

func joinChild(dir, name string) string {
	if dir == Root {
		return Root + name
	}
	return dir + "/" + name
}

// IsNotFound reports whether err means the path could not be resolved,
// either because it is missing or because a segment is not a directory.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotDirectory)
}
