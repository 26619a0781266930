// SPDX-License-Identifier: MPL-2.0

// Package session holds the mutable state of one simulator run: the
// virtual filesystem, the account table, the package manager, and the
// working directory, user, hostname and clock that the prompt reflects.
//
// A Session is created once per process and passed explicitly to every
// command handler; there is no package-level state.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bootcampos/bootcamp/internal/pkgmgr"
	"github.com/bootcampos/bootcamp/internal/users"
	"github.com/bootcampos/bootcamp/internal/vfs"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

const (
	// DefaultHostname is the hostname of a freshly booted system.
	DefaultHostname = "bootcamp"
	// DefaultRootPassword is root's password on a freshly booted system.
	DefaultRootPassword = "toor"
	// TimeLayout is the format accepted by SetSystemTime callers.
	TimeLayout = "2006-01-02 15:04:05"
)

// ErrAuthentication is returned when a password does not match.
var ErrAuthentication = errors.New("authentication failure")

type (
	// Options configures New. Zero values fall back to the defaults of a
	// freshly booted system.
	Options struct {
		Hostname     string
		RootPassword string
		Catalog      []string
		Installed    []string
		Clock        clock.Clock
		// HashCost is the bcrypt cost for the account table (0 means default).
		HashCost int
	}

	// Session is the per-process simulator state.
	Session struct {
		FS       *vfs.FS
		Users    *users.Store
		Packages *pkgmgr.Manager
		Clock    clock.Clock

		cwd        string
		user       string
		hostname   string
		bootTime   time.Time
		systemTime time.Time
		machineID  string
		bootID     string
	}
)

// New boots a session: it seeds the filesystem and account table, logs in
// as root at "/", and captures the clock as both boot time and system time.
func New(opts Options) (*Session, error) {
	if opts.Hostname == "" {
		opts.Hostname = DefaultHostname
	}
	if opts.RootPassword == "" {
		opts.RootPassword = DefaultRootPassword
	}
	if opts.Catalog == nil {
		opts.Catalog = pkgmgr.DefaultCatalog()
	}
	if opts.Installed == nil {
		opts.Installed = pkgmgr.DefaultInstalled()
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	var storeOpts []users.Option
	if opts.HashCost > 0 {
		storeOpts = append(storeOpts, users.WithCost(opts.HashCost))
	}
	store, err := users.NewStore(opts.RootPassword, storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating account table: %w", err)
	}

	packages, err := pkgmgr.NewManager(opts.Catalog, opts.Installed)
	if err != nil {
		return nil, fmt.Errorf("creating package manager: %w", err)
	}

	now := opts.Clock.Now().UTC().Truncate(time.Second)
	s := &Session{
		FS:         vfs.NewSeeded(),
		Users:      store,
		Packages:   packages,
		Clock:      opts.Clock,
		cwd:        vfs.Root,
		user:       users.RootName,
		hostname:   opts.Hostname,
		bootTime:   opts.Clock.Now(),
		systemTime: now,
		machineID:  newID(),
		bootID:     newID(),
	}
	if err := s.SyncAccounts(); err != nil {
		return nil, err
	}
	return s, nil
}

// Cwd returns the current working directory.
func (s *Session) Cwd() string { return s.cwd }

// User returns the logged-in user name.
func (s *Session) User() string { return s.user }

// Hostname returns the system hostname.
func (s *Session) Hostname() string { return s.hostname }

// SetHostname replaces the system hostname.
func (s *Session) SetHostname(name string) { s.hostname = name }

// SystemTime returns the simulated system clock reading.
func (s *Session) SystemTime() time.Time { return s.systemTime }

// SetSystemTime parses value with TimeLayout (UTC) and sets the system clock.
func (s *Session) SetSystemTime(value string) error {
	t, err := time.ParseInLocation(TimeLayout, value, time.UTC)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", value, err)
	}
	s.systemTime = t
	return nil
}

// Uptime returns how long the session has been running.
func (s *Session) Uptime() time.Duration {
	return s.Clock.Since(s.bootTime)
}

// MachineID returns the 32 hex digit machine identifier.
func (s *Session) MachineID() string { return s.machineID }

// BootID returns the 32 hex digit identifier of this boot.
func (s *Session) BootID() string { return s.bootID }

// Home returns the logged-in user's home directory.
func (s *Session) Home() string { return users.Home(s.user) }

// Abs resolves p against the working directory.
func (s *Session) Abs(p string) string {
	return vfs.Resolve(s.cwd, p)
}

// Chdir changes the working directory. An empty argument returns to the
// root, ".." drops the last segment (a no-op at the root), and anything
// else must resolve to an existing directory.
func (s *Session) Chdir(p string) error {
	switch p {
	case "":
		s.cwd = vfs.Root
		return nil
	case "..":
		s.cwd = vfs.Parent(s.cwd)
		return nil
	}

	target := s.Abs(p)
	n, err := s.FS.Lookup(target)
	if err != nil {
		return err
	}
	if !n.Dir {
		return &vfs.PathError{Op: "chdir", Path: target, Err: vfs.ErrNotDirectory}
	}
	s.cwd = target
	return nil
}

// RepairCwd moves the working directory up to its nearest existing
// ancestor. It is needed after the directory itself was removed.
func (s *Session) RepairCwd() {
	for !s.FS.IsDir(s.cwd) && s.cwd != vfs.Root {
		s.cwd = vfs.Parent(s.cwd)
	}
}

// SwitchUser logs in as name after checking password.
// The current user is left unchanged on failure.
func (s *Session) SwitchUser(name, password string) error {
	if !s.Users.Exists(name) {
		return fmt.Errorf("%s: %w", name, users.ErrUnknownUser)
	}
	if !s.Users.Authenticate(name, password) {
		return fmt.Errorf("%s: %w", name, ErrAuthentication)
	}
	s.user = name
	return nil
}

// BecomeRoot logs in as root without a password check. The simulator
// deliberately allows this for the argument-less su.
func (s *Session) BecomeRoot() {
	s.user = users.RootName
}

// SyncAccounts regenerates /etc/passwd and /etc/group from the account
// table. A missing /etc (removed by the user) is not an error.
func (s *Session) SyncAccounts() error {
	if !s.FS.IsDir("/etc") {
		return nil
	}
	if err := s.FS.WriteFile("/etc/passwd", s.Users.Passwd()); err != nil {
		return fmt.Errorf("syncing /etc/passwd: %w", err)
	}
	if err := s.FS.WriteFile("/etc/group", s.Users.Group()); err != nil {
		return fmt.Errorf("syncing /etc/group: %w", err)
	}
	return nil
}

// Prompt renders the shell prompt: "[user@host cwd]$ ".
func (s *Session) Prompt() string {
	return fmt.Sprintf("[%s@%s %s]$ ", s.user, s.hostname, s.cwd)
}

// Env returns the shell variables visible to echo expansion as KEY=value pairs.
func (s *Session) Env() []string {
	return []string{
		"USER=" + s.user,
		"LOGNAME=" + s.user,
		"HOME=" + s.Home(),
		"HOSTNAME=" + s.hostname,
		"PWD=" + s.cwd,
		"SHELL=/bin/bash",
	}
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
