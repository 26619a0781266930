// SPDX-License-Identifier: MPL-2.0

// Package users holds the simulator's account table.
//
// Passwords are stored as bcrypt hashes; cleartext never outlives the call
// that supplied it. The table is process-local and is never written to disk.
package users

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// RootName is the superuser account. It always exists and cannot be deleted.
	RootName = "root"
	// WheelGroup is the administrative group root belongs to.
	WheelGroup = "wheel"

	firstUserUID = 1000
	wheelGID     = 998
)

var (
	// ErrUserExists is returned when adding a name that is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUnknownUser is returned for operations on a name that is not in the table.
	ErrUnknownUser = errors.New("user does not exist")
	// ErrProtectedUser is returned when deleting root.
	ErrProtectedUser = errors.New("user cannot be deleted")
	// ErrInvalidName is the sentinel wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid user name")

	validName = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}$`)
)

type (
	// User is a single account record.
	User struct {
		Name   string
		UID    int
		Groups []string
		hash   []byte
	}

	// InvalidNameError is returned when a user name does not follow the
	// lowercase POSIX account name convention. It wraps ErrInvalidName.
	InvalidNameError struct {
		Name string
	}

	// Store maps user names to accounts.
	Store struct {
		users   map[string]*User
		order   []string
		nextUID int
		cost    int
	}

	// Option configures a Store.
	Option func(*Store)
)

// Error implements the error interface for InvalidNameError.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid user name %q: use lowercase letters, digits, '-' or '_'", e.Name)
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// WithCost sets the bcrypt cost used for new hashes.
// Values outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func WithCost(cost int) Option {
	return func(s *Store) {
		s.cost = cost
	}
}

// NewStore creates a table holding only root, with the given password.
func NewStore(rootPassword string, opts ...Option) (*Store, error) {
	s := &Store{
		users:   make(map[string]*User),
		nextUID: firstUserUID,
		cost:    bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cost < bcrypt.MinCost || s.cost > bcrypt.MaxCost {
		s.cost = bcrypt.DefaultCost
	}

	hash, err := s.hash(rootPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing root password: %w", err)
	}
	s.insert(&User{Name: RootName, UID: 0, Groups: []string{WheelGroup}, hash: hash})
	return s, nil
}

// Exists reports whether name is in the table.
func (s *Store) Exists(name string) bool {
	_, ok := s.users[name]
	return ok
}

// Lookup returns a copy of the account for name.
func (s *Store) Lookup(name string) (User, bool) {
	u, ok := s.users[name]
	if !ok {
		return User{}, false
	}
	cp := *u
	cp.Groups = slices.Clone(u.Groups)
	cp.hash = nil
	return cp, true
}

// Names returns account names in creation order.
func (s *Store) Names() []string {
	return slices.Clone(s.order)
}

// Add creates an account with no supplementary groups.
func (s *Store) Add(name, password string) error {
	if !ValidName(name) {
		return &InvalidNameError{Name: name}
	}
	if s.Exists(name) {
		return fmt.Errorf("%s: %w", name, ErrUserExists)
	}
	hash, err := s.hash(password)
	if err != nil {
		return fmt.Errorf("hashing password for %s: %w", name, err)
	}
	s.insert(&User{Name: name, UID: s.nextUID, hash: hash})
	s.nextUID++
	return nil
}

// Delete removes an account. Root can never be removed.
func (s *Store) Delete(name string) error {
	if name == RootName {
		return fmt.Errorf("%s: %w", name, ErrProtectedUser)
	}
	if !s.Exists(name) {
		return fmt.Errorf("%s: %w", name, ErrUnknownUser)
	}
	delete(s.users, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	return nil
}

// SetPassword replaces the stored hash for an existing account.
func (s *Store) SetPassword(name, password string) error {
	u, ok := s.users[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownUser)
	}
	hash, err := s.hash(password)
	if err != nil {
		return fmt.Errorf("hashing password for %s: %w", name, err)
	}
	u.hash = hash
	return nil
}

// Authenticate reports whether password matches the stored hash for name.
// Unknown names never authenticate.
func (s *Store) Authenticate(name, password string) bool {
	u, ok := s.users[name]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(u.hash, []byte(password)) == nil
}

// ValidName reports whether name follows the lowercase POSIX account name
// convention accepted by Add.
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// Home returns the home directory path of name.
func Home(name string) string {
	if name == RootName {
		return "/root"
	}
	return "/home/" + name
}

// Passwd renders the table in /etc/passwd format.
func (s *Store) Passwd() string {
	var sb strings.Builder
	for _, name := range s.order {
		u := s.users[name]
		gecos := ""
		if u.Name == RootName {
			gecos = RootName
		}
		fmt.Fprintf(&sb, "%s:x:%d:%d:%s:%s:/bin/bash\n", u.Name, u.UID, u.UID, gecos, Home(u.Name))
	}
	return sb.String()
}

// Group renders the table in /etc/group format: one primary group per
// account followed by the supplementary groups and their members.
func (s *Store) Group() string {
	var sb strings.Builder
	members := make(map[string][]string)
	var extra []string
	for _, name := range s.order {
		u := s.users[name]
		fmt.Fprintf(&sb, "%s:x:%d:\n", u.Name, u.UID)
		for _, g := range u.Groups {
			if _, seen := members[g]; !seen {
				extra = append(extra, g)
			}
			members[g] = append(members[g], u.Name)
		}
	}
	for i, g := range extra {
		fmt.Fprintf(&sb, "%s:x:%d:%s\n", g, wheelGID-i, strings.Join(members[g], ","))
	}
	return sb.String()
}

func (s *Store) insert(u *User) {
	s.users[u.Name] = u
	s.order = append(s.order, u.Name)
}

func (s *Store) hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), s.cost)
}
