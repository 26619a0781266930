// SPDX-License-Identifier: MPL-2.0

package users

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore("toor", WithCost(bcrypt.MinCost))
	if err != nil {
		t.Fatalf("NewStore() returned error: %v", err)
	}
	return s
}

func TestNewStore_RootSeeded(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	root, ok := s.Lookup(RootName)
	if !ok {
		t.Fatal("root should exist")
	}
	if root.UID != 0 {
		t.Errorf("root UID = %d, want 0", root.UID)
	}
	if diff := cmp.Diff([]string{WheelGroup}, root.Groups); diff != "" {
		t.Errorf("root groups mismatch (-want +got):\n%s", diff)
	}
	if !s.Authenticate(RootName, "toor") {
		t.Error("root should authenticate with the default password")
	}
	if s.Authenticate(RootName, "wrong") {
		t.Error("root should not authenticate with a wrong password")
	}
}

func TestStore_AddAuthenticate(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Add("alice", "s3cret"); err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	alice, ok := s.Lookup("alice")
	if !ok {
		t.Fatal("alice should exist after Add")
	}
	if alice.UID != firstUserUID {
		t.Errorf("alice UID = %d, want %d", alice.UID, firstUserUID)
	}
	if len(alice.Groups) != 0 {
		t.Errorf("alice groups = %v, want none", alice.Groups)
	}
	if !s.Authenticate("alice", "s3cret") {
		t.Error("alice should authenticate")
	}

	if err := s.Add("alice", "other"); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate Add() = %v, want ErrUserExists", err)
	}
	if !s.Authenticate("alice", "s3cret") {
		t.Error("failed duplicate Add must not change the password")
	}

	if err := s.Add("bob", ""); err != nil {
		t.Fatalf("Add(bob) returned error: %v", err)
	}
	if bob, _ := s.Lookup("bob"); bob.UID != firstUserUID+1 {
		t.Errorf("bob UID = %d, want %d", bob.UID, firstUserUID+1)
	}
	if diff := cmp.Diff([]string{"root", "alice", "bob"}, s.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_AddInvalidName(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, name := range []string{"Alice", "a:b", "../x", "1abc"} {
		err := s.Add(name, "pw")
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("Add(%q) = %v, want ErrInvalidName", name, err)
		}
		var nameErr *InvalidNameError
		if !errors.As(err, &nameErr) || nameErr.Name != name {
			t.Errorf("Add(%q) should return *InvalidNameError carrying the name", name)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Add("alice", "pw"); err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	if err := s.Delete(RootName); !errors.Is(err, ErrProtectedUser) {
		t.Errorf("Delete(root) = %v, want ErrProtectedUser", err)
	}
	if err := s.Delete("ghost"); !errors.Is(err, ErrUnknownUser) {
		t.Errorf("Delete(ghost) = %v, want ErrUnknownUser", err)
	}
	if err := s.Delete("alice"); err != nil {
		t.Fatalf("Delete(alice) returned error: %v", err)
	}
	if s.Exists("alice") {
		t.Error("alice should be gone")
	}
	if s.Authenticate("alice", "pw") {
		t.Error("deleted user must not authenticate")
	}
	if !s.Exists(RootName) {
		t.Error("root must survive")
	}
}

func TestStore_SetPassword(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.SetPassword(RootName, "newpass"); err != nil {
		t.Fatalf("SetPassword() returned error: %v", err)
	}
	if s.Authenticate(RootName, "toor") {
		t.Error("old password should no longer work")
	}
	if !s.Authenticate(RootName, "newpass") {
		t.Error("new password should work")
	}
	if err := s.SetPassword("ghost", "x"); !errors.Is(err, ErrUnknownUser) {
		t.Errorf("SetPassword(ghost) = %v, want ErrUnknownUser", err)
	}
}

func TestStore_PasswdAndGroup(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Add("alice", "pw"); err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	wantPasswd := "root:x:0:0:root:/root:/bin/bash\n" +
		"alice:x:1000:1000::/home/alice:/bin/bash\n"
	if got := s.Passwd(); got != wantPasswd {
		t.Errorf("Passwd() = %q, want %q", got, wantPasswd)
	}

	group := s.Group()
	for _, line := range []string{"root:x:0:", "alice:x:1000:", "wheel:x:998:root"} {
		if !strings.Contains(group, line+"\n") {
			t.Errorf("Group() missing line %q in:\n%s", line, group)
		}
	}
}

func TestHome(t *testing.T) {
	t.Parallel()

	if got := Home(RootName); got != "/root" {
		t.Errorf("Home(root) = %q", got)
	}
	if got := Home("alice"); got != "/home/alice" {
		t.Errorf("Home(alice) = %q", got)
	}
}

func TestValidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"alice", true},
		{"_svc", true},
		{"dev-2", true},
		{"Bob", false},
		{"Bad:Name", false},
		{"9lives", false},
		{"", false},
		{strings.Repeat("a", 33), false},
	}

	for _, tt := range tests {
		if got := ValidName(tt.name); got != tt.want {
			t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
