// SPDX-License-Identifier: MPL-2.0

package vfs

import "testing"

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cwd, arg, want string
	}{
		{cwd: "/", arg: "", want: "/"},
		{cwd: "/home", arg: "", want: "/home"},
		{cwd: "/home", arg: "alice", want: "/home/alice"},
		{cwd: "/home", arg: "/etc", want: "/etc"},
		{cwd: "/home/alice", arg: "..", want: "/home"},
		{cwd: "/", arg: "..", want: "/"},
		{cwd: "/", arg: "../../etc", want: "/etc"},
		{cwd: "/usr", arg: "./bin/.", want: "/usr/bin"},
		{cwd: "/usr", arg: "bin//", want: "/usr/bin"},
	}

	for _, tt := range tests {
		if got := Resolve(tt.cwd, tt.arg); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.cwd, tt.arg, got, tt.want)
		}
	}
}

func TestParentAndBase(t *testing.T) {
	t.Parallel()

	if got := Parent("/usr/bin"); got != "/usr" {
		t.Errorf("Parent(/usr/bin) = %q", got)
	}
	if got := Parent("/"); got != "/" {
		t.Errorf("Parent(/) = %q", got)
	}
	if got := Base("/usr/bin"); got != "bin" {
		t.Errorf("Base(/usr/bin) = %q", got)
	}
}

func TestIsWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p, dir string
		want   bool
	}{
		{p: "/home/alice", dir: "/home", want: true},
		{p: "/home", dir: "/home", want: true},
		{p: "/homework", dir: "/home", want: false},
		{p: "/etc", dir: "/", want: true},
	}
	for _, tt := range tests {
		if got := IsWithin(tt.p, tt.dir); got != tt.want {
			t.Errorf("IsWithin(%q, %q) = %v, want %v", tt.p, tt.dir, got, tt.want)
		}
	}
}
