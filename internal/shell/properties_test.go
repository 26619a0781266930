// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/bootcampos/bootcamp/internal/users"
)

func TestMkdirThenLs_ListsOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cwd  string
		dirs []string
	}{
		{"single at root", "/", []string{"projects"}},
		{"several at root", "/", []string{"b", "a", "c"}},
		{"nested cwd", "/home", []string{"alice", "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestShell(t, "")
			ts.mustRun(t, "cd "+tt.cwd)
			for _, d := range tt.dirs {
				ts.mustRun(t, "mkdir "+d)
			}
			out := ts.mustRun(t, "ls")
			for _, d := range tt.dirs {
				if n := countLine(out, d+"/"); n != 1 {
					t.Errorf("ls listed %q %d times, want 1 (output %q)", d+"/", n, out)
				}
			}
			got := lines(out)
			if !slices.IsSorted(got) {
				t.Errorf("ls output %v is not sorted", got)
			}
		})
	}
}

func TestRmThenCat_NotFound(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	ts.mustRun(t, "touch notes.txt")
	if out := ts.mustRun(t, "rm notes.txt"); out != "Removed: notes.txt\n" {
		t.Errorf("rm output = %q", out)
	}

	if _, err := ts.run(t, "cat notes.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cat after rm error = %v, want ErrNotFound", err)
	}
	if out := ts.mustRun(t, "ls"); countLine(out, "notes.txt") != 0 {
		t.Errorf("ls after rm still shows the file: %q", out)
	}
}

func TestRm_DirectoryIsRecursiveAndRepairsCwd(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	ts.mustRun(t, "mkdir /var/cache")
	ts.mustRun(t, "touch /var/cache/pkg")
	ts.mustRun(t, "cd /var/cache")
	ts.mustRun(t, "rm /var")

	if ts.session.Cwd() != "/" {
		t.Errorf("Cwd() = %q, want / after removing an ancestor", ts.session.Cwd())
	}
	if _, err := ts.run(t, "cat /var/cache/pkg"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cat under removed tree error = %v, want ErrNotFound", err)
	}
}

func TestRm_RootRefused(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	if _, err := ts.run(t, "rm /"); !errors.Is(err, ErrInvalidUsage) {
		t.Errorf("rm / error = %v, want ErrInvalidUsage", err)
	}
	if !ts.session.FS.IsDir("/home") {
		t.Error("rm / removed the tree")
	}
}

func TestTouchTwice_AlreadyExistsKeepsContent(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	ts.mustRun(t, "touch todo")
	if err := ts.session.FS.WriteFile("/todo", "buy milk"); err != nil {
		t.Fatalf("WriteFile() returned error: %v", err)
	}

	out, err := ts.run(t, "touch todo")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second touch error = %v, want ErrAlreadyExists", err)
	}
	if out != "File already exists: todo\n" {
		t.Errorf("second touch output = %q", out)
	}
	if got := ts.mustRun(t, "cat todo"); got != "buy milk\n" {
		t.Errorf("cat after second touch = %q, want %q", got, "buy milk\n")
	}
}

func TestCdDotDot(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	ts.mustRun(t, "cd ..")
	if ts.session.Cwd() != "/" {
		t.Errorf("cd .. at root moved to %q", ts.session.Cwd())
	}

	ts.mustRun(t, "cd /usr/bin")
	ts.mustRun(t, "cd ..")
	if ts.session.Cwd() != "/usr" {
		t.Errorf("Cwd() = %q, want /usr", ts.session.Cwd())
	}
	ts.mustRun(t, "cd")
	if ts.session.Cwd() != "/" {
		t.Errorf("cd without argument left cwd at %q", ts.session.Cwd())
	}
}

func TestPacmanInstallTwice(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	out := ts.mustRun(t, "pacman -S vim")
	if !strings.Contains(out, "Installing vim...\nvim installed successfully.\n") {
		t.Errorf("first install output = %q", out)
	}
	if !strings.Contains(out, "Total Installed Size: 3.0 MiB") {
		t.Errorf("first install output lacks the size summary: %q", out)
	}

	out, err := ts.run(t, "pacman -S vim")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second install error = %v, want ErrAlreadyExists", err)
	}
	if out != "vim is already installed.\n" {
		t.Errorf("second install output = %q", out)
	}

	n := 0
	for _, name := range ts.session.Packages.InstalledNames() {
		if name == "vim" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("vim installed %d times, want 1", n)
	}
}

func TestSu(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "secret\nwrong\n")
	ts.mustRun(t, "useradd alice")

	out, err := ts.run(t, "su alice")
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("su with wrong password error = %v, want ErrAuthentication", err)
	}
	if !strings.HasSuffix(out, "Incorrect password.\n") {
		t.Errorf("su output = %q", out)
	}
	if ts.session.User() != users.RootName {
		t.Errorf("User() = %q after failed su, want root", ts.session.User())
	}

	ts.mustRun(t, "su")
	if ts.session.User() != users.RootName {
		t.Errorf("User() = %q after su, want root", ts.session.User())
	}
}

func TestSu_NoArgumentAlwaysRoot(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "pw\npw\n")
	ts.mustRun(t, "useradd bob")
	ts.mustRun(t, "su bob")
	if ts.session.User() != "bob" {
		t.Fatalf("User() = %q, want bob", ts.session.User())
	}

	ts.mustRun(t, "su")
	if ts.session.User() != users.RootName {
		t.Errorf("User() = %q, want root", ts.session.User())
	}
}

func TestTimedatectlSetTimeThenDate(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	out := ts.mustRun(t, "timedatectl set-time 2024-01-01 00:00:00")
	if out != "System time set to: Mon 2024-01-01 00:00:00 UTC\n" {
		t.Errorf("set-time output = %q", out)
	}
	if got := ts.mustRun(t, "date"); got != "Mon Jan 01 00:00:00 UTC 2024\n" {
		t.Errorf("date = %q, want %q", got, "Mon Jan 01 00:00:00 UTC 2024\n")
	}
}

func TestNanoThenCat_RoundTrip(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "hello\n")
	out := ts.mustRun(t, "nano file.txt")
	if !strings.HasPrefix(out, "Editing file.txt. Press Ctrl+C to save and exit.\n") {
		t.Errorf("nano output = %q", out)
	}
	if !strings.HasSuffix(out, "File file.txt saved.\n") {
		t.Errorf("nano output = %q", out)
	}
	if got := ts.mustRun(t, "cat file.txt"); got != "hello\n" {
		t.Errorf("cat = %q, want %q", got, "hello\n")
	}
}
