// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bootcampos/bootcamp/internal/session"

	"github.com/benbjohnson/clock"
	"golang.org/x/crypto/bcrypt"
)

type testShell struct {
	*Shell
	session *session.Session
	clock   *clock.Mock
	out     *bytes.Buffer
}

// newTestShell builds a shell whose interactive reads are served from input.
func newTestShell(t *testing.T, input string) *testShell {
	t.Helper()

	mock := clock.NewMock()
	mock.Set(time.Date(2021, 10, 21, 22, 50, 27, 0, time.UTC))
	sess, err := session.New(session.Options{Clock: mock, HashCost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("session.New() returned error: %v", err)
	}

	var out bytes.Buffer
	sh := New(Options{
		Session:  sess,
		Prompter: session.NewLinePrompter(strings.NewReader(input), &out),
		Stdout:   &out,
	})
	return &testShell{Shell: sh, session: sess, clock: mock, out: &out}
}

// run executes line and returns what it printed.
func (ts *testShell) run(t *testing.T, line string) (string, error) {
	t.Helper()

	ts.out.Reset()
	err := ts.Execute(context.Background(), line)
	return ts.out.String(), err
}

// mustRun executes line and fails the test if it returns an error.
func (ts *testShell) mustRun(t *testing.T, line string) string {
	t.Helper()

	out, err := ts.run(t, line)
	if err != nil {
		t.Fatalf("Execute(%q) returned error: %v (output %q)", line, err, out)
	}
	return out
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func countLine(out, want string) int {
	n := 0
	for _, l := range lines(out) {
		if l == want {
			n++
		}
	}
	return n
}

func TestExecute_BlankLine(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	for _, line := range []string{"", "   ", "\t"} {
		out, err := ts.run(t, line)
		if err != nil || out != "" {
			t.Errorf("Execute(%q) = %q, %v; want no output and nil", line, out, err)
		}
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	out, err := ts.run(t, "vim notes.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Execute() error = %v, want ErrNotFound", err)
	}
	want := "Command not found: vim. Try 'pacman -S vim' to install it.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecute_FailuresAreSingleLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		kind error
		want string
	}{
		{"mkdir", ErrInvalidUsage, "Usage: mkdir <directory_name>"},
		{"cat missing", ErrNotFound, "File not found: missing"},
		{"ls nowhere", ErrNotFound, "Directory not found: nowhere"},
		{"cd nowhere", ErrNotFound, "Directory not found: nowhere"},
		{"mkdir home", ErrAlreadyExists, "Directory already exists: home"},
		{"rm missing", ErrNotFound, "File or directory not found: missing"},
		{"grep x", ErrInvalidUsage, "Usage: grep <pattern> <file>"},
		{"timedatectl set-time tomorrow", ErrInvalidFormat, "Invalid time format. Use: YYYY-MM-DD HH:MM:SS"},
		{"pacman", ErrInvalidUsage, "Usage: pacman <operation> [...]"},
		{"pacman -S", ErrInvalidUsage, "Error: No targets specified"},
		{"pacman -Ss", ErrInvalidUsage, "Error: No search term specified"},
		{"pacman -X", ErrInvalidUsage, "Unknown operation: -X"},
		{"userdel root", ErrNotFound, "User root does not exist or cannot be deleted."},
		{"passwd ghost", ErrNotFound, "User ghost does not exist."},
		{"su ghost", ErrNotFound, "User ghost does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			ts := newTestShell(t, "")
			out, err := ts.run(t, tt.line)
			if !errors.Is(err, tt.kind) {
				t.Errorf("Execute(%q) error = %v, want kind %v", tt.line, err, tt.kind)
			}
			if out != tt.want+"\n" {
				t.Errorf("Execute(%q) output = %q, want %q", tt.line, out, tt.want+"\n")
			}
		})
	}
}

func TestRun_ExitStopsLoop(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	var out bytes.Buffer
	ts.hc.Stdout = &out
	ts.hc.Prompter = session.NewLinePrompter(strings.NewReader("mkdir docs\nbogus\nexit\nls\n"), &out)

	if err := ts.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "[root@bootcamp /]$ ") {
		t.Errorf("output %q lacks the prompt", got)
	}
	if !strings.Contains(got, "Command not found: bogus.") {
		t.Errorf("output %q lacks the unknown command line", got)
	}
	if !strings.HasSuffix(got, shutdownMessage+"\n") {
		t.Errorf("output %q does not end with the shutdown message", got)
	}
	if strings.Contains(got, "docs/") {
		t.Error("commands after exit were executed")
	}
}

func TestRun_EndOfInputShutsDown(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	var out bytes.Buffer
	ts.hc.Stdout = &out
	ts.hc.Prompter = session.NewLinePrompter(strings.NewReader("cd home"), &out)

	if err := ts.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if ts.session.Cwd() != "/home" {
		t.Errorf("Cwd() = %q, want /home (unterminated last line must run)", ts.session.Cwd())
	}
	if !strings.Contains(out.String(), "[root@bootcamp /home]$ ") {
		t.Errorf("prompt does not reflect cwd: %q", out.String())
	}
	if !strings.HasSuffix(out.String(), shutdownMessage+"\n") {
		t.Errorf("output %q does not end with the shutdown message", out.String())
	}
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	ts.hc.Prompter = session.NewLinePrompter(strings.NewReader("ls\n"), ts.out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ts.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestBoot(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	ts.boot = BootOptions{Ticks: DefaultBootTicks}

	if err := ts.Boot(context.Background()); err != nil {
		t.Fatalf("Boot() returned error: %v", err)
	}
	want := "Booting BootcampOS...\n.....\nWelcome to BootcampOS!\n" +
		"Type 'neofetch' for system info or 'help' for available commands.\n"
	if ts.out.String() != want {
		t.Errorf("Boot() output = %q, want %q", ts.out.String(), want)
	}
}

func TestBoot_WaitsOnClock(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, "")
	ts.boot = BootOptions{Ticks: 2, TickDelay: DefaultTickDelay}

	done := make(chan error, 1)
	go func() { done <- ts.Boot(context.Background()) }()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("Boot() returned error: %v", err)
			}
			if !strings.Contains(ts.out.String(), "..\nWelcome to BootcampOS!") {
				t.Errorf("Boot() output = %q, want two dots before the welcome line", ts.out.String())
			}
			return
		case <-deadline:
			t.Fatal("Boot() did not finish after the clock advanced")
		default:
			ts.clock.Add(DefaultTickDelay)
			time.Sleep(time.Millisecond)
		}
	}
}
