// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/bootcampos/bootcamp/internal/issue"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() returned error: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Hostname != "bootcamp" || cfg.RootPassword != "toor" {
		t.Errorf("identity defaults = %q/%q", cfg.Hostname, cfg.RootPassword)
	}
	if cfg.Boot.Ticks != 5 || cfg.Boot.TickDelay != 500*time.Millisecond {
		t.Errorf("boot defaults = %+v", cfg.Boot)
	}
	if cfg.Packages.Delay != time.Second || cfg.Packages.UpdateDelay != 2*time.Second {
		t.Errorf("package delays = %v/%v", cfg.Packages.Delay, cfg.Packages.UpdateDelay)
	}
	if len(cfg.Packages.Catalog) != 9 || len(cfg.Packages.Installed) != 3 {
		t.Errorf("package sets = %v / %v", cfg.Packages.Catalog, cfg.Packages.Installed)
	}
	if cfg.UI.Color != ColorAuto || cfg.UI.Verbose {
		t.Errorf("ui defaults = %+v", cfg.UI)
	}
	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("DefaultConfig() is invalid: %v", errs)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("loadWithOptions() returned error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want none", path)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
hostname: "lab"
boot: tick_delay: "0s"
packages: {
	installed: ["base", "vim"]
	progress: true
}
ui: color: "never"
`)

	cfg, err := NewLoader().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	want := DefaultConfig()
	want.Hostname = "lab"
	want.Boot.TickDelay = 0
	want.Packages.Installed = []string{"base", "vim"}
	want.Packages.Progress = true
	want.UI.Color = ColorNever
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(`root_password: "hunter2"`), 0o644); err != nil {
		t.Fatalf("WriteFile() returned error: %v", err)
	}

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() returned error: %v", err)
	}
	if cfg.RootPassword != "hunter2" {
		t.Errorf("RootPassword = %q, want hunter2", cfg.RootPassword)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("resolved path = %q", path)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax error", `hostname: "lab`, "config.cue"},
		{"unknown field", `editor: "vim"`, "editor"},
		{"wrong type", `boot: ticks: "five"`, "boot.ticks"},
		{"bad duration", `packages: delay: "soon"`, "packages.delay"},
		{"bad color", `ui: color: "sometimes"`, "ui.color"},
		{"empty password", `root_password: ""`, "root_password"},
		{"installed not in catalog", `packages: installed: ["emacs"]`, `"emacs" is not in packages.catalog`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			_, err := NewLoader().Load(context.Background(), LoadOptions{ConfigFilePath: path})
			if err == nil {
				t.Fatal("Load() returned nil error")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Errorf("Load() error %T is not an ActionableError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoad_InvalidConfigIsTyped(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `packages: installed: ["emacs"]`)
	_, err := NewLoader().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrUnknownPackage) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig wrapping ErrUnknownPackage", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue")})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Load() error = %v, want config file not found", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLoader().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	want := DefaultConfig()
	want.Hostname = "roundtrip"
	want.Packages.Installed = []string{"git"}
	want.UI.Verbose = true

	path := writeConfig(t, GenerateCUE(want))
	got, err := NewLoader().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	opts := LoadOptions{ConfigDirPath: dir}

	path, created, err := CreateDefaultConfig(opts)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() returned error: %v", err)
	}
	if !created || path != filepath.Join(dir, "config.cue") {
		t.Errorf("CreateDefaultConfig() = %q, %v", path, created)
	}

	if _, created, err = CreateDefaultConfig(opts); err != nil || created {
		t.Errorf("second CreateDefaultConfig() = created %v, err %v; want existing file kept", created, err)
	}

	resolved, err := Path(opts)
	if err != nil || resolved != path {
		t.Errorf("Path() = %q, %v; want %q", resolved, err, path)
	}
}

func TestConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ConfigDir()
	if err != nil || got != dir {
		t.Errorf("ConfigDir() = %q, %v; want %q", got, err, dir)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME is only consulted on Linux and other unix systems")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if got != filepath.Join(xdg, AppName) {
		t.Errorf("ConfigDir() = %q", got)
	}
}

func TestLoader_Overrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `hostname: "classroom"`)
	cfg, err := NewLoader().Load(context.Background(), LoadOptions{
		ConfigFilePath: path,
		Overrides:      Overrides{Hostname: "lab", NoDelay: true},
	})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	want := DefaultConfig()
	want.Hostname = "lab"
	want.Boot.TickDelay = 0
	want.Packages.Delay = 0
	want.Packages.UpdateDelay = 0
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Boot.Ticks != 5 {
		t.Errorf("NoDelay must keep the boot ticks, got %d", cfg.Boot.Ticks)
	}
}

func TestLoader_InvalidOverride(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), LoadOptions{
		ConfigDirPath: t.TempDir(),
		Overrides:     Overrides{Hostname: "   "},
	})
	if !errors.Is(err, ErrInvalidHostname) {
		t.Fatalf("Load() error = %v, want ErrInvalidHostname", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Operation != "apply command line overrides" {
		t.Errorf("Load() error = %v, want an ActionableError for the overrides", err)
	}
}
