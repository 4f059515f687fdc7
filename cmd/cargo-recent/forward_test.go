package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/poi2/cargo-recent/internal/testutil"
)

// fakeCargo puts a stub cargo executable on PATH that exits with the given
// code, so forwarding can be tested without a Rust toolchain.
func fakeCargo(t *testing.T, exitCode int) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\nexit " + strconv.Itoa(exitCode) + "\n"
	if err := os.WriteFile(filepath.Join(dir, "cargo"), []byte(script), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestBuildCargoArgs(t *testing.T) {
	got := buildCargoArgs([]string{"test", "--release"}, "crate-a")
	want := []string{"test", "--release", "--package", "crate-a"}
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunForward_noChangesIsNoop(t *testing.T) {
	root := testutil.CreateWorkspace(t, "crate-a")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", root, "build"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("forward with no changes should succeed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestRunForward_echoesAndRunsCargo(t *testing.T) {
	fakeCargo(t, 0)
	root := testutil.CreateWorkspace(t, "crate-a", "crate-b")
	testutil.WriteFile(t, root, "crate-a/src/main.rs", "fn main() { edited(); }\n")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", root, "test", "--release"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("forward failed: %v", err)
	}
	want := "run: cargo test --release --package crate-a\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunForward_propagatesExitCode(t *testing.T) {
	fakeCargo(t, 3)
	root := testutil.CreateWorkspace(t, "crate-a")
	testutil.WriteFile(t, root, "crate-a/src/main.rs", "fn main() { edited(); }\n")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--root", root, "build"})

	err := cmd.Execute()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *exec.ExitError", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.ExitCode())
	}
}

func TestRunForward_noArgsPrintsHelp(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("bare invocation should print help: %v", err)
	}
	if !strings.Contains(buf.String(), "Usage:") {
		t.Errorf("expected help output, got %q", buf.String())
	}
}
