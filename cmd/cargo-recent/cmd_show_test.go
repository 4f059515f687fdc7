package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/poi2/cargo-recent/internal/testutil"
)

func TestRunShow_noChanges(t *testing.T) {
	root := testutil.CreateWorkspace(t, "crate-a")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", root, "show"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

// Editing crate-a selects crate-a; a later edit in crate-b moves the
// selection to crate-b.
func TestRunShow_followsLatestEdit(t *testing.T) {
	root := testutil.CreateWorkspace(t, "crate-a", "crate-b")
	testutil.WriteFile(t, root, "crate-a/src/main.rs", "fn main() { a(); }\n")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", root, "show"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if buf.String() != "crate-a\n" {
		t.Errorf("output = %q, want %q", buf.String(), "crate-a\n")
	}

	testutil.WriteFile(t, root, "crate-b/src/main.rs", "fn main() { b(); }\n")
	testutil.Touch(t, root, "crate-a/src/main.rs", time.Now().Add(-time.Hour))

	buf.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", root, "show"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if buf.String() != "crate-b\n" {
		t.Errorf("output = %q, want %q", buf.String(), "crate-b\n")
	}
}

func TestRunShow_malformedManifest(t *testing.T) {
	root := testutil.CreateWorkspace(t, "crate-a")
	testutil.WriteFile(t, root, "crate-a/Cargo.toml", "[package]\nversion = \"0.1.0\"\n")
	testutil.WriteFile(t, root, "crate-a/src/main.rs", "fn main() { edited(); }\n")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--root", root, "show"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}
