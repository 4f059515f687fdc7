package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// CreateWorkspace creates a git repository containing a cargo workspace with
// the given member crates, fully committed. Returns the repository root.
func CreateWorkspace(t *testing.T, crates ...string) string {
	t.Helper()
	root := resolvedTempDir(t)

	run(t, root, "git", "init", "-b", "main")
	run(t, root, "git", "config", "user.email", "test@example.com")
	run(t, root, "git", "config", "user.name", "Test")

	members := ""
	for _, c := range crates {
		members += "    \"" + c + "\",\n"
	}
	WriteFile(t, root, "Cargo.toml", "[workspace]\nmembers = [\n"+members+"]\n")
	for _, c := range crates {
		WriteCrate(t, root, c)
	}
	CommitAll(t, root, "initial commit")
	return root
}

// CreateCrateRepo creates a git repository whose root is a single committed
// crate (no workspace). Returns the repository root.
func CreateCrateRepo(t *testing.T, name string) string {
	t.Helper()
	root := resolvedTempDir(t)

	run(t, root, "git", "init", "-b", "main")
	run(t, root, "git", "config", "user.email", "test@example.com")
	run(t, root, "git", "config", "user.name", "Test")

	WriteFile(t, root, "Cargo.toml",
		"[package]\nname = \""+name+"\"\nversion = \"0.1.0\"\nedition = \"2021\"\n")
	WriteFile(t, root, "src/main.rs", "fn main() {}\n")
	CommitAll(t, root, "initial commit")
	return root
}

// WriteCrate writes a crate directory (Cargo.toml plus src/main.rs) named
// after the crate under root, without committing it.
func WriteCrate(t *testing.T, root, name string) {
	t.Helper()
	WriteFile(t, root, filepath.Join(name, "Cargo.toml"),
		"[package]\nname = \""+name+"\"\nversion = \"0.1.0\"\nedition = \"2021\"\n")
	WriteFile(t, root, filepath.Join(name, "src", "main.rs"), "fn main() {}\n")
}

// WriteFile writes content to rel under root, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// Touch forces the modification time of rel under root, so tests control
// recency ordering instead of depending on filesystem clock resolution.
func Touch(t *testing.T, root, rel string, at time.Time) {
	t.Helper()
	if err := os.Chtimes(filepath.Join(root, rel), at, at); err != nil {
		t.Fatal(err)
	}
}

// CommitAll stages and commits everything in the repository.
func CommitAll(t *testing.T, dir, message string) {
	t.Helper()
	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "commit", "-m", message)
}

// resolvedTempDir returns a temp dir with symlinks resolved, so paths compare
// equal to what git rev-parse --show-toplevel reports (macOS /var -> /private/var).
func resolvedTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
