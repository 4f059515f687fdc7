package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotRepository reports that a directory is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// RepoRoot resolves the root of the work tree containing dir.
// Returns ErrNotRepository when dir is outside any git work tree.
func RepoRoot(dir string) (string, error) {
	out, err := outputQuiet(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	return strings.TrimSpace(out), nil
}

// DiffNames lists the paths, relative to root, that differ between the
// working tree and the last commit. An empty result means nothing changed
// and is not an error.
func DiffNames(root string) ([]string, error) {
	out, err := outputQuiet(root, "diff", "--name-only", "HEAD")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// outputQuiet executes a git command and returns its stdout without printing
// to the console. Stderr is captured and included in the error on failure.
func outputQuiet(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}
