package crate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poi2/cargo-recent/internal/manifest"
)

// Crate identifies a resolved crate.
type Crate struct {
	Dir  string // absolute directory containing the crate's Cargo.toml
	Name string // declared package name
}

// ErrNoManifest reports that no directory between a file and the repository
// root declares a package. The file belongs to no crate.
var ErrNoManifest = errors.New("no enclosing package manifest")

// Locate resolves the crate owning file by walking from the file's directory
// up to root (inclusive) and stopping at the nearest directory whose
// Cargo.toml declares a [package]. Workspace-only manifests are transparent:
// the walk continues past them, so a workspace root is never an owner.
//
// Both root and file must be absolute, with file inside root. A manifest that
// exists but cannot declare a package (manifest.ErrMalformed) aborts the walk,
// because ownership cannot be decided safely.
func Locate(root, file string) (*Crate, error) {
	dir := filepath.Dir(file)
	for {
		path := filepath.Join(dir, manifest.Filename)
		if _, err := os.Stat(path); err == nil {
			m, err := manifest.Load(path)
			if err != nil {
				return nil, err
			}
			if m.IsPackage() {
				return &Crate{Dir: dir, Name: m.Name()}, nil
			}
		}
		if dir == root {
			return nil, fmt.Errorf("%w: %s", ErrNoManifest, file)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root without hitting the repository root.
			return nil, fmt.Errorf("%w: %s", ErrNoManifest, file)
		}
		dir = parent
	}
}
