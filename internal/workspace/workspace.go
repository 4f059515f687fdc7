package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/poi2/cargo-recent/internal/crate"
	"github.com/poi2/cargo-recent/internal/git"
	"github.com/poi2/cargo-recent/internal/recency"
)

// Context holds the repository root resolved once for one invocation. All
// git queries and ancestry walks are anchored here, so the result does not
// depend on which subdirectory the tool was invoked from.
type Context struct {
	Root string
}

// Load resolves the repository root from dir (the --root argument).
func Load(dir string) (*Context, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving root argument: %w", err)
	}
	root, err := git.RepoRoot(abs)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved repository root", "root", root)
	return &Context{Root: root}, nil
}

// Changed returns the recency candidates for the current uncommitted edits:
// every changed build input that still exists on disk and has an owning
// crate. Files outside any package manifest are excluded, not errors; a
// malformed manifest on a changed file's ancestry aborts with
// manifest.ErrMalformed.
func (c *Context) Changed() ([]recency.Candidate, error) {
	files, err := git.DiffNames(c.Root)
	if err != nil {
		return nil, err
	}
	log.Debug("listed uncommitted changes", "root", c.Root, "files", len(files))

	var cands []recency.Candidate
	for _, rel := range files {
		if !recency.IsBuildInput(rel) {
			log.Debug("skipping non-build input", "file", rel)
			continue
		}
		abs := filepath.Join(c.Root, rel)
		info, err := os.Stat(abs)
		if err != nil {
			// Deleted from disk; it has no modification time to rank by.
			log.Debug("skipping missing file", "file", rel)
			continue
		}
		owner, err := crate.Locate(c.Root, abs)
		if err != nil {
			if errors.Is(err, crate.ErrNoManifest) {
				log.Debug("no owning crate", "file", rel)
				continue
			}
			return nil, err
		}
		log.Debug("candidate", "file", rel, "crate", owner.Name, "mtime", info.ModTime())
		cands = append(cands, recency.Candidate{Path: abs, ModTime: info.ModTime(), Crate: owner})
	}
	return cands, nil
}

// Recent returns the crate most recently touched by uncommitted edits, or
// nil when there is nothing to select. A nil crate with a nil error is the
// normal "no changes" state.
func (c *Context) Recent() (*crate.Crate, error) {
	cands, err := c.Changed()
	if err != nil {
		return nil, err
	}
	sel := recency.Select(cands)
	if sel != nil {
		log.Debug("selected crate", "name", sel.Name, "dir", sel.Dir)
	}
	return sel, nil
}
