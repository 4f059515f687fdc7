package recency

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/poi2/cargo-recent/internal/crate"
)

// Candidate pairs a changed file with its owning crate.
type Candidate struct {
	Path    string    // absolute file path
	ModTime time.Time // filesystem modification time at selection time
	Crate   *crate.Crate
}

// Select returns the crate owning the candidate with the maximum modification
// time, or nil when there are no candidates. Ties on the timestamp break by
// lexicographic path order (smallest path wins), so the result depends only
// on filesystem state, never on input order.
func Select(cands []Candidate) *crate.Crate {
	if len(cands) == 0 {
		return nil
	}

	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	best := sorted[0]
	for _, c := range sorted[1:] {
		// Strictly after: on equal timestamps the earlier (smaller) path keeps
		// the slot.
		if c.ModTime.After(best.ModTime) {
			best = c
		}
	}
	return best.Crate
}

// IsBuildInput reports whether a changed path participates in selection.
// Only Rust sources and cargo manifests are considered; editing a README or
// CI config must not retarget the build.
func IsBuildInput(path string) bool {
	if strings.HasSuffix(path, ".rs") {
		return true
	}
	switch filepath.Base(path) {
	case "Cargo.toml", "Cargo.lock":
		return true
	}
	return false
}
