package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Filename is the manifest file name looked for in each candidate directory.
const Filename = "Cargo.toml"

// ErrMalformed reports a manifest that exists but cannot serve as a package
// declaration: unparsable TOML, or a [package] section without a name.
var ErrMalformed = errors.New("malformed manifest")

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // manifest path derived from directory walk
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses and validates Cargo.toml content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func validate(m *Manifest) error {
	if m.Package != nil && m.Package.Name == "" {
		return fmt.Errorf("%w: package name is required", ErrMalformed)
	}
	return nil
}
