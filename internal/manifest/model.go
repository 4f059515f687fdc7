package manifest

// Manifest represents a Cargo.toml file. A manifest declares a crate via
// [package], workspace membership via [workspace], or both.
type Manifest struct {
	Package   *Package   `toml:"package"`
	Workspace *Workspace `toml:"workspace"`
}

// Package is the [package] section declaring the crate's identity.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version,omitempty"`
	Edition string `toml:"edition,omitempty"`
}

// Workspace is the [workspace] section of a workspace root manifest.
type Workspace struct {
	Members []string `toml:"members,omitempty"`
}

// IsPackage reports whether the manifest declares a buildable crate.
func (m *Manifest) IsPackage() bool {
	return m.Package != nil
}

// IsWorkspaceRoot reports whether the manifest declares a workspace.
func (m *Manifest) IsWorkspaceRoot() bool {
	return m.Workspace != nil
}

// Name returns the declared crate name, or empty for workspace-only manifests.
func (m *Manifest) Name() string {
	if m.Package == nil {
		return ""
	}
	return m.Package.Name
}
