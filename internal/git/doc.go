// Package git wraps the Git CLI commands used by cargo-recent.
// It resolves the repository root and lists uncommitted changes
// without depending on other internal packages.
package git
