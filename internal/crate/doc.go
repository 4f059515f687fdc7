// Package crate resolves file ownership in a Cargo workspace: given a file,
// it finds the nearest enclosing directory whose manifest declares a package.
package crate
