// Package recency picks the crate owning the most recently modified changed
// file, with a deterministic tie-break so repeated runs on the same
// filesystem state agree.
package recency
