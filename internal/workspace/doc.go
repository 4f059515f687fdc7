// Package workspace ties the change lister, package locator, and recency
// selector together. It resolves the repository root once per invocation and
// exposes the selection pipeline behind the Context type.
package workspace
