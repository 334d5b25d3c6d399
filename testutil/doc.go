// Package testutil provides deterministic helpers for tests and examples:
// a seeded, thread-safe random number generator and a labeled Gaussian
// cluster generator.
package testutil
