// Package store provides the generic in-memory collections the demo
// applications are built on: a keyed repository enforcing uniqueness and
// existence contracts, and an append-only record log. It abstracts the
// storage mechanism from the application's core logic so the domain rules
// stay independent of how collections are held or persisted.
package store
