// Package core is built once by an ingestion collaborator (package ingest)
// and is never mutated by the ranking pipeline: adjacency assembly and the
// random walk only read it. Concurrent readers are therefore safe without
// any extra synchronization on the caller's part, and the RWMutex embedded
// in Graph exists only to make concurrent *construction* safe, not because
// the hot path needs it.
package core
