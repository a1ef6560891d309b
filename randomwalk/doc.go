// Package randomwalk implements spec §4.F's random-walk engine:
// Walks generates up to Options.Count walks rooted at a given node, each
// walk at most Options.Length nodes, with a revisit policy, a minimum
// acceptance length, and optional edge-type interleaving.
//
// Determinism
//
//	Options.Seed drives a dedicated *rand.Rand per call to Walks; each of
//	the Options.Count walks gets its own derived stream (rng.go, adapted
//	from the teacher's SplitMix64 seed-mixing helpers) so a fixed seed
//	reproduces the exact same list of walks across runs.
package randomwalk
