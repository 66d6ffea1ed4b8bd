// Package walk generates random word chains of an exact length.
//
// A walk starts at a word and takes exactly depth steps, each time moving to a
// uniformly chosen neighbor of the current tail that is not already on the chain.
// When the tail has no such neighbor (a dead end) the whole attempt is dropped and a
// new one starts from the beginning; there is no mid-walk backtracking. After
// MaxAttempts failed attempts the walk reports Exhausted. The attempt cap bounds the
// worst-case cost of a call at MaxAttempts·depth neighbor scans.
//
// Whole-attempt retry is a known limitation in sparse regions of the graph: a
// depth that is reachable only through a narrow branch may be missed within the cap.
// A depth-layered enumeration would always find it but would also change which
// chains are produced and how often.
//
// Randomness
//
//	Walkers own a *rand.Rand guarded by a mutex, so one Walker can serve concurrent
//	callers. WithSeed makes the sequence of walks reproducible for a fixed sequence
//	of calls; without it the generator is seeded from the clock.
package walk
