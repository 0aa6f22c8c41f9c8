// Package pure memoizes pure functions by their input values.
//
// Memoizing is a claim about the function, not an optimization switch:
//
//	→ "Does this function always return the same result for the same arguments?"
//	→ "Is it fine for its side effects, if any, to happen once per distinct input?"
//
// If both answers are yes, the function can be treated as a lazily filled table.
//
// Entry points:
//   - Memoize0: evaluates eagerly, at wrap time. Concurrent callers all read the same value.
//   - Memoize1 to Memoize9: typed memoizers keyed by the argument or by a TupleN of the arguments.
//   - MemoizeN: variadic memoizer keyed by Args, an ordered sequence with value equality.
//   - Keyed and KeyedArgs: the generic wrappers the entry points are built on.
//
// Results are kept for the lifetime of the returned function. Nothing is ever
// evicted, and a computation that panics leaves nothing behind.
//
// Concurrent misses on the same key may compute more than once. Every caller
// still returns the first stored value. Pass WithStrict to compute at most once
// per key.
//
// Package purefn has the same entry points for functions returning an error.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package pure
