// Package purefn memoizes pure functions that can fail.
//
// A function returning (O, error) can be pure in what it returns on success
// while its failures are transient, like a lookup against a read-only source
// that may time out. Package purefn caches the successes and never the failures:
//
//	→ a non-nil error reaches the caller unchanged;
//	→ nothing is stored for that input, so the next call tries again.
//
// Features:
//   - Memoize0: eager evaluation at wrap time, with locked retries if it failed.
//   - Memoize1 to Memoize9: typed memoizers keyed like their package pure counterparts.
//   - MemoizeN: variadic memoizer keyed by pure.Args.
//   - All pure.Option values apply (logger, name, strict mode, observers).
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package purefn
