package pure

import (
	"github.com/rickb777/date/v2/timespan"
)

// Once is the zero-argument counterpart of Keyed.
//
// fn is evaluated immediately. If it succeeds, the returned function yields
// that value forever without synchronization. If it fails, each call retries
// under a lock until one attempt succeeds, and that result is kept.
// A panic in the eager evaluation propagates out of Once.
func Once[O any](fn func() (O, error), opts ...Option) func() (O, error) {
	if fn == nil {
		panic(ErrNilFunction)
	}
	cfg := newConfig(opts)
	p := newProbe(cfg)

	v, err := invoke(p, fn)
	if err == nil {
		return func() (O, error) {
			p.emit(EventHit, timespan.TimeSpan{})
			return v, nil
		}
	}

	retry := newMemoizer(
		func(struct{}) (O, error) { return fn() },
		NewSyncStore[struct{}, O](),
		func(struct{}) any { return struct{}{} },
		p,
		true,
	)
	return func() (O, error) {
		return retry.call(struct{}{})
	}
}
