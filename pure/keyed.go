package pure

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// ErrNilFunction is the panic value when a nil function is memoized.
var ErrNilFunction = errors.New("pure: cannot memoize a nil function")

// Keyed memoizes fn by its key. It is the generic wrapper behind the
// fixed-arity entry points, which pack their arguments into a TupleN.
//
// A non-nil error is returned to the caller and nothing is stored, so the
// next call with an equal key computes again. Panics propagate the same way.
//
// A key that is not equal to itself, such as a float NaN or a TupleN holding
// one, can never be looked up again: fn runs on every such call, nothing is
// stored and the call is reported as EventUnkeyable.
func Keyed[K comparable, O any](fn func(K) (O, error), opts ...Option) func(K) (O, error) {
	if fn == nil {
		panic(ErrNilFunction)
	}
	cfg := newConfig(opts)
	m := newMemoizer(fn, NewSyncStore[K, O](), func(k K) any { return k }, newProbe(cfg), cfg.strict)
	return func(key K) (O, error) {
		if key != key {
			return m.callThrough(key, zap.String("key_type", fmt.Sprintf("%T", key)))
		}
		return m.call(key)
	}
}

// KeyedArgs memoizes fn by a variadic key. Unkeyable Args bypass the store.
func KeyedArgs[O any](fn func(Args) (O, error), opts ...Option) func(Args) (O, error) {
	if fn == nil {
		panic(ErrNilFunction)
	}
	cfg := newConfig(opts)
	m := newMemoizer(fn, NewArgsStore[O](), func(a Args) any { return a.Hash() }, newProbe(cfg), cfg.strict)
	return func(a Args) (O, error) {
		if !a.Keyable() {
			return m.callThrough(a, zap.Int("arity", a.Len()))
		}
		return m.call(a)
	}
}

// probe carries a wrapper's identity and reports what happens to it.
type probe struct {
	id        string
	name      string
	logger    *zap.Logger
	observers []Observer
}

func newProbe(cfg config) probe {
	id := uuid.NewString()
	return probe{
		id:        id,
		name:      cfg.name,
		logger:    cfg.logger.With(zap.String("memo", id), zap.String("name", cfg.name)),
		observers: cfg.observers,
	}
}

func (p probe) emit(kind EventKind, span timespan.TimeSpan) {
	if len(p.observers) == 0 {
		return
	}
	e := Event{Kind: kind, Memo: p.id, Name: p.name, Span: span}
	for _, o := range p.observers {
		o.Observe(e)
	}
}

// invoke runs fn and reports its outcome. A panic in fn is reported as a
// failure and keeps unwinding.
func invoke[O any](p probe, fn func() (O, error)) (res O, err error) {
	start := time.Now()
	completed := false
	defer func() {
		span := timespan.BetweenTimes(start, time.Now())
		switch {
		case !completed:
			p.logger.Debug("computation panicked, nothing cached", zap.Duration("took", span.Duration()))
			p.emit(EventFailure, span)
		case err != nil:
			p.logger.Debug("computation failed, nothing cached", zap.Error(err), zap.Duration("took", span.Duration()))
			p.emit(EventFailure, span)
		default:
			p.logger.Debug("computation finished", zap.Duration("took", span.Duration()))
			p.emit(EventComputation, span)
		}
	}()
	res, err = fn()
	completed = true
	return
}

type memoizer[K any, O any] struct {
	probe
	strict bool
	store  Store[K, O]

	// locks holds one mutex per lock key. Strict mode only.
	locks   sync.Map
	lockKey func(K) any

	fn func(K) (O, error)
}

func newMemoizer[K any, O any](
	fn func(K) (O, error),
	store Store[K, O],
	lockKey func(K) any,
	p probe,
	strict bool,
) *memoizer[K, O] {
	m := &memoizer[K, O]{
		probe:   p,
		strict:  strict,
		store:   store,
		lockKey: lockKey,
		fn:      fn,
	}
	m.logger.Debug("memoized function created", zap.Bool("strict", m.strict))
	return m
}

func (m *memoizer[K, O]) call(key K) (O, error) {
	if v, ok := m.store.Load(key); ok {
		m.emit(EventHit, timespan.TimeSpan{})
		return v, nil
	}
	if m.strict {
		return m.callExclusive(key)
	}
	m.emit(EventMiss, timespan.TimeSpan{})
	return m.compute(key)
}

// callExclusive re-checks the store under the key's lock, so concurrent
// misses on one key compute once.
func (m *memoizer[K, O]) callExclusive(key K) (O, error) {
	mu, _ := helper.MustLoadOrStoreTyped(&m.locks, m.lockKey(key), &sync.Mutex{})
	mu.Lock()
	defer mu.Unlock()

	if v, ok := m.store.Load(key); ok {
		m.emit(EventHit, timespan.TimeSpan{})
		return v, nil
	}
	m.emit(EventMiss, timespan.TimeSpan{})
	return m.compute(key)
}

// callThrough runs fn for a key that cannot be stored. Nothing is cached.
func (m *memoizer[K, O]) callThrough(key K, fields ...zap.Field) (O, error) {
	m.logger.Warn("arguments cannot form a cache key, calling through", fields...)
	m.emit(EventUnkeyable, timespan.TimeSpan{})
	return invoke(m.probe, func() (O, error) { return m.fn(key) })
}

// compute invokes fn and stores a successful result. When another caller
// stored first, its value is returned instead of ours.
func (m *memoizer[K, O]) compute(key K) (O, error) {
	v, err := invoke(m.probe, func() (O, error) { return m.fn(key) })
	if err != nil {
		return v, err
	}
	actual, _ := m.store.LoadOrStore(key, v)
	return actual, nil
}
