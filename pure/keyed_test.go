package pure_test

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/on-the-ground/memo_ive_go/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var errBoom = errors.New("boom")

func callConcurrently(n int, release chan struct{}, call func()) {
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			call()
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
}

func TestMemoize1_StrictComputesOncePerKey(t *testing.T) {
	var count atomic.Int32
	release := make(chan struct{})
	memoized := pure.Memoize1(func(i int) int {
		count.Add(1)
		<-release
		return i * 2
	}, pure.WithStrict())

	callConcurrently(50, release, func() {
		assert.Equal(t, 14, memoized(7))
	})

	assert.Equal(t, int32(1), count.Load())
}

func TestMemoizeN_StrictComputesOncePerKey(t *testing.T) {
	var count atomic.Int32
	release := make(chan struct{})
	memoized := pure.MemoizeN(func(args ...any) int {
		count.Add(1)
		<-release
		return len(args)
	}, pure.WithStrict())

	callConcurrently(50, release, func() {
		assert.Equal(t, 3, memoized("a", 1, nil))
	})

	assert.Equal(t, int32(1), count.Load())
}

func TestMemoize1_BaselineCallersConvergeOnStoredValue(t *testing.T) {
	var count atomic.Int32
	release := make(chan struct{})
	memoized := pure.Memoize1(func(i int) *myObject {
		n := count.Add(1)
		<-release
		return &myObject{number: int(n)}
	})

	var mu sync.Mutex
	seen := map[*myObject]struct{}{}
	callConcurrently(20, release, func() {
		res := memoized(1)
		mu.Lock()
		seen[res] = struct{}{}
		mu.Unlock()
	})

	assert.GreaterOrEqual(t, count.Load(), int32(1))
	assert.Len(t, seen, 1, "every caller returns the first stored value")
}

func TestKeyed_ErrorsAreNotCached(t *testing.T) {
	stats := &pure.Stats{}
	fail := true
	count := 0
	keyed := pure.Keyed(func(k string) (int, error) {
		count++
		if fail {
			return 0, errBoom
		}
		return len(k), nil
	}, pure.WithStats(stats))

	_, err := keyed("abc")
	assert.ErrorIs(t, err, errBoom)

	fail = false
	v, err := keyed("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = keyed("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	assert.Equal(t, 2, count)
	assert.Equal(t, pure.StatsSummary{
		Hits:         1,
		Misses:       2,
		Computations: 1,
		Failures:     1,
		HitRatio:     1.0 / 3.0,
	}, stats.Summary())
}

func TestKeyed_StrictReleasesLockAfterFailure(t *testing.T) {
	count := 0
	keyed := pure.Keyed(func(k int) (int, error) {
		count++
		if count == 1 {
			return 0, errBoom
		}
		if count == 2 {
			panic("second attempt panics")
		}
		return k, nil
	}, pure.WithStrict())

	_, err := keyed(1)
	assert.ErrorIs(t, err, errBoom)
	assert.Panics(t, func() { _, _ = keyed(1) })

	v, err := keyed(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, count)
}

func TestObserver_EventSequence(t *testing.T) {
	var mu sync.Mutex
	var events []pure.Event
	obs := pure.ObserverFunc(func(e pure.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})

	memoized := pure.Memoize1(func(i int) int { return i }, pure.WithObserver(obs), pure.WithName("identity"))
	memoized(1)
	memoized(1)

	kinds := make([]pure.EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
		assert.Equal(t, "identity", e.Name)
		assert.NotEmpty(t, e.Memo)
	}
	assert.Equal(t, []pure.EventKind{pure.EventMiss, pure.EventComputation, pure.EventHit}, kinds)
	assert.False(t, events[1].Span.Start().IsZero(), "computations carry a time span")
	assert.GreaterOrEqual(t, events[1].Duration(), time.Duration(0))
}

func TestObserver_Memoize0(t *testing.T) {
	stats := &pure.Stats{}
	memoized := pure.Memoize0(func() string { return "v" }, pure.WithStats(stats))
	memoized()
	memoized()

	assert.Equal(t, int64(1), stats.Computations())
	assert.Equal(t, int64(2), stats.Hits())
}

func TestLogger_WarnsOnUnkeyableArguments(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	memoized := pure.MemoizeN(func(args ...any) int {
		return len(args)
	}, pure.WithLogger(zap.New(core)), pure.WithName("lookup"))

	memoized([]int{1, 2})

	warnings := logs.FilterMessage("arguments cannot form a cache key, calling through").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, zap.WarnLevel, warnings[0].Level)
	assert.Equal(t, "lookup", warnings[0].ContextMap()["name"])
	assert.Equal(t, int64(1), warnings[0].ContextMap()["arity"])

	assert.Equal(t, 1, logs.FilterMessage("computation finished").Len())
}

func TestLogger_ReportsFailures(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	keyed := pure.Keyed(func(k int) (int, error) {
		return 0, errBoom
	}, pure.WithLogger(zap.New(core)))

	_, _ = keyed(1)

	failures := logs.FilterMessage("computation failed, nothing cached").All()
	require.Len(t, failures, 1)
	assert.Equal(t, errBoom.Error(), failures[0].ContextMap()["error"])
}

func TestMemoize_NaNArgumentsAreNeverStored(t *testing.T) {
	stats := &pure.Stats{}
	count := 0
	m1 := pure.Memoize1(func(f float64) int {
		count++
		return 1
	}, pure.WithStats(stats))
	m2 := pure.Memoize2(func(s string, f float64) int {
		count++
		return 2
	}, pure.WithStats(stats))
	mn := pure.MemoizeN(func(args ...any) int {
		count++
		return len(args)
	}, pure.WithStats(stats))

	for range 5 {
		assert.Equal(t, 1, m1(math.NaN()))
		assert.Equal(t, 2, m2("a", math.NaN()))
		assert.Equal(t, 2, mn("a", math.NaN()))
	}

	assert.Equal(t, 15, count)
	assert.Equal(t, pure.StatsSummary{
		Computations: 15,
		Unkeyable:    15,
	}, stats.Summary())

	// ordinary keys on the same wrappers are still cached
	m1(1.5)
	m1(1.5)
	assert.Equal(t, 16, count)
	assert.Equal(t, int64(1), stats.Hits())
}

func TestMemoize1_NaNLogsKeyType(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	memoized := pure.Memoize1(func(f float64) float64 {
		return f
	}, pure.WithLogger(zap.New(core)))

	memoized(math.NaN())

	warnings := logs.FilterMessage("arguments cannot form a cache key, calling through").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "float64", warnings[0].ContextMap()["key_type"])
}

func TestMemoize1_UnhashableInterfaceArgumentPanics(t *testing.T) {
	memoized := pure.Memoize1(func(v any) int {
		return 1
	})

	assert.Equal(t, 1, memoized(1))
	assert.Panics(t, func() { memoized([]int{1}) })
}
