package helper

import (
	"fmt"
	"sync"
)

// GetTypedValueOf2 asserts the result of a comma-ok getter to the expected type T.
// ok is false when the getter misses or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// LoadTyped loads key from m as a T.
func LoadTyped[T any](m *sync.Map, key any) (T, bool) {
	return GetTypedValueOf2[T](func() (any, bool) {
		return m.Load(key)
	})
}

// MustLoadOrStoreTyped is sync.Map.LoadOrStore with the stored value asserted to T.
// It panics if the map holds a value of another type under key, which means
// two callers disagree on what the map contains.
func MustLoadOrStoreTyped[T any](m *sync.Map, key any, value T) (actual T, loaded bool) {
	raw, loaded := m.LoadOrStore(key, value)
	actual, ok := raw.(T)
	if !ok {
		panic(fmt.Errorf("unexpected type in map for key %v: %T", key, raw))
	}
	return actual, loaded
}
