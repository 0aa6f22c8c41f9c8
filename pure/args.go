package pure

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Args is the cache key of a variadic call: an immutable, ordered sequence of
// argument values compared element-wise by value.
//
// Two Args are equal iff they have the same length and every element is equal
// in the same position. Each element is keyed as follows:
//   - nil and values of a comparable dynamic type are used as they are;
//   - other values implementing fmt.Stringer are keyed by their String() result;
//   - anything else, or a value not equal to itself such as NaN, makes the
//     whole Args unkeyable.
//
// The String() fallback trades precision for reach: two distinct
// non-comparable values of the same type that print alike share one cache
// entry. Give such arguments a String() that identifies them, or pass a
// comparable key instead. A Stringer key never collides with a plain string
// argument.
//
// An unkeyable Args equals nothing, itself included, so calls carrying one
// always miss. The zero Args is the empty sequence.
type Args struct {
	values    []any
	keys      []any
	hash      uint64
	unkeyable bool
}

// stringerKey keeps a String() fallback from colliding with a plain string argument.
type stringerKey string

var (
	seed      = maphash.MakeSeed()
	emptyHash = ArgsOf().hash
)

// ArgsOf composes a key from values. The slice is copied.
func ArgsOf(values ...any) Args {
	a := Args{
		values: slices.Clone(values),
		keys:   make([]any, len(values)),
	}

	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(values)))
	_, _ = d.Write(buf[:])

	for i, v := range values {
		k, ok := tableKey(v)
		if !ok {
			return Args{values: a.values, unkeyable: true}
		}
		a.keys[i] = k
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(seed, k))
		_, _ = d.Write(buf[:])
	}
	a.hash = d.Sum64()
	return a
}

func tableKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	if reflect.ValueOf(v).Comparable() {
		// NaN, alone or nested in a struct or array, never equals itself.
		if v != v {
			return nil, false
		}
		return v, true
	}
	if stringer, ok := v.(fmt.Stringer); ok {
		return stringerKey(stringer.String()), true
	}
	return nil, false
}

// Len is the number of arguments.
func (a Args) Len() int {
	return len(a.values)
}

// Values returns a copy of the arguments as they were supplied.
func (a Args) Values() []any {
	return slices.Clone(a.values)
}

// Keyable reports whether a can be used as a cache key.
func (a Args) Keyable() bool {
	return !a.unkeyable
}

// Hash combines the arity and the element hashes in order.
// It is stable within a process only.
func (a Args) Hash() uint64 {
	if a.unkeyable {
		return 0
	}
	if len(a.keys) == 0 {
		return emptyHash
	}
	return a.hash
}

// Equal reports whether a and b are the same argument sequence.
func (a Args) Equal(b Args) bool {
	if a.unkeyable || b.unkeyable {
		return false
	}
	if len(a.keys) != len(b.keys) || a.Hash() != b.Hash() {
		return false
	}
	for i := range a.keys {
		if a.keys[i] != b.keys[i] {
			return false
		}
	}
	return true
}

func (a Args) String() string {
	return fmt.Sprintf("Args%v", a.values)
}
