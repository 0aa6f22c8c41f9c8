package purefn

import (
	"github.com/on-the-ground/memo_ive_go/pure"
)

// Memoize0 evaluates fn immediately. On success every call returns that value.
// On failure calls retry, one at a time, until an attempt succeeds.
func Memoize0[O any](
	fn func() (O, error),
	opts ...pure.Option,
) func() (O, error) {
	return pure.Once(fn, opts...)
}

// Memoize1 caches fn's successful results per argument value.
// Errors reach the caller and are never cached.
// Argument keying follows pure.Memoize1: an unhashable dynamic value in an
// interface argument panics, and a NaN argument is never cached.
func Memoize1[I1 comparable, O any](
	fn func(I1) (O, error),
	opts ...pure.Option,
) func(I1) (O, error) {
	return pure.Keyed(fn, opts...)
}

// Memoize2 caches fn's successful results per distinct argument tuple.
func Memoize2[I1, I2 comparable, O any](
	fn func(I1, I2) (O, error),
	opts ...pure.Option,
) func(I1, I2) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.Keyed(func(k pure.Tuple2[I1, I2]) (O, error) {
		return fn(k.V1, k.V2)
	}, opts...)
	return func(i1 I1, i2 I2) (O, error) {
		return keyed(pure.Tuple2[I1, I2]{V1: i1, V2: i2})
	}
}

func Memoize3[I1, I2, I3 comparable, O any](
	fn func(I1, I2, I3) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.Keyed(func(k pure.Tuple3[I1, I2, I3]) (O, error) {
		return fn(k.V1, k.V2, k.V3)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		return keyed(pure.Tuple3[I1, I2, I3]{V1: i1, V2: i2, V3: i3})
	}
}

func Memoize4[I1, I2, I3, I4 comparable, O any](
	fn func(I1, I2, I3, I4) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3, I4) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.Keyed(func(k pure.Tuple4[I1, I2, I3, I4]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		return keyed(pure.Tuple4[I1, I2, I3, I4]{V1: i1, V2: i2, V3: i3, V4: i4})
	}
}

func Memoize5[I1, I2, I3, I4, I5 comparable, O any](
	fn func(I1, I2, I3, I4, I5) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3, I4, I5) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.Keyed(func(k pure.Tuple5[I1, I2, I3, I4, I5]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5) (O, error) {
		return keyed(pure.Tuple5[I1, I2, I3, I4, I5]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5})
	}
}

func Memoize6[I1, I2, I3, I4, I5, I6 comparable, O any](
	fn func(I1, I2, I3, I4, I5, I6) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3, I4, I5, I6) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.Keyed(func(k pure.Tuple6[I1, I2, I3, I4, I5, I6]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5, k.V6)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5, i6 I6) (O, error) {
		return keyed(pure.Tuple6[I1, I2, I3, I4, I5, I6]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5, V6: i6})
	}
}

func Memoize7[I1, I2, I3, I4, I5, I6, I7 comparable, O any](
	fn func(I1, I2, I3, I4, I5, I6, I7) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3, I4, I5, I6, I7) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.Keyed(func(k pure.Tuple7[I1, I2, I3, I4, I5, I6, I7]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5, k.V6, k.V7)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5, i6 I6, i7 I7) (O, error) {
		return keyed(pure.Tuple7[I1, I2, I3, I4, I5, I6, I7]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5, V6: i6, V7: i7})
	}
}

func Memoize8[I1, I2, I3, I4, I5, I6, I7, I8 comparable, O any](
	fn func(I1, I2, I3, I4, I5, I6, I7, I8) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3, I4, I5, I6, I7, I8) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.Keyed(func(k pure.Tuple8[I1, I2, I3, I4, I5, I6, I7, I8]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5, k.V6, k.V7, k.V8)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5, i6 I6, i7 I7, i8 I8) (O, error) {
		return keyed(pure.Tuple8[I1, I2, I3, I4, I5, I6, I7, I8]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5, V6: i6, V7: i7, V8: i8})
	}
}

func Memoize9[I1, I2, I3, I4, I5, I6, I7, I8, I9 comparable, O any](
	fn func(I1, I2, I3, I4, I5, I6, I7, I8, I9) (O, error),
	opts ...pure.Option,
) func(I1, I2, I3, I4, I5, I6, I7, I8, I9) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.Keyed(func(k pure.Tuple9[I1, I2, I3, I4, I5, I6, I7, I8, I9]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5, k.V6, k.V7, k.V8, k.V9)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5, i6 I6, i7 I7, i8 I8, i9 I9) (O, error) {
		return keyed(pure.Tuple9[I1, I2, I3, I4, I5, I6, I7, I8, I9]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5, V6: i6, V7: i7, V8: i8, V9: i9})
	}
}

// MemoizeN caches fn's successful results per argument sequence.
// Keys follow pure.Args.
func MemoizeN[O any](
	fn func(...any) (O, error),
	opts ...pure.Option,
) func(...any) (O, error) {
	if fn == nil {
		panic(pure.ErrNilFunction)
	}
	keyed := pure.KeyedArgs(func(a pure.Args) (O, error) {
		return fn(a.Values()...)
	}, opts...)
	return func(args ...any) (O, error) {
		return keyed(pure.ArgsOf(args...))
	}
}
