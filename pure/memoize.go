package pure

// Memoize0 evaluates fn once, immediately, and returns a function that always
// yields that value.
//
// Evaluation happens at wrap time rather than on first call, so concurrent
// callers never race and fn's side effects occur before Memoize0 returns.
// A panic in fn propagates out of Memoize0.
func Memoize0[O any](
	fn func() O,
	opts ...Option,
) func() O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	once := Once(func() (O, error) {
		return fn(), nil
	}, opts...)
	return func() O {
		o, _ := once()
		return o
	}
}

// Memoize1 caches fn's result per argument value.
//
// I1 may be an interface type, but the dynamic value passed in must then be
// comparable: a slice, map or func inside an interface argument is a caller
// error and the call panics, as it would when used as a map key. A float NaN
// argument is never cached and fn runs on each such call.
func Memoize1[I1 comparable, O any](
	fn func(I1) O,
	opts ...Option,
) func(I1) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(i1 I1) (O, error) {
		return fn(i1), nil
	}, opts...)
	return func(i1 I1) O {
		o, _ := keyed(i1)
		return o
	}
}

// Memoize2 caches fn's result per distinct argument tuple.
// Unhashable dynamic values in interface arguments panic and NaN arguments
// are never cached, as for Memoize1.
func Memoize2[I1, I2 comparable, O any](
	fn func(I1, I2) O,
	opts ...Option,
) func(I1, I2) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(k Tuple2[I1, I2]) (O, error) {
		return fn(k.V1, k.V2), nil
	}, opts...)
	return func(i1 I1, i2 I2) O {
		o, _ := keyed(Tuple2[I1, I2]{V1: i1, V2: i2})
		return o
	}
}

// Memoize3 is Memoize2 for 3 arguments.
func Memoize3[I1, I2, I3 comparable, O any](
	fn func(I1, I2, I3) O,
	opts ...Option,
) func(I1, I2, I3) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(k Tuple3[I1, I2, I3]) (O, error) {
		return fn(k.V1, k.V2, k.V3), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) O {
		o, _ := keyed(Tuple3[I1, I2, I3]{V1: i1, V2: i2, V3: i3})
		return o
	}
}

// Memoize4 is Memoize2 for 4 arguments.
func Memoize4[I1, I2, I3, I4 comparable, O any](
	fn func(I1, I2, I3, I4) O,
	opts ...Option,
) func(I1, I2, I3, I4) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(k Tuple4[I1, I2, I3, I4]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		o, _ := keyed(Tuple4[I1, I2, I3, I4]{V1: i1, V2: i2, V3: i3, V4: i4})
		return o
	}
}

// Memoize5 is Memoize2 for 5 arguments.
func Memoize5[I1, I2, I3, I4, I5 comparable, O any](
	fn func(I1, I2, I3, I4, I5) O,
	opts ...Option,
) func(I1, I2, I3, I4, I5) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(k Tuple5[I1, I2, I3, I4, I5]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5) O {
		o, _ := keyed(Tuple5[I1, I2, I3, I4, I5]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5})
		return o
	}
}

// Memoize6 is Memoize2 for 6 arguments.
func Memoize6[I1, I2, I3, I4, I5, I6 comparable, O any](
	fn func(I1, I2, I3, I4, I5, I6) O,
	opts ...Option,
) func(I1, I2, I3, I4, I5, I6) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(k Tuple6[I1, I2, I3, I4, I5, I6]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5, k.V6), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5, i6 I6) O {
		o, _ := keyed(Tuple6[I1, I2, I3, I4, I5, I6]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5, V6: i6})
		return o
	}
}

// Memoize7 is Memoize2 for 7 arguments.
func Memoize7[I1, I2, I3, I4, I5, I6, I7 comparable, O any](
	fn func(I1, I2, I3, I4, I5, I6, I7) O,
	opts ...Option,
) func(I1, I2, I3, I4, I5, I6, I7) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(k Tuple7[I1, I2, I3, I4, I5, I6, I7]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5, k.V6, k.V7), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5, i6 I6, i7 I7) O {
		o, _ := keyed(Tuple7[I1, I2, I3, I4, I5, I6, I7]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5, V6: i6, V7: i7})
		return o
	}
}

// Memoize8 is Memoize2 for 8 arguments.
func Memoize8[I1, I2, I3, I4, I5, I6, I7, I8 comparable, O any](
	fn func(I1, I2, I3, I4, I5, I6, I7, I8) O,
	opts ...Option,
) func(I1, I2, I3, I4, I5, I6, I7, I8) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(k Tuple8[I1, I2, I3, I4, I5, I6, I7, I8]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5, k.V6, k.V7, k.V8), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5, i6 I6, i7 I7, i8 I8) O {
		o, _ := keyed(Tuple8[I1, I2, I3, I4, I5, I6, I7, I8]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5, V6: i6, V7: i7, V8: i8})
		return o
	}
}

// Memoize9 is Memoize2 for 9 arguments.
func Memoize9[I1, I2, I3, I4, I5, I6, I7, I8, I9 comparable, O any](
	fn func(I1, I2, I3, I4, I5, I6, I7, I8, I9) O,
	opts ...Option,
) func(I1, I2, I3, I4, I5, I6, I7, I8, I9) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := Keyed(func(k Tuple9[I1, I2, I3, I4, I5, I6, I7, I8, I9]) (O, error) {
		return fn(k.V1, k.V2, k.V3, k.V4, k.V5, k.V6, k.V7, k.V8, k.V9), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4, i5 I5, i6 I6, i7 I7, i8 I8, i9 I9) O {
		o, _ := keyed(Tuple9[I1, I2, I3, I4, I5, I6, I7, I8, I9]{V1: i1, V2: i2, V3: i3, V4: i4, V5: i5, V6: i6, V7: i7, V8: i8, V9: i9})
		return o
	}
}

// MemoizeN caches fn's result per argument sequence. Calls of different
// lengths never share an entry, and the empty call is a valid key of its own.
//
// Arguments that are neither comparable nor fmt.Stringer make the call
// unkeyable: fn runs every time and a warning is logged. See Args.
func MemoizeN[O any](
	fn func(...any) O,
	opts ...Option,
) func(...any) O {
	if fn == nil {
		panic(ErrNilFunction)
	}
	keyed := KeyedArgs(func(a Args) (O, error) {
		return fn(a.Values()...), nil
	}, opts...)
	return func(args ...any) O {
		o, _ := keyed(ArgsOf(args...))
		return o
	}
}
