package pure

// Tuple2 through Tuple9 are the cache keys of fixed-arity memoized functions.
// Field Vi holds the i-th argument, so equality is element-wise and order-sensitive.
type Tuple2[I1, I2 comparable] struct {
	V1 I1
	V2 I2
}

type Tuple3[I1, I2, I3 comparable] struct {
	V1 I1
	V2 I2
	V3 I3
}

type Tuple4[I1, I2, I3, I4 comparable] struct {
	V1 I1
	V2 I2
	V3 I3
	V4 I4
}

type Tuple5[I1, I2, I3, I4, I5 comparable] struct {
	V1 I1
	V2 I2
	V3 I3
	V4 I4
	V5 I5
}

type Tuple6[I1, I2, I3, I4, I5, I6 comparable] struct {
	V1 I1
	V2 I2
	V3 I3
	V4 I4
	V5 I5
	V6 I6
}

type Tuple7[I1, I2, I3, I4, I5, I6, I7 comparable] struct {
	V1 I1
	V2 I2
	V3 I3
	V4 I4
	V5 I5
	V6 I6
	V7 I7
}

type Tuple8[I1, I2, I3, I4, I5, I6, I7, I8 comparable] struct {
	V1 I1
	V2 I2
	V3 I3
	V4 I4
	V5 I5
	V6 I6
	V7 I7
	V8 I8
}

type Tuple9[I1, I2, I3, I4, I5, I6, I7, I8, I9 comparable] struct {
	V1 I1
	V2 I2
	V3 I3
	V4 I4
	V5 I5
	V6 I6
	V7 I7
	V8 I8
	V9 I9
}
