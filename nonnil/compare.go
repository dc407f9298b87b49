package nonnil

// Handles are transparent for comparison purposes: every operation below
// produces exactly what comparing the underlying values would produce.
// Equal and Less are the primitives; the remaining operations are derived
// mechanically from them so the six relations can never disagree. Each
// operation comes in three operand shapes, since either side may or may
// not be wrapped.

// Equal reports whether two handles wrap equal underlying values.
func Equal[P Pointer[P, E], E any](a, b NonNil[P, E]) bool {
	return a.ptr == b.ptr
}

// EqualNullable reports whether a handle wraps a value equal to b.
func EqualNullable[P Pointer[P, E], E any](a NonNil[P, E], b P) bool {
	return a.ptr == b
}

// NullableEqual reports whether a equals the value wrapped by a handle.
func NullableEqual[P Pointer[P, E], E any](a P, b NonNil[P, E]) bool {
	return a == b.ptr
}

// Less reports whether a's underlying value orders before b's.
func Less[P Pointer[P, E], E any](a, b NonNil[P, E]) bool {
	return a.ptr.Less(b.ptr)
}

// LessNullable reports whether a's underlying value orders before b.
func LessNullable[P Pointer[P, E], E any](a NonNil[P, E], b P) bool {
	return a.ptr.Less(b)
}

// NullableLess reports whether a orders before b's underlying value.
func NullableLess[P Pointer[P, E], E any](a P, b NonNil[P, E]) bool {
	return a.Less(b.ptr)
}

// NotEqual is the negation of Equal.
func NotEqual[P Pointer[P, E], E any](a, b NonNil[P, E]) bool {
	return !Equal(a, b)
}

// NotEqualNullable is the negation of EqualNullable.
func NotEqualNullable[P Pointer[P, E], E any](a NonNil[P, E], b P) bool {
	return !EqualNullable(a, b)
}

// NullableNotEqual is the negation of NullableEqual.
func NullableNotEqual[P Pointer[P, E], E any](a P, b NonNil[P, E]) bool {
	return !NullableEqual(a, b)
}

// Greater is Less with the operands flipped.
func Greater[P Pointer[P, E], E any](a, b NonNil[P, E]) bool {
	return Less(b, a)
}

// GreaterNullable is LessNullable with the operands flipped.
func GreaterNullable[P Pointer[P, E], E any](a NonNil[P, E], b P) bool {
	return NullableLess(b, a)
}

// NullableGreater is NullableLess with the operands flipped.
func NullableGreater[P Pointer[P, E], E any](a P, b NonNil[P, E]) bool {
	return LessNullable(b, a)
}

// LessOrEqual is the negation of Greater.
func LessOrEqual[P Pointer[P, E], E any](a, b NonNil[P, E]) bool {
	return !Greater(a, b)
}

// LessOrEqualNullable is the negation of GreaterNullable.
func LessOrEqualNullable[P Pointer[P, E], E any](a NonNil[P, E], b P) bool {
	return !GreaterNullable(a, b)
}

// NullableLessOrEqual is the negation of NullableGreater.
func NullableLessOrEqual[P Pointer[P, E], E any](a P, b NonNil[P, E]) bool {
	return !NullableGreater(a, b)
}

// GreaterOrEqual is the negation of Less.
func GreaterOrEqual[P Pointer[P, E], E any](a, b NonNil[P, E]) bool {
	return !Less(a, b)
}

// GreaterOrEqualNullable is the negation of LessNullable.
func GreaterOrEqualNullable[P Pointer[P, E], E any](a NonNil[P, E], b P) bool {
	return !LessNullable(a, b)
}

// NullableGreaterOrEqual is the negation of NullableLess.
func NullableGreaterOrEqual[P Pointer[P, E], E any](a P, b NonNil[P, E]) bool {
	return !NullableLess(a, b)
}
