// Package nonnil provides a non-nullable wrapper for pointer-like values.
// A NonNil handle stores exactly the underlying pointer-like value and
// forwards dereferencing, comparison, and hashing to it; the non-null
// invariant is established once, at construction, and never needs to be
// re-established afterward.
//
// The wrapper composes with plain Go pointers (via Raw), with the unique
// and shared packages in this module, and with any user-defined smart
// pointer implementing the Pointer contract. Ownership semantics are
// entirely those of the wrapped type: wrapping adds the guarantee, not
// behavior.
//
// There is deliberately no boolean accessor and no nil-accepting
// constructor: code that would test a handle for nilness, or build one
// from nothing, does not compile.
package nonnil

import "fmt"

// NonNil wraps a pointer-like value that is guaranteed not to be in its
// null-equivalent state. A handle is used exactly like the value it
// wraps: it dereferences, compares, hashes, and converts the same way.
//
// Handles are comparable whenever P is, so they work directly as map
// keys. Copying a handle copies the underlying value per that type's own
// semantics (a Raw handle is a free view, a shared.Ptr handle is a borrow
// unless cloned, a unique.Ptr handle should be moved with Take).
//
// The zero value of NonNil is invalid; it can only arise outside the
// constructors, and the deref guard reports it (see guard_enabled.go).
// NonNil itself does not satisfy the Pointer contract, so handles cannot
// be nested.
type NonNil[P Pointer[P, E], E any] struct {
	ptr P
}

// New wraps a pointer-like value, checking it against the null-equivalent
// (zero) value of its type. This is the sole checked entry point: a zero
// input is a contract violation, reported through the violation handler
// with the caller's file and line. See also Trust, Of, and the factories
// in the unique and shared packages, which are non-null by construction.
//
// The element type cannot be inferred from the pointer-like value alone,
// so it is the leading, explicit type argument:
//
//	h := nonnil.New[int](nonnil.RawOf(&v))
func New[E any, P Pointer[P, E]](ptr P) NonNil[P, E] {
	var zero P

	if ptr == zero {
		fail(failSkipCaller, "constructed from nil pointer-like value")
	}

	return NonNil[P, E]{ptr: ptr}
}

// Trust wraps a pointer-like value without checking it. It exists for
// producers whose result is provably non-null (freshly allocated cells,
// control-block-preserving casts); passing a zero value breaks the
// invariant the rest of the package relies on. As with New, the element
// type is the leading, explicit type argument.
func Trust[E any, P Pointer[P, E]](ptr P) NonNil[P, E] {
	return NonNil[P, E]{ptr: ptr}
}

// Ref is a handle over a plain Go pointer.
type Ref[E any] = NonNil[Raw[E], E]

// Of heap-allocates v and returns a raw handle to the new cell. The
// result is non-null by construction, so no check runs. This replaces
// taking the address of an object by hand.
func Of[E any](v E) Ref[E] {
	return Ref[E]{ptr: Raw[E]{p: &v}}
}

// Addr wraps an existing plain pointer, checking it for nil.
func Addr[E any](p *E) Ref[E] {
	if p == nil {
		fail(failSkipCaller, "constructed from nil pointer")
	}

	return Ref[E]{ptr: Raw[E]{p: p}}
}

// Deref returns the address of the pointee. Always safe on a handle
// built through this package's constructors.
func (n NonNil[P, E]) Deref() *E {
	if guardEnabled {
		var zero P

		if n.ptr == zero {
			fail(failSkipCaller, "deref of invalid zero handle")
		}
	}

	return n.ptr.Deref()
}

// AsNullable copies the underlying pointer-like value back out, for
// interoperating with code that expects the nullable type.
func (n NonNil[P, E]) AsNullable() P {
	return n.ptr
}

// String formats the handle as the underlying value would format.
func (n NonNil[P, E]) String() string {
	return fmt.Sprintf("%v", n.ptr)
}

// Take moves the underlying value out of the handle, leaving the handle
// in the moved-from (zero) state. The source must not be used again.
// For Raw handles taking is bitwise identical to copying, which is why
// no separate rule forbids it.
func Take[P Pointer[P, E], E any](n *NonNil[P, E]) P {
	var zero P

	out := n.ptr
	n.ptr = zero

	return out
}

// Adapt builds a handle over Q from a handle over P, using the underlying
// types' own conversion. The source already guarantees non-nullness, so
// no check runs; conv must preserve it (converting a non-null value must
// yield a non-null value, which every pointer conversion does).
//
// Only the target element type needs spelling out; the rest is inferred:
//
//	narrowed := nonnil.Adapt[int](h, func(r Raw[wide]) Raw[int] { ... })
func Adapt[F any, Q Pointer[Q, F], P Pointer[P, E], E any](src NonNil[P, E], conv func(P) Q) NonNil[Q, F] {
	return NonNil[Q, F]{ptr: conv(src.ptr)}
}

// AdaptMove is Adapt for move-only underlying types: the source handle is
// moved from before conversion and must not be used again.
func AdaptMove[F any, Q Pointer[Q, F], P Pointer[P, E], E any](src *NonNil[P, E], conv func(P) Q) NonNil[Q, F] {
	return NonNil[Q, F]{ptr: conv(Take(src))}
}
