package shared

import "github.com/amp-labs/amp-nonnil/nonnil"

// Cast helpers. Each one converts through an aliased reference, so the
// result shares the original control block and the allocation stays alive
// exactly as long as any reference of any type remains.
//
// Upcast and Freeze return non-null handles: they cannot fail. DynamicCast
// returns the nullable Ptr, because a failed runtime type check is a
// legitimate outcome the caller must handle, not a contract violation.
// The asymmetry is deliberate.

// Upcast widens a handle so its element type becomes the interface I.
// The widen function is where the compiler checks the relationship: it
// receives the pointee address and returns it as I, so a type that does
// not implement I fails to compile at the call site. There is no runtime
// failure mode. The interface cell is freshly allocated but refers to the
// same pointee and shares the same control block.
//
//	animal := shared.Upcast(dog, func(d *Dog) Animal { return d })
func Upcast[I any, E any](n NonNil[E], widen func(*E) I) NonNil[I] {
	src := n.AsNullable()

	slot := new(I)
	*slot = widen(src.Deref())

	return nonnil.Trust[I](Alias(src, slot))
}

// DynamicCast narrows a handle whose element type is an interface down to
// the concrete pointee type To. On success the result refers to the very
// same cell and shares ownership; on failure it is the zero Ptr and the
// source handle is unaffected.
func DynamicCast[To any, From any](n NonNil[From]) Ptr[To] {
	src := n.AsNullable()

	target, ok := any(*src.Deref()).(*To)
	if !ok {
		return Ptr[To]{}
	}

	return Alias(src, target)
}

// View is a read-only companion to Ptr: it shares the control block and
// keeps the allocation alive, but exposes the pointee only by copy. Go
// has no const qualification; this is the nearest honest equivalent.
// A View obtained through Freeze is non-null for its whole lifetime.
type View[E any] struct {
	ctl *control
	p   *E
}

// Freeze acquires a read-only reference sharing the handle's lifetime.
// Balance it with Release.
func Freeze[E any](n NonNil[E]) View[E] {
	src := n.AsNullable()

	if src.ctl != nil {
		src.ctl.acquire()
	}

	return View[E]{ctl: src.ctl, p: src.p}
}

// Value copies the pointee out.
func (v View[E]) Value() E {
	return *v.p
}

// Writable converts the read-only reference back into a writable non-null
// handle, acquiring its own strong reference. This is the deliberate,
// named act of shedding read-only-ness.
func (v View[E]) Writable() NonNil[E] {
	if v.ctl == nil {
		nonnil.Fail("writable cast of zero view")

		var zero NonNil[E]

		return zero
	}

	v.ctl.acquire()

	return nonnil.Trust[E](Ptr[E]{ctl: v.ctl, p: v.p})
}

// Release drops the view's strong reference.
func (v View[E]) Release() {
	if v.ctl != nil {
		v.ctl.release()
	}
}
