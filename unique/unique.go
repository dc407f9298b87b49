// Package unique provides a unique-ownership pointer and its non-null
// factory. A unique.Ptr owns one heap cell; ownership transfers by
// moving, never by sharing. Wrap it in a handle (the NonNil alias) to
// add the non-null guarantee on top.
package unique

import (
	"fmt"

	"github.com/amp-labs/amp-nonnil/nonnil"
)

// Ptr owns a single heap cell exclusively. The zero value is the
// null-equivalent (owns nothing). Copying a Ptr by assignment duplicates
// the claim to the cell; use Move to transfer ownership instead, which
// leaves the source empty.
type Ptr[E any] struct {
	p *E
}

// Make allocates a cell holding v and returns its owner.
func Make[E any](v E) Ptr[E] {
	return Ptr[E]{p: &v}
}

// Deref returns the address of the owned cell, or nil when empty.
func (p Ptr[E]) Deref() *E {
	return p.p
}

// Move transfers ownership to the returned Ptr, leaving the receiver
// empty. The receiver must not be used to reach the cell afterward.
func (p *Ptr[E]) Move() Ptr[E] {
	out := *p
	p.p = nil

	return out
}

// Release gives up ownership and returns the raw cell, leaving the
// receiver empty. The caller becomes responsible for the cell.
func (p *Ptr[E]) Release() *E {
	out := p.p
	p.p = nil

	return out
}

// Swap exchanges the cells owned by two pointers.
func (p *Ptr[E]) Swap(other *Ptr[E]) {
	p.p, other.p = other.p, p.p
}

// Less orders owners by cell address.
func (p Ptr[E]) Less(other Ptr[E]) bool {
	return nonnil.AddrLess(p.p, other.p)
}

// Hash64 hashes the cell address.
func (p Ptr[E]) Hash64() uint64 {
	return nonnil.AddrHash64(p.p)
}

// String formats the cell address.
func (p Ptr[E]) String() string {
	return fmt.Sprintf("%p", p.p)
}

// NonNil is a non-null handle over a unique-ownership pointer. Like the
// pointer itself it is move-only: transfer it with nonnil.Take, never by
// plain assignment.
type NonNil[E any] = nonnil.NonNil[Ptr[E], E]

// MakeNonNil allocates a cell holding v and wraps its owner in a handle.
// A fresh allocation is never nil, so no check runs.
func MakeNonNil[E any](v E) NonNil[E] {
	return nonnil.Trust[E](Make(v))
}

// Adopt takes ownership of the cell behind a raw handle. This is the
// deliberate, named equivalent of constructing an owning pointer from a
// raw one: the caller asserts nothing else owns the cell.
func Adopt[E any](r nonnil.Ref[E]) NonNil[E] {
	return nonnil.Trust[E](Ptr[E]{p: r.Deref()})
}
