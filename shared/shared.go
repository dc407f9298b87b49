// Package shared provides a reference-counted shared-ownership pointer,
// its non-null factories, aliasing construction, and the cast helpers
// that preserve shared ownership across type adjustments.
//
// Memory itself is garbage collected; the count exists for deterministic
// cleanup of non-memory resources via the drop hook of MakeManaged. Go
// cannot intercept struct assignment, so acquiring a new strong reference
// is explicit (Clone) and a plain copy is a borrow: it reaches the same
// cell but holds no claim of its own.
package shared

import (
	"fmt"

	"go.uber.org/atomic"

	"github.com/amp-labs/amp-nonnil/nonnil"
)

// control is the block shared by every strong reference to one
// allocation: the count, and the drop hook to run when it reaches zero.
type control struct {
	count atomic.Int64
	drop  func()
}

func (c *control) acquire() {
	c.count.Inc()
}

// tryAcquire acquires a strong reference only if one still exists,
// so an expired allocation cannot be resurrected.
func (c *control) tryAcquire() bool {
	for {
		n := c.count.Load()
		if n == 0 {
			return false
		}

		if c.count.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (c *control) release() {
	if c.count.Dec() == 0 && c.drop != nil {
		c.drop()
	}
}

// Ptr is a strong reference to a shared heap cell. The zero value is the
// null-equivalent (refers to nothing). Two Ptrs are equal when they share
// both the control block and the stored cell; aliased references to
// different cells under one control block compare unequal.
type Ptr[E any] struct {
	ctl *control
	p   *E
}

// Make allocates a cell holding v and returns the first strong reference
// to it. If E embeds Self[E], the cell is bound so it can hand out
// references to itself.
func Make[E any](v E) Ptr[E] {
	return MakeManaged(v, nil)
}

// MakeManaged is Make with a drop hook: drop runs exactly once, when the
// last strong reference is released. Use it for pointees holding
// resources the garbage collector does not manage.
func MakeManaged[E any](v E, drop func(*E)) Ptr[E] {
	cell := &v
	ctl := &control{}
	ctl.count.Store(1)

	if drop != nil {
		ctl.drop = func() { drop(cell) }
	}

	bindIfSelf(ctl, cell)

	return Ptr[E]{ctl: ctl, p: cell}
}

// Deref returns the address of the shared cell, or nil when empty.
func (p Ptr[E]) Deref() *E {
	return p.p
}

// Clone acquires a new strong reference to the same cell. Each Clone must
// be balanced by a Release.
func (p Ptr[E]) Clone() Ptr[E] {
	if p.ctl != nil {
		p.ctl.acquire()
	}

	return p
}

// Release drops this strong reference; the drop hook runs when the last
// one goes.
func (p Ptr[E]) Release() {
	if p.ctl != nil {
		p.ctl.release()
	}
}

// UseCount returns the current number of strong references, or zero for
// the null-equivalent Ptr. Useful for tests and diagnostics only.
func (p Ptr[E]) UseCount() int64 {
	if p.ctl == nil {
		return 0
	}

	return p.ctl.count.Load()
}

// Less orders references by stored cell address.
func (p Ptr[E]) Less(other Ptr[E]) bool {
	return nonnil.AddrLess(p.p, other.p)
}

// Hash64 hashes the stored cell address.
func (p Ptr[E]) Hash64() uint64 {
	return nonnil.AddrHash64(p.p)
}

// String formats the stored cell address.
func (p Ptr[E]) String() string {
	return fmt.Sprintf("%p", p.p)
}

// Alias acquires a strong reference that shares owner's lifetime while
// pointing at a different cell, typically a sub-object of the owned one.
// The aliased reference keeps the whole allocation alive.
func Alias[E any, O any](owner Ptr[O], target *E) Ptr[E] {
	if owner.ctl != nil {
		owner.ctl.acquire()
	}

	return Ptr[E]{ctl: owner.ctl, p: target}
}

// NonNil is a non-null handle over a shared-ownership reference.
type NonNil[E any] = nonnil.NonNil[Ptr[E], E]

// MakeNonNil allocates a cell holding v and wraps the first strong
// reference in a handle. A fresh allocation is never nil, so no check
// runs.
func MakeNonNil[E any](v E) NonNil[E] {
	return nonnil.Trust[E](Make(v))
}

// MakeManagedNonNil is MakeNonNil with a drop hook, see MakeManaged.
func MakeManagedNonNil[E any](v E, drop func(*E)) NonNil[E] {
	return nonnil.Trust[E](MakeManaged(v, drop))
}

// AliasNonNil builds a handle that shares owner's lifetime while pointing
// at the cell behind target. Both inputs already guarantee non-nullness,
// so the result is non-null by construction.
func AliasNonNil[E any, O any](owner NonNil[O], target nonnil.Ref[E]) NonNil[E] {
	return nonnil.Trust[E](Alias(owner.AsNullable(), target.Deref()))
}
