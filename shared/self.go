package shared

import "github.com/amp-labs/amp-nonnil/nonnil"

// Self lets a type hand out shared handles to itself. Embed it with the
// outer type as the parameter:
//
//	type Session struct {
//		shared.Self[Session]
//		...
//	}
//
// Make binds the back-reference when it allocates the cell. The binding
// is weak: it does not keep the allocation alive, and upgrading it after
// the last strong reference is gone is a violation, as is upgrading on a
// value that was never created through Make.
type Self[E any] struct {
	ctl *control
	p   *E
}

// selfBinder is what Make probes for on freshly allocated cells. The
// pointer receiver on Self promotes through embedding, so *E satisfies
// selfBinder[E] exactly when E embeds Self[E].
type selfBinder[E any] interface {
	bindSelf(ctl *control, p *E)
}

func (s *Self[E]) bindSelf(ctl *control, p *E) {
	s.ctl = ctl
	s.p = p
}

func bindIfSelf[E any](ctl *control, cell *E) {
	if b, ok := any(cell).(selfBinder[E]); ok {
		b.bindSelf(ctl, cell)
	}
}

// SharedFromThis upgrades the weak back-reference into a non-null strong
// handle. Every call acquires its own reference; balance each with a
// Release on the underlying Ptr.
func (s *Self[E]) SharedFromThis() NonNil[E] {
	if s.ctl == nil {
		nonnil.Fail("shared handle requested from an unbound object")

		var zero NonNil[E]

		return zero
	}

	if !s.ctl.tryAcquire() {
		nonnil.Fail("shared handle requested from an expired object")

		var zero NonNil[E]

		return zero
	}

	return nonnil.Trust[E](Ptr[E]{ctl: s.ctl, p: s.p})
}

// ViewFromThis is the read-only variant of SharedFromThis.
func (s *Self[E]) ViewFromThis() View[E] {
	if s.ctl == nil {
		nonnil.Fail("view requested from an unbound object")

		return View[E]{}
	}

	if !s.ctl.tryAcquire() {
		nonnil.Fail("view requested from an expired object")

		return View[E]{}
	}

	return View[E]{ctl: s.ctl, p: s.p}
}
