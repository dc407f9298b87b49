package shared

import (
	"github.com/amp-labs/amp-nonnil/nonnil"
	"github.com/amp-labs/amp-nonnil/unique"
)

// FromUnique converts a unique-ownership handle into a shared-ownership
// one. The unique handle is moved from and must not be used again; the
// cell it owned becomes the first (and only) strong shared reference.
// The source already guarantees non-nullness, so no check runs.
func FromUnique[E any](src *unique.NonNil[E]) NonNil[E] {
	return nonnil.AdaptMove[E](src, func(u unique.Ptr[E]) Ptr[E] {
		cell := u.Release()
		ctl := &control{}
		ctl.count.Store(1)

		bindIfSelf(ctl, cell)

		return Ptr[E]{ctl: ctl, p: cell}
	})
}
