package nonnil

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/zeebo/xxh3"
)

// Pointer is the capability set a pointer-like type must expose so that
// NonNil can wrap it. The zero value of P is its null-equivalent state:
// being comparable is what lets the wrapper detect it, and it also makes
// handles usable as map keys.
//
// Raw adapts plain Go pointers to this contract; unique.Ptr and shared.Ptr
// satisfy it directly. User-defined smart pointers only need to implement
// the three methods (AddrLess and AddrHash64 below do the heavy lifting
// for address-identity types).
type Pointer[P any, E any] interface {
	comparable

	// Deref returns the address of the pointee, or nil in the
	// null-equivalent state.
	Deref() *E

	// Less orders two values of the pointer-like type, the same way the
	// unwrapped type would order them.
	Less(other P) bool

	// Hash64 hashes the pointer-like value itself (not the pointee).
	Hash64() uint64
}

// Raw adapts a plain *E to the Pointer contract. Go method sets cannot
// hang off a defined pointer type, so the adapter is a single-field
// struct: a trivially copyable view with no ownership, exactly like the
// raw pointer it carries.
type Raw[E any] struct {
	p *E
}

// RawOf wraps a plain pointer. The result may be the null-equivalent Raw;
// wrapping it in a handle is where the check happens.
func RawOf[E any](p *E) Raw[E] {
	return Raw[E]{p: p}
}

// Deref returns the wrapped pointer.
func (r Raw[E]) Deref() *E {
	return r.p
}

// Less orders raw pointers by address.
func (r Raw[E]) Less(other Raw[E]) bool {
	return AddrLess(r.p, other.p)
}

// Hash64 hashes the pointer address.
func (r Raw[E]) Hash64() uint64 {
	return AddrHash64(r.p)
}

// String formats the wrapped pointer address.
func (r Raw[E]) String() string {
	return fmt.Sprintf("%p", r.p)
}

// AddrLess orders two pointers by address. Useful for implementing the
// Less capability on address-identity pointer-like types.
func AddrLess[E any](a, b *E) bool {
	return uintptr(unsafe.Pointer(a)) < uintptr(unsafe.Pointer(b))
}

// AddrHash64 hashes a pointer by address. Useful for implementing the
// Hash64 capability on address-identity pointer-like types.
func AddrHash64[E any](p *E) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(uintptr(unsafe.Pointer(p))))

	return xxh3.Hash(buf[:])
}
