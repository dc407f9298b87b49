package nonnil

// Hash64 returns the hash of the underlying value, unchanged: a handle
// and the value it wraps hash identically, so they are interchangeable
// wherever hashes act as keys. This is a package function rather than a
// method so that NonNil never grows the full Pointer capability set
// (which would allow wrapping a handle in a handle).
func Hash64[P Pointer[P, E], E any](n NonNil[P, E]) uint64 {
	return n.ptr.Hash64()
}
