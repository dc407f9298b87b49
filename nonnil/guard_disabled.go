//go:build nonnil_guard_disabled

package nonnil

// guardEnabled controls whether Deref re-checks for the zero underlying
// value. This build has the guard compiled out: dereferencing an invalid
// zero handle falls through to the underlying type's own nil behavior.
const guardEnabled = false
