//go:build !nonnil_guard_disabled

package nonnil

// guardEnabled controls whether Deref re-checks for the zero underlying
// value. Go structs always have a zero value, so a handle can exist
// without passing any constructor; the guard closes that hole. Build with
// the nonnil_guard_disabled tag to compile it out.
const guardEnabled = true
