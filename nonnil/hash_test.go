package nonnil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/amp-nonnil/nonnil"
)

func TestHash64(t *testing.T) {
	t.Parallel()

	t.Run("handle hashes exactly as the underlying value", func(t *testing.T) {
		t.Parallel()

		v := 42
		h := nonnil.Addr(&v)

		assert.Equal(t, h.AsNullable().Hash64(), nonnil.Hash64(h))
	})

	t.Run("equal handles hash identically", func(t *testing.T) {
		t.Parallel()

		v := "shared"
		a := nonnil.Addr(&v)
		b := nonnil.Addr(&v)

		assert.True(t, nonnil.Equal(a, b))
		assert.Equal(t, nonnil.Hash64(a), nonnil.Hash64(b))
	})

	t.Run("distinct cells hash differently", func(t *testing.T) {
		t.Parallel()

		x := 1
		y := 2

		assert.NotEqual(t, nonnil.Hash64(nonnil.Addr(&x)), nonnil.Hash64(nonnil.Addr(&y)))
	})
}

func TestAddrHelpers(t *testing.T) {
	t.Parallel()

	t.Run("AddrHash64 is deterministic", func(t *testing.T) {
		t.Parallel()

		v := 9

		assert.Equal(t, nonnil.AddrHash64(&v), nonnil.AddrHash64(&v))
	})

	t.Run("AddrLess is a strict order", func(t *testing.T) {
		t.Parallel()

		x := 1
		y := 2

		assert.False(t, nonnil.AddrLess(&x, &x))
		assert.NotEqual(t, nonnil.AddrLess(&x, &y), nonnil.AddrLess(&y, &x))
	})
}
