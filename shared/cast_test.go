package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-nonnil/nonnil"
	"github.com/amp-labs/amp-nonnil/shared"
)

type animal interface {
	Speak() string
}

type dog struct {
	name string
}

func (d *dog) Speak() string {
	return "woof"
}

type cat struct {
	lives int
}

func (c *cat) Speak() string {
	return "meow"
}

func TestUpcast(t *testing.T) {
	t.Parallel()

	t.Run("widens to the interface, same pointee", func(t *testing.T) {
		t.Parallel()

		d := shared.MakeNonNil(dog{name: "rex"})
		a := shared.Upcast(d, func(p *dog) animal { return p })

		assert.Equal(t, "woof", (*a.Deref()).Speak())
		assert.Equal(t, int64(2), d.AsNullable().UseCount())
	})

	t.Run("keeps the allocation alive through the widened handle", func(t *testing.T) {
		t.Parallel()

		dropped := false

		d := shared.MakeManagedNonNil(dog{name: "rex"}, func(*dog) { dropped = true })
		a := shared.Upcast(d, func(p *dog) animal { return p })

		d.AsNullable().Release()
		assert.False(t, dropped)

		a.AsNullable().Release()
		assert.True(t, dropped)
	})
}

func TestDynamicCast(t *testing.T) {
	t.Parallel()

	t.Run("narrows back to the original pointee", func(t *testing.T) {
		t.Parallel()

		d := shared.MakeNonNil(dog{name: "rex"})
		a := shared.Upcast(d, func(p *dog) animal { return p })

		back := shared.DynamicCast[dog, animal](a)

		require.NotNil(t, back.Deref())
		assert.Same(t, d.Deref(), back.Deref())
		assert.Equal(t, "rex", back.Deref().name)
	})

	t.Run("mismatch yields the null-equivalent, source unaffected", func(t *testing.T) {
		t.Parallel()

		d := shared.MakeNonNil(dog{name: "rex"})
		a := shared.Upcast(d, func(p *dog) animal { return p })

		before := a.AsNullable().UseCount()

		missed := shared.DynamicCast[cat, animal](a)

		assert.Nil(t, missed.Deref())
		assert.Zero(t, missed.UseCount())
		assert.Equal(t, before, a.AsNullable().UseCount())
		assert.Equal(t, "rex", d.Deref().name)
	})

	t.Run("result shares ownership on success", func(t *testing.T) {
		t.Parallel()

		d := shared.MakeNonNil(dog{name: "rex"})
		a := shared.Upcast(d, func(p *dog) animal { return p })

		before := a.AsNullable().UseCount()
		back := shared.DynamicCast[dog, animal](a)

		assert.Equal(t, before+1, a.AsNullable().UseCount())

		back.Release()

		assert.Equal(t, before, a.AsNullable().UseCount())
	})
}

func TestFreeze(t *testing.T) {
	t.Parallel()

	t.Run("read-only view copies the pointee out", func(t *testing.T) {
		t.Parallel()

		d := shared.MakeNonNil(dog{name: "rex"})
		v := shared.Freeze(d)

		assert.Equal(t, "rex", v.Value().name)
		assert.Equal(t, int64(2), d.AsNullable().UseCount())

		v.Release()

		assert.Equal(t, int64(1), d.AsNullable().UseCount())
	})

	t.Run("writable converts back to the same cell", func(t *testing.T) {
		t.Parallel()

		d := shared.MakeNonNil(dog{name: "rex"})
		v := shared.Freeze(d)

		w := v.Writable()

		assert.Same(t, d.Deref(), w.Deref())

		w.Deref().name = "max"

		assert.Equal(t, "max", v.Value().name)
	})

}

func TestWritableZeroView(t *testing.T) {
	var seen *nonnil.Violation

	nonnil.SetHandler(func(v *nonnil.Violation) { seen = v })

	t.Cleanup(func() { nonnil.SetHandler(nil) })

	var v shared.View[dog]

	_ = v.Writable()

	require.NotNil(t, seen)
	assert.Contains(t, seen.Message, "zero view")
}
