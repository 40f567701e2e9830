package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSet(t *testing.T) {
	t.Run("IncrDecr", func(t *testing.T) {
		s := NewStateSet()
		assert.Equal(t, 0, s.Size())

		s.Incr(3)
		s.Incr(1)
		s.Incr(3)
		assert.Equal(t, 2, s.Size())
		assert.Equal(t, []int{1, 3}, s.GetArray())

		// 3 was counted twice, so one Decr keeps it.
		s.Decr(3)
		assert.Equal(t, []int{1, 3}, s.GetArray())
		s.Decr(3)
		assert.Equal(t, []int{1}, s.GetArray())

		// Decr on an absent member is a no-op.
		s.Decr(42)
		assert.Equal(t, 1, s.Size())
	})

	t.Run("HashOrderIndependent", func(t *testing.T) {
		a := NewStateSet()
		a.Incr(1)
		a.Incr(2)
		a.Incr(3)

		b := NewStateSet()
		b.Incr(3)
		b.Incr(1)
		b.Incr(2)

		assert.Equal(t, a.Hash(), b.Hash())
		assert.True(t, a.Equals(b))
	})

	t.Run("HashTracksMutation", func(t *testing.T) {
		s := NewStateSet()
		s.Incr(1)
		h1 := s.Hash()

		s.Incr(2)
		assert.NotEqual(t, h1, s.Hash())

		s.Decr(2)
		assert.Equal(t, h1, s.Hash())
	})

	t.Run("FreezeSnapshot", func(t *testing.T) {
		s := NewStateSet()
		s.Incr(5)
		s.Incr(2)

		f := s.Freeze(7)
		assert.Equal(t, []int{2, 5}, f.GetArray())
		assert.Equal(t, 2, f.Size())
		assert.Equal(t, 7, f.State())
		assert.Equal(t, s.Hash(), f.Hash())

		// The snapshot does not follow later mutation.
		s.Incr(9)
		assert.Equal(t, []int{2, 5}, f.GetArray())
		assert.False(t, f.Equals(s))
	})

	t.Run("EqualsAcrossRepresentations", func(t *testing.T) {
		s := NewStateSet()
		s.Incr(1)
		s.Incr(4)

		f := s.Freeze(0)
		assert.True(t, f.Equals(s))
		assert.True(t, s.Equals(f))

		other := NewFrozenIntSet([]int{1, 4}, s.Hash(), 99)
		assert.True(t, f.Equals(other))
	})

	t.Run("EqualsChecksMembersNotJustHash", func(t *testing.T) {
		// Two frozen sets sharing a hash but differing in members must
		// not compare equal.
		a := NewFrozenIntSet([]int{1, 2}, 777, 0)
		b := NewFrozenIntSet([]int{3}, 777, 1)
		assert.False(t, a.Equals(b))
	})

	t.Run("EmptySet", func(t *testing.T) {
		s := NewStateSet()
		f := s.Freeze(0)
		assert.Equal(t, 0, f.Size())
		assert.Empty(t, f.GetArray())
	})
}
