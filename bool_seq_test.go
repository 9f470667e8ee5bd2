package seqds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolSeq(t *testing.T) {

	t.Run("construction", func(t *testing.T) {
		seq := NewBoolSeq(true, false, true)
		assert.Equal(t, 3, seq.Len())
		assert.Equal(t, []bool{true, false, true}, seq.Values())
	})

	t.Run("At", func(t *testing.T) {
		seq := NewBoolSeq(true)

		v, ok := seq.At(0)
		assert.True(t, ok)
		assert.True(t, v)

		_, ok = seq.At(1)
		assert.False(t, ok)
		_, ok = seq.At(-1)
		assert.False(t, ok)
	})

	t.Run("SetAt past the length gap-fills with false", func(t *testing.T) {
		seq := NewBoolSeq()
		seq.SetAt(3, true)

		assert.Equal(t, 4, seq.Len())
		assert.Equal(t, []bool{false, false, false, true}, seq.Values())
	})

	t.Run("SetAt negative index panics", func(t *testing.T) {
		seq := NewBoolSeq()
		assert.PanicsWithValue(t, ErrNegativeIndex, func() {
			seq.SetAt(-1, true)
		})
	})

	t.Run("PushBack and PopBack", func(t *testing.T) {
		seq := NewBoolSeq(false)
		seq.PushBack(true)

		v, ok := seq.PopBack()
		if !assert.True(t, ok) {
			return
		}
		assert.True(t, v)
		assert.Equal(t, 1, seq.Len())

		//popping the remaining element then an empty sequence
		_, ok = seq.PopBack()
		assert.True(t, ok)
		_, ok = seq.PopBack()
		assert.False(t, ok)
		assert.Zero(t, seq.Len())
	})

	t.Run("PushFront and PopFront", func(t *testing.T) {
		seq := NewBoolSeq(false, true)
		seq.PushFront(true)

		assert.Equal(t, []bool{true, false, true}, seq.Values())

		v, ok := seq.PopFront()
		if !assert.True(t, ok) {
			return
		}
		assert.True(t, v)
		assert.Equal(t, []bool{false, true}, seq.Values())
	})

	t.Run("PopFront on an empty sequence", func(t *testing.T) {
		seq := NewBoolSeq()
		_, ok := seq.PopFront()
		assert.False(t, ok)
		assert.Zero(t, seq.Len())
	})

	t.Run("ForEach", func(t *testing.T) {
		seq := NewBoolSeq(true, false)

		var values []bool
		seq.ForEach(func(i int, v bool) error {
			values = append(values, v)
			return nil
		})

		assert.Equal(t, []bool{true, false}, values)
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var seq BoolSeq
		seq.PushBack(true)
		assert.Equal(t, 1, seq.Len())
	})

	t.Run("Clear", func(t *testing.T) {
		seq := NewBoolSeq(true, true)
		seq.Clear()
		assert.Zero(t, seq.Len())
		assert.True(t, seq.IsEmpty())
	})
}
