package seqds

import (
	"github.com/bits-and-blooms/bitset"
)

// BoolSeq is a compact boolean sequence over a bitset with a tracked logical
// length. Unlike SparseSeq there is no per-slot absence: every index inside
// [0, Len()) reads as a value, gap-filled slots read as false.
// BoolSeq is not safe for concurrent use.
type BoolSeq struct {
	bits   *bitset.BitSet
	length int
}

func NewBoolSeq(elements ...bool) *BoolSeq {
	bits := bitset.New(uint(len(elements)))
	for i, b := range elements {
		if b {
			bits.Set(uint(i))
		}
	}
	return &BoolSeq{bits: bits, length: len(elements)}
}

func (s *BoolSeq) Len() int {
	return s.length
}

func (s *BoolSeq) IsEmpty() bool {
	return s.length == 0
}

// At returns the boolean at index i. The second return parameter is false if
// i is negative or at or past the logical length.
func (s *BoolSeq) At(i int) (value bool, ok bool) {
	if i < 0 || i >= s.length {
		return
	}
	return s.bits.Test(uint(i)), true
}

// SetAt writes v at index i, advancing the logical length to i+1 if needed.
// Slots gap-filled by a write past the length read as false.
// SetAt panics with ErrNegativeIndex if i is negative.
func (s *BoolSeq) SetAt(i int, v bool) {
	if i < 0 {
		panic(ErrNegativeIndex)
	}
	s.ensureBits()
	if i >= s.length {
		s.length = i + 1
	}
	s.bits.SetTo(uint(i), v)
}

// PushBack appends v and returns the sequence to allow chaining.
func (s *BoolSeq) PushBack(v bool) *BoolSeq {
	s.SetAt(s.length, v)
	return s
}

// PopBack removes the last slot and returns its value.
// The second return parameter is false if the sequence was empty, in which
// case the length is left at zero.
func (s *BoolSeq) PopBack() (value bool, ok bool) {
	if s.length == 0 {
		return
	}
	value = s.bits.Test(uint(s.length - 1))
	s.bits.SetTo(uint(s.length-1), false)
	s.length--
	return value, true
}

// PushFront inserts v at index 0, shifting every existing bit one position
// toward the tail, and returns the sequence to allow chaining.
func (s *BoolSeq) PushFront(v bool) *BoolSeq {
	s.ensureBits()
	s.bits.InsertAt(0)
	s.bits.SetTo(0, v)
	s.length++
	return s
}

// PopFront removes the slot at index 0 and returns its value, shifting every
// remaining bit one position toward the head.
// The second return parameter is false if the sequence was empty.
func (s *BoolSeq) PopFront() (value bool, ok bool) {
	if s.length == 0 {
		return
	}
	value = s.bits.Test(0)
	s.bits.DeleteAt(0)
	s.length--
	return value, true
}

// ForEach invokes fn once per slot in ascending index order, stopping at the
// first error, which is returned.
func (s *BoolSeq) ForEach(fn func(i int, v bool) error) error {
	for i := 0; i < s.length; i++ {
		if err := fn(i, s.bits.Test(uint(i))); err != nil {
			return err
		}
	}
	return nil
}

// Values returns the sequence as a bool slice.
func (s *BoolSeq) Values() []bool {
	values := make([]bool, s.length)
	for i := range values {
		values[i] = s.bits.Test(uint(i))
	}
	return values
}

// Clear removes all slots.
func (s *BoolSeq) Clear() {
	if s.bits != nil {
		s.bits.ClearAll()
	}
	s.length = 0
}

func (s *BoolSeq) ensureBits() {
	if s.bits == nil {
		s.bits = bitset.New(0)
	}
}
