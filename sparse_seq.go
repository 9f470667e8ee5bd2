// Package seqds provides dynamic sequence containers backed by sparse stores:
// index-addressable collections whose logical length is tracked separately
// from backing-store occupancy.
package seqds

import (
	"errors"

	"github.com/seqds/seqds/internal/utils"
)

var (
	ErrNegativeIndex = errors.New("negative index")
)

// SparseSeq is a dynamic, index-addressable sequence over a sparse map store.
// Indices inside [0, Len()) may have no backing entry, such slots read as
// absent. The zero value is an empty sequence ready to use.
// SparseSeq is not safe for concurrent use, see TSSparseSeq.
type SparseSeq[T any] struct {
	length   int
	elements map[int]T
}

func NewSparseSeq[T any]() *SparseSeq[T] {
	return &SparseSeq[T]{elements: make(map[int]T)}
}

// NewSparseSeqFrom copies elements in order into a new sequence.
func NewSparseSeqFrom[T any](elements []T) *SparseSeq[T] {
	s := &SparseSeq[T]{elements: make(map[int]T, len(elements))}
	for _, e := range elements {
		s.PushBack(e)
	}
	return s
}

func NewSparseSeqOf[T any](elements ...T) *SparseSeq[T] {
	return NewSparseSeqFrom(elements)
}

// Len returns the logical length of the sequence, gap slots included.
func (s *SparseSeq[T]) Len() int {
	return s.length
}

func (s *SparseSeq[T]) IsEmpty() bool {
	return s.length == 0
}

// At returns the element stored at index i. The second return parameter is
// false if i is negative, at or past the logical length, or inside a gap.
func (s *SparseSeq[T]) At(i int) (value T, present bool) {
	if i < 0 || i >= s.length {
		return
	}
	value, present = s.elements[i]
	return
}

// MustAt is like At but drops the presence flag, absent slots read as the
// zero value.
func (s *SparseSeq[T]) MustAt(i int) T {
	value, _ := s.At(i)
	return value
}

// SetAt writes v at index i. Writing below the logical length overwrites in
// place, writing at the logical length appends, writing past it advances the
// length to i+1 and leaves the intervening slots absent.
// SetAt panics with ErrNegativeIndex if i is negative.
func (s *SparseSeq[T]) SetAt(i int, v T) {
	if i < 0 {
		panic(ErrNegativeIndex)
	}
	if s.elements == nil {
		s.elements = make(map[int]T)
	}
	if i >= s.length {
		s.length = i + 1
	}
	s.elements[i] = v
}

// PushBack appends v and returns the sequence to allow chaining.
func (s *SparseSeq[T]) PushBack(v T) *SparseSeq[T] {
	s.SetAt(s.length, v)
	return s
}

// PopBack removes the last slot and returns its value.
// The second return parameter is false if the sequence was empty, in which
// case the length is left at zero. A gap slot pops as the zero value.
func (s *SparseSeq[T]) PopBack() (value T, ok bool) {
	if s.length == 0 {
		return
	}
	value = s.elements[s.length-1]
	delete(s.elements, s.length-1)
	s.length--
	return value, true
}

// PushFront inserts v at index 0, shifting every existing slot one position
// toward the tail, and returns the sequence to allow chaining. O(n).
func (s *SparseSeq[T]) PushFront(v T) *SparseSeq[T] {
	if s.elements == nil {
		s.elements = make(map[int]T)
	}
	//shift from the tail backward so that no unread slot is overwritten
	for i := s.length - 1; i >= 0; i-- {
		s.moveSlot(i, i+1)
	}
	s.elements[0] = v
	s.length++
	return s
}

// PopFront removes the slot at index 0 and returns its value, shifting every
// remaining slot one position toward the head. O(n).
// The second return parameter is false if the sequence was empty, in which
// case the length is left at zero. A gap slot pops as the zero value.
func (s *SparseSeq[T]) PopFront() (value T, ok bool) {
	if s.length == 0 {
		return
	}
	value = s.elements[0]
	for i := 1; i < s.length; i++ {
		s.moveSlot(i, i-1)
	}
	delete(s.elements, s.length-1)
	s.length--
	return value, true
}

// RemoveFunc removes the first present element for which match returns true
// (lowest index wins) and returns it, compacting the sequence from the match
// position. The second return parameter is false if nothing matched, in which
// case the sequence is left untouched.
func (s *SparseSeq[T]) RemoveFunc(match func(e T) bool) (removed T, ok bool) {
	for i := 0; i < s.length; i++ {
		e, present := s.At(i)
		if !present || !match(e) {
			continue
		}
		s.RemoveAt(i)
		return e, true
	}
	return
}

// RemoveAt removes the slot at index i, compacting all later slots one
// position toward the head, and returns the removed value.
// The second return parameter is false if i is out of range.
func (s *SparseSeq[T]) RemoveAt(i int) (value T, ok bool) {
	if i < 0 || i >= s.length {
		return
	}
	value = s.elements[i]
	for j := i + 1; j < s.length; j++ {
		s.moveSlot(j, j-1)
	}
	delete(s.elements, s.length-1)
	s.length--
	return value, true
}

// ForEach invokes fn once per slot in ascending index order, gap slots
// included (present is false and e is the zero value for them). Iteration
// stops at the first error, which is returned.
func (s *SparseSeq[T]) ForEach(fn func(i int, e T, present bool) error) error {
	for i := 0; i < s.length; i++ {
		e, present := s.At(i)
		if err := fn(i, e, present); err != nil {
			return err
		}
	}
	return nil
}

// Values returns a dense copy of the sequence, gap slots as zero values.
func (s *SparseSeq[T]) Values() []T {
	values := make([]T, s.length)
	for i, e := range s.elements {
		values[i] = e
	}
	return values
}

// Clear removes all slots.
func (s *SparseSeq[T]) Clear() {
	clear(s.elements)
	s.length = 0
}

// Clone returns an independent copy of the sequence.
func (s *SparseSeq[T]) Clone() *SparseSeq[T] {
	return &SparseSeq[T]{
		length:   s.length,
		elements: utils.CopyMap(s.elements),
	}
}

// moveSlot relocates the slot at index from to index to, preserving absence:
// if from has no entry the destination entry is deleted.
func (s *SparseSeq[T]) moveSlot(from, to int) {
	if e, ok := s.elements[from]; ok {
		s.elements[to] = e
	} else {
		delete(s.elements, to)
	}
}
