package seqds

import (
	"sync"
)

// Thread safe sparse sequence. All operations are serialized by an internal
// RW mutex, iterators and Values work on a snapshot.
type TSSparseSeq[T any] struct {
	seq  SparseSeq[T]
	lock sync.RWMutex
}

func NewTSSparseSeq[T any]() *TSSparseSeq[T] {
	return &TSSparseSeq[T]{}
}

func NewTSSparseSeqFrom[T any](elements []T) *TSSparseSeq[T] {
	s := &TSSparseSeq[T]{}
	for _, e := range elements {
		s.seq.PushBack(e)
	}
	return s
}

func (s *TSSparseSeq[T]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Len()
}

func (s *TSSparseSeq[T]) IsEmpty() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.IsEmpty()
}

func (s *TSSparseSeq[T]) At(i int) (T, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.At(i)
}

func (s *TSSparseSeq[T]) MustAt(i int) T {
	value, _ := s.At(i)
	return value
}

func (s *TSSparseSeq[T]) SetAt(i int, v T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.seq.SetAt(i, v)
}

func (s *TSSparseSeq[T]) PushBack(v T) *TSSparseSeq[T] {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.seq.PushBack(v)
	return s
}

func (s *TSSparseSeq[T]) PopBack() (T, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.PopBack()
}

func (s *TSSparseSeq[T]) PushFront(v T) *TSSparseSeq[T] {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.seq.PushFront(v)
	return s
}

func (s *TSSparseSeq[T]) PopFront() (T, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.PopFront()
}

func (s *TSSparseSeq[T]) RemoveFunc(match func(e T) bool) (T, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.RemoveFunc(match)
}

func (s *TSSparseSeq[T]) RemoveAt(i int) (T, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.RemoveAt(i)
}

// ForEach invokes fn once per slot in ascending index order while holding the
// read lock, fn must not call back into the sequence.
func (s *TSSparseSeq[T]) ForEach(fn func(i int, e T, present bool) error) error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.ForEach(fn)
}

func (s *TSSparseSeq[T]) Values() []T {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Values()
}

func (s *TSSparseSeq[T]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.seq.Clear()
}

// Iterator returns an iterator over a snapshot of the sequence, later
// mutations are not observed.
func (s *TSSparseSeq[T]) Iterator() *SparseSeqIterator[T] {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Clone().Iterator()
}

func (s *TSSparseSeq[T]) Describe() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Describe()
}

func (s *TSSparseSeq[T]) MarshalJSON() ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.MarshalJSON()
}

func (s *TSSparseSeq[T]) UnmarshalJSON(data []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.UnmarshalJSON(data)
}
