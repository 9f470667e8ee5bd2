package seqds

import (
	"golang.org/x/exp/constraints"
)

// Remove removes the first element equal to v (lowest index wins) and returns
// it. The second return parameter is false if no element matched, in which
// case the sequence is left untouched. Gap slots never match.
func Remove[T comparable](s *SparseSeq[T], v T) (T, bool) {
	return s.RemoveFunc(func(e T) bool {
		return e == v
	})
}

// IndexOf returns the index of the first element equal to v, or -1.
func IndexOf[T comparable](s *SparseSeq[T], v T) int {
	it := s.Iterator()
	for it.Next() {
		if it.Present() && it.Value() == v {
			return it.Index()
		}
	}
	return -1
}

func Contains[T comparable](s *SparseSeq[T], v T) bool {
	return IndexOf(s, v) >= 0
}

// Map returns a new sequence of the same length whose present slots hold
// mapper applied to the corresponding element. Gap slots stay absent.
func Map[T, U any](s *SparseSeq[T], mapper func(e T) U) *SparseSeq[U] {
	result := NewSparseSeq[U]()
	result.length = s.length
	for i, e := range s.elements {
		result.elements[i] = mapper(e)
	}
	return result
}

// Filter returns a new dense sequence holding the present elements for which
// keep returns true, in their original order.
func Filter[T any](s *SparseSeq[T], keep func(e T) bool) *SparseSeq[T] {
	result := NewSparseSeq[T]()
	s.ForEach(func(i int, e T, present bool) error {
		if present && keep(e) {
			result.PushBack(e)
		}
		return nil
	})
	return result
}

// Sum adds up all present elements, gap slots contribute nothing.
func Sum[T constraints.Integer | constraints.Float](s *SparseSeq[T]) T {
	var sum T
	for _, e := range s.elements {
		sum += e
	}
	return sum
}

// Min returns the smallest present element. The second return parameter is
// false if the sequence has no present element.
func Min[T constraints.Ordered](s *SparseSeq[T]) (min T, ok bool) {
	for _, e := range s.elements {
		if !ok || e < min {
			min = e
			ok = true
		}
	}
	return
}

// Max returns the largest present element. The second return parameter is
// false if the sequence has no present element.
func Max[T constraints.Ordered](s *SparseSeq[T]) (max T, ok bool) {
	for _, e := range s.elements {
		if !ok || e > max {
			max = e
			ok = true
		}
	}
	return
}
