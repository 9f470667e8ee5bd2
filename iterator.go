package seqds

// SparseSeqIterator is a cursor over a SparseSeq. Each call to Iterator
// returns an independent iterator positioned before the first slot; the
// iterator reads through the live sequence and does not snapshot it.
type SparseSeqIterator[T any] struct {
	index int
	seq   *SparseSeq[T]
}

func (s *SparseSeq[T]) Iterator() *SparseSeqIterator[T] {
	return &SparseSeqIterator[T]{
		index: -1,
		seq:   s,
	}
}

func (it *SparseSeqIterator[T]) HasNext() bool {
	return it.index < it.seq.length-1
}

func (it *SparseSeqIterator[T]) Next() bool {
	if !it.HasNext() {
		return false
	}
	it.index++
	return true
}

// Index returns the position of the current slot, -1 before the first call
// to Next.
func (it *SparseSeqIterator[T]) Index() int {
	return it.index
}

// Value returns the element at the current slot, the zero value for gaps.
func (it *SparseSeqIterator[T]) Value() T {
	value, _ := it.seq.At(it.index)
	return value
}

// Present reports whether the current slot has a backing entry.
func (it *SparseSeqIterator[T]) Present() bool {
	_, present := it.seq.At(it.index)
	return present
}

// Restart repositions the iterator before the first slot.
func (it *SparseSeqIterator[T]) Restart() {
	it.index = -1
}
