package seqds

import (
	"testing"
)

func BenchmarkSparseSeqPushBack(b *testing.B) {
	seq := NewSparseSeq[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.PushBack(i)
	}
}

func BenchmarkSparseSeqAt(b *testing.B) {
	seq := NewSparseSeq[int]()
	for i := 0; i < 1000; i++ {
		seq.PushBack(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.At(i % 1000)
	}
}

func BenchmarkSparseSeqPushFront(b *testing.B) {
	b.Run("small", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			seq := NewSparseSeqOf(1, 2, 3, 4, 5, 6, 7, 8)
			b.StartTimer()

			seq.PushFront(0)
		}
	})

	b.Run("large", func(b *testing.B) {
		elements := make([]int, 10_000)
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			seq := NewSparseSeqFrom(elements)
			b.StartTimer()

			seq.PushFront(0)
		}
	})
}

func BenchmarkTSSparseSeqPushBack(b *testing.B) {
	seq := NewTSSparseSeq[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.PushBack(i)
	}
}
