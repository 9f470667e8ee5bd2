package seqds

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {

	t.Run("empty sequence", func(t *testing.T) {
		assert.Equal(t, "SparseSeq[]", NewSparseSeq[int]().Describe())
	})

	t.Run("integers", func(t *testing.T) {
		assert.Equal(t, "SparseSeq[1, 2, 3]", NewSparseSeqOf(1, 2, 3).Describe())
	})

	t.Run("strings are quoted", func(t *testing.T) {
		assert.Equal(t, `SparseSeq["a", "b"]`, NewSparseSeqOf("a", "b").Describe())
	})

	t.Run("gap slots render as nil", func(t *testing.T) {
		seq := NewSparseSeq[int]()
		seq.SetAt(2, 5)
		assert.Equal(t, "SparseSeq[nil, nil, 5]", seq.Describe())
	})

	t.Run("idempotent", func(t *testing.T) {
		seq := NewSparseSeqOf(1, 2)
		assert.Equal(t, seq.Describe(), seq.Describe())
	})

	t.Run("bool sequence", func(t *testing.T) {
		assert.Equal(t, "BoolSeq[true, false]", NewBoolSeq(true, false).Describe())
	})
}

func TestPrettyPrint(t *testing.T) {

	t.Run("no colorization matches Describe", func(t *testing.T) {
		seq := NewSparseSeqOf(1, 2)

		var b strings.Builder
		w := bufio.NewWriter(&b)
		seq.PrettyPrint(w, &PrettyPrintConfig{})
		w.Flush()

		assert.Equal(t, seq.Describe(), b.String())
	})

	t.Run("colorization emits ANSI sequences", func(t *testing.T) {
		seq := NewSparseSeqOf(1)

		var b strings.Builder
		w := bufio.NewWriter(&b)
		seq.PrettyPrint(w, &PrettyPrintConfig{Colorize: true})
		w.Flush()

		output := b.String()
		assert.Contains(t, output, string(DEFAULT_PRINT_COLORS.TypeTag))
		assert.Contains(t, output, string(DEFAULT_PRINT_COLORS.Literal))
		assert.Contains(t, output, string(ANSI_RESET_SEQUENCE))
	})

	t.Run("absent slots use the dedicated color", func(t *testing.T) {
		seq := NewSparseSeq[int]()
		seq.SetAt(1, 5)

		var b strings.Builder
		w := bufio.NewWriter(&b)
		seq.PrettyPrint(w, &PrettyPrintConfig{Colorize: true})
		w.Flush()

		assert.Contains(t, b.String(), string(DEFAULT_PRINT_COLORS.AbsentSlot)+ABSENT_SLOT_REPR)
	})

	t.Run("custom colors", func(t *testing.T) {
		seq := NewSparseSeqOf(1)
		colors := &PrettyPrintColors{
			TypeTag: []byte("<tag>"),
			Literal: []byte("<lit>"),
		}

		var b strings.Builder
		w := bufio.NewWriter(&b)
		seq.PrettyPrint(w, &PrettyPrintConfig{Colorize: true, Colors: colors})
		w.Flush()

		assert.Contains(t, b.String(), "<tag>SparseSeq")
		assert.Contains(t, b.String(), "<lit>1")
	})
}
