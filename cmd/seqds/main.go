// Command seqds runs a small walkthrough of the sequence containers, it is
// intended as a runnable companion to the package documentation.
package main

import (
	"bufio"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/seqds/seqds"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	printConfig := &seqds.PrettyPrintConfig{
		Colorize: termenv.NewOutput(os.Stdout).ColorProfile() != termenv.Ascii,
	}

	show := func(label string, p interface {
		PrettyPrint(w *bufio.Writer, config *seqds.PrettyPrintConfig)
	}) {
		out.WriteString(label)
		out.WriteString(": ")
		p.PrettyPrint(out, printConfig)
		out.WriteRune('\n')
	}

	//tail operations

	seq := seqds.NewSparseSeqOf(3, 7, 7, 2)
	show("initial", seq)

	seq.PushBack(9)
	show("after PushBack(9)", seq)

	popped, _ := seq.PopBack()
	logger.Info().Int("value", popped).Msg("popped tail")
	show("after PopBack", seq)

	//head operations

	seq.PushFront(1)
	show("after PushFront(1)", seq)

	popped, _ = seq.PopFront()
	logger.Info().Int("value", popped).Msg("popped head")
	show("after PopFront", seq)

	//first-match removal

	if removed, ok := seqds.Remove(seq, 7); ok {
		logger.Info().Int("value", removed).Msg("removed first match")
	}
	show("after Remove(7)", seq)

	//sparse write: slots 4..8 stay absent

	seq.SetAt(9, 42)
	show("after SetAt(9, 42)", seq)
	logger.Info().Int("len", seq.Len()).Msg("length after sparse write")

	//iteration

	sum := 0
	it := seq.Iterator()
	for it.Next() {
		if it.Present() {
			sum += it.Value()
		}
	}
	logger.Info().Int("sum", sum).Msg("sum of present elements")

	//JSON representation

	encoded, err := seq.MarshalJSON()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to encode sequence")
	}
	out.WriteString("as JSON: ")
	out.Write(encoded)
	out.WriteRune('\n')

	//compact boolean sequence

	flags := seqds.NewBoolSeq(true, false, true)
	flags.PushFront(false)
	show("flags", flags)
}
