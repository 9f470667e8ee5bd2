package seqds

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/seqds/seqds/internal/utils"
)

const ABSENT_SLOT_REPR = "nil"

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

	DEFAULT_PRINT_COLORS = PrettyPrintColors{
		TypeTag:    GetFullColorSequence(termenv.ANSIBlue, false),
		Literal:    GetFullColorSequence(termenv.ANSIBrightGreen, false),
		AbsentSlot: GetFullColorSequence(termenv.ANSIBrightBlack, false),
	}
)

type PrettyPrintColors struct {
	TypeTag, Literal, AbsentSlot []byte
}

type PrettyPrintConfig struct {
	Colorize bool
	Colors   *PrettyPrintColors //defaults to DEFAULT_PRINT_COLORS
}

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}

// Describe returns a type-tagged rendering of the sequence, for example
// SparseSeq[1, 2, nil, 4]. Gap slots render as nil. Purely observational.
func (s *SparseSeq[T]) Describe() string {
	return describe(s)
}

func (s *SparseSeq[T]) PrettyPrint(w *bufio.Writer, config *PrettyPrintConfig) {
	prettyPrintSeq(w, config, "SparseSeq", s.length, func(i int) (string, bool) {
		e, present := s.At(i)
		if !present {
			return ABSENT_SLOT_REPR, false
		}
		return fmt.Sprintf("%#v", e), true
	})
}

// Describe returns a type-tagged rendering of the sequence, for example
// BoolSeq[true, false].
func (s *BoolSeq) Describe() string {
	return describe(s)
}

func (s *BoolSeq) PrettyPrint(w *bufio.Writer, config *PrettyPrintConfig) {
	prettyPrintSeq(w, config, "BoolSeq", s.length, func(i int) (string, bool) {
		v, _ := s.At(i)
		return fmt.Sprintf("%v", v), true
	})
}

type prettyPrintable interface {
	PrettyPrint(w *bufio.Writer, config *PrettyPrintConfig)
}

func describe(p prettyPrintable) string {
	var b strings.Builder
	w := bufio.NewWriter(&b)
	p.PrettyPrint(w, &PrettyPrintConfig{})
	utils.MustSucceed(w.Flush())
	return b.String()
}

func prettyPrintSeq(
	w *bufio.Writer,
	config *PrettyPrintConfig,
	typeTag string,
	length int,
	slotRepr func(i int) (repr string, present bool),
) {
	colors := config.Colors
	if colors == nil {
		colors = &DEFAULT_PRINT_COLORS
	}

	if config.Colorize {
		utils.Must(w.Write(colors.TypeTag))
	}
	utils.Must(w.WriteString(typeTag))
	if config.Colorize {
		utils.Must(w.Write(ANSI_RESET_SEQUENCE))
	}
	utils.Must(w.WriteRune('['))

	for i := 0; i < length; i++ {
		if i > 0 {
			utils.Must(w.WriteString(", "))
		}

		repr, present := slotRepr(i)
		if config.Colorize {
			if present {
				utils.Must(w.Write(colors.Literal))
			} else {
				utils.Must(w.Write(colors.AbsentSlot))
			}
		}
		utils.Must(w.WriteString(repr))
		if config.Colorize {
			utils.Must(w.Write(ANSI_RESET_SEQUENCE))
		}
	}

	utils.Must(w.WriteRune(']'))
}
