package seqds

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the sequence as a JSON array of length Len() with gap
// slots encoded as null, so sparseness survives a round trip.
func (s *SparseSeq[T]) MarshalJSON() ([]byte, error) {
	slots := make([]*T, s.length)
	for i := range slots {
		if e, present := s.At(i); present {
			slots[i] = &e
		}
	}
	return json.Marshal(slots)
}

// UnmarshalJSON decodes a JSON array, null entries become gap slots.
// The previous content of the sequence is discarded.
func (s *SparseSeq[T]) UnmarshalJSON(data []byte) error {
	var slots []*T
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}

	if s.elements == nil {
		s.elements = make(map[int]T, len(slots))
	} else {
		clear(s.elements)
	}
	for i, e := range slots {
		if e != nil {
			s.elements[i] = *e
		}
	}
	s.length = len(slots)
	return nil
}

func (s *BoolSeq) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *BoolSeq) UnmarshalJSON(data []byte) error {
	var values []bool
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	*s = *NewBoolSeq(values...)
	return nil
}
