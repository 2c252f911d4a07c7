package stackarr

import (
	"github.com/pkg/errors"
)

var (
	// ErrArity is returned when a pointer collection does not have exactly two
	// entries.
	ErrArity = errors.New("pointer array must have exactly 2 entries")
	// ErrNilSlot is returned for a nil entry.
	ErrNilSlot = errors.New("nil pointer in array")
	// ErrAliased is returned when both entries refer to the same cell.
	ErrAliased = errors.New("pointer array aliases a cell")
)

// checkPointers validates the preconditions of Coerce on a slice.
func checkPointers(in []*int32) error {
	if len(in) != 2 {
		return errors.Wrapf(ErrArity, "got %d", len(in))
	}
	for i, p := range in {
		if p == nil {
			return errors.Wrapf(ErrNilSlot, "index %d", i)
		}
	}
	if in[0] == in[1] {
		return errors.Wrap(ErrAliased, "index 0 and 1")
	}
	return nil
}

// CoerceSlice is [Coerce] for callers holding a slice of pointers.
//
// Nothing is written unless in has exactly two distinct, non-nil entries.
func CoerceSlice(in []*int32) error {
	if err := checkPointers(in); err != nil {
		return errors.Wrap(err, "coerce")
	}
	Coerce((*[2]*int32)(in))
	return nil
}
