package tableaxis

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned when an index
// does not address an existing logical item.
var ErrIndexOutOfRange = errors.New("index out of range")

// Remap describes how the visible order of items
// relates to their logical order.
// The implementations are Pristine and Selected,
// a nil Remap is treated like Pristine.
type Remap interface {
	// LogIdx returns the logical index shown at vis,
	// or false if vis is not a visible position.
	// For Pristine every non negative vis is returned unchanged,
	// callers have to check the logical bounds.
	LogIdx(vis VisIdx) (LogIdx, bool)

	// VisibleLen returns the number of visible items
	// for logicalLen logical items.
	VisibleLen(logicalLen int) int

	String() string

	isRemap()
}

// Pristine is the identity Remap: visible order is logical order.
type Pristine struct{}

func (Pristine) LogIdx(vis VisIdx) (LogIdx, bool) {
	if vis < 0 {
		return 0, false
	}
	return LogIdx(vis), true
}

func (Pristine) VisibleLen(logicalLen int) int { return logicalLen }
func (Pristine) String() string                { return "Pristine" }
func (Pristine) isRemap()                      {}

// Selected is a Remap that reorders and/or filters
// the logical items as described by Details.
type Selected struct {
	Details RemapDetails
}

func (s Selected) LogIdx(vis VisIdx) (LogIdx, bool) {
	switch d := s.Details.(type) {
	case Full:
		if vis < 0 || int(vis) >= len(d) {
			return 0, false
		}
		return d[vis], true
	}
	return 0, false
}

func (s Selected) VisibleLen(int) int {
	switch d := s.Details.(type) {
	case Full:
		return len(d)
	}
	return 0
}

func (s Selected) String() string {
	return fmt.Sprintf("Selected(%v)", s.Details)
}

func (Selected) isRemap() {}

// RemapDetails is the payload of a Selected Remap.
// Full is the only implementation.
type RemapDetails interface {
	isRemapDetails()
}

// Full maps every visible position i to the logical index Full[i].
// It may be shorter than the logical item count,
// in which case the missing items are filtered out.
type Full []LogIdx

func (f Full) String() string {
	return fmt.Sprintf("Full%v", []LogIdx(f))
}

func (Full) isRemapDetails() {}

// NewFullRemap returns a Selected Remap with the passed mapping
// after checking that every entry addresses one of logicalLen items.
// The mapping is copied.
func NewFullRemap(mapping []LogIdx, logicalLen int) (Remap, error) {
	for i, log := range mapping {
		if log < 0 || int(log) >= logicalLen {
			return nil, fmt.Errorf("visible position %d maps to logical index %d of %d items: %w", i, log, logicalLen, ErrIndexOutOfRange)
		}
	}
	return Selected{Details: Full(slices.Clone(mapping))}, nil
}

// RemapFromMapping returns a Selected Remap from plain int indices
// like FilteredView.ColumnMapping.
// A nil mapping returns Pristine.
func RemapFromMapping(mapping []int, logicalLen int) (Remap, error) {
	if mapping == nil {
		return Pristine{}, nil
	}
	full := make([]LogIdx, len(mapping))
	for i, m := range mapping {
		full[i] = LogIdx(m)
	}
	return NewFullRemap(full, logicalLen)
}

// SortedRemap returns a Remap showing all logicalLen items
// sorted by less. Equal items keep their logical order.
func SortedRemap(logicalLen int, less func(a, b LogIdx) bool) Remap {
	mapping := identityMapping(logicalLen)
	slices.SortStableFunc(mapping, func(a, b LogIdx) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return cmp.Compare(a, b)
	})
	return Selected{Details: Full(mapping)}
}

// FilteredRemap returns a Remap showing only the logical items
// for which keep returns true, in logical order.
func FilteredRemap(logicalLen int, keep func(LogIdx) bool) Remap {
	mapping := make(Full, 0, max(logicalLen, 0))
	for log := range LogIdx(logicalLen) {
		if keep(log) {
			mapping = append(mapping, log)
		}
	}
	return Selected{Details: mapping}
}

func identityMapping(n int) Full {
	mapping := make(Full, max(n, 0))
	for i := range mapping {
		mapping[i] = LogIdx(i)
	}
	return mapping
}

// cloneRemap returns a copy of remap that shares no memory
// with the passed one, nil is returned as Pristine.
func cloneRemap(remap Remap) Remap {
	switch r := remap.(type) {
	case nil:
		return Pristine{}
	case Selected:
		if full, ok := r.Details.(Full); ok {
			return Selected{Details: slices.Clone(full)}
		}
	}
	return remap
}

// projectLengths gathers logLengths into visible order.
// Logical indices beyond logLengths get defaultLength.
func projectLengths(dst []float64, remap Remap, logLengths []float64, defaultLength float64) []float64 {
	dst = dst[:0]
	switch r := remap.(type) {
	case Selected:
		switch d := r.Details.(type) {
		case Full:
			for _, log := range d {
				if log >= 0 && int(log) < len(logLengths) {
					dst = append(dst, logLengths[log])
				} else {
					dst = append(dst, defaultLength)
				}
			}
		}
	default:
		dst = append(dst, logLengths...)
	}
	return dst
}

// visPositionsOf returns the visible positions showing log
// for visLen visible items.
func visPositionsOf(remap Remap, log LogIdx, visLen int) []VisIdx {
	switch r := remap.(type) {
	case Selected:
		var positions []VisIdx
		if d, ok := r.Details.(Full); ok {
			for i, l := range d {
				if l == log {
					positions = append(positions, VisIdx(i))
				}
			}
		}
		return positions
	default:
		if log < 0 || int(log) >= visLen {
			return nil
		}
		return []VisIdx{VisIdx(log)}
	}
}
