package tableaxis

import (
	"fmt"
	"iter"
)

// VisIdx is the position of an item within the visible,
// possibly sorted and filtered, sequence of items.
type VisIdx int

// LogIdx is the position of an item within the logical
// storage order, stable across sorting and filtering.
type LogIdx int

// Add returns the index n positions after idx.
func (idx VisIdx) Add(n int) VisIdx {
	return idx + VisIdx(n)
}

// Sub returns the index n positions before idx.
// It panics if the result would be negative,
// use CheckedSub when that can happen.
func (idx VisIdx) Sub(n int) VisIdx {
	r, ok := idx.CheckedSub(n)
	if !ok {
		panic(fmt.Sprintf("VisIdx(%d).Sub(%d) underflows", idx, n))
	}
	return r
}

// CheckedSub returns the index n positions before idx
// or false if that would be negative.
func (idx VisIdx) CheckedSub(n int) (VisIdx, bool) {
	if n > int(idx) {
		return 0, false
	}
	return idx - VisIdx(n), true
}

// VisRangeInc returns the ascending sequence of indices
// from fromInc to toInc, both inclusive.
// The sequence can be iterated multiple times.
// It panics if fromInc > toInc.
func VisRangeInc(fromInc, toInc VisIdx) iter.Seq[VisIdx] {
	if fromInc > toInc {
		panic(fmt.Sprintf("VisRangeInc(%d, %d): from is greater than to", fromInc, toInc))
	}
	return func(yield func(VisIdx) bool) {
		for idx := fromInc; idx <= toInc; idx++ {
			if !yield(idx) {
				return
			}
		}
	}
}
