// Package tableaxis maps between pixel offsets and the rows or columns
// of a table whose visible order can differ from the logical order.
package tableaxis

import "math"

// AxisMeasure maps between pixel offsets along the main axis
// and the visible items of a table axis.
//
// Implementations must leave all derived state consistent
// before a mutating method returns.
type AxisMeasure interface {
	// Border returns the gap in pixels between consecutive items.
	Border() float64

	// SetAxisProperties reconfigures the measure for logicalLen
	// logical items separated by border pixels and shown in the
	// visible order described by remap.
	SetAxisProperties(border float64, logicalLen int, remap Remap)

	// TotalPixelLength returns the extents of all visible items
	// plus one border per item.
	TotalPixelLength() float64

	// VisFromPixel returns the visible item at pixel
	// or false if pixel is outside of [0, TotalPixelLength()).
	// A pixel exactly on the start of an item belongs to that item.
	VisFromPixel(pixel float64) (VisIdx, bool)

	// VisRangeFromPixels returns the inclusive range of visible items
	// overlapping [p0, p1]. Endpoints outside of the content are
	// clamped to the first and last item.
	// Returns false for a measure without visible items.
	VisRangeFromPixels(p0, p1 float64) (from, to VisIdx, ok bool)

	// FirstPixelFromVis returns the offset where idx starts.
	FirstPixelFromVis(idx VisIdx) (float64, bool)

	// PixelsLengthForVis returns the extent of idx.
	PixelsLengthForVis(idx VisIdx) (float64, bool)

	// SetFarPixelForVis changes the extent of idx so that it ends
	// at pixel and returns the applied extent.
	// Zero is returned without a change if idx can't be
	// resolved to a logical item.
	SetFarPixelForVis(idx VisIdx, pixel float64) float64

	// SetPixelLengthForVis sets the extent of idx
	// and returns the applied extent.
	// Zero is returned without a change if idx can't be
	// resolved to a logical item.
	SetPixelLengthForVis(idx VisIdx, length float64) float64

	// CanResize returns if idx can be resized independently.
	CanResize(idx VisIdx) bool

	// PixelNearBorder is implemented by calling
	// the package function PixelNearBorder.
	PixelNearBorder(pixel float64) (VisIdx, bool)
}

var (
	_ AxisMeasure = new(FixedAxisMeasure)
	_ AxisMeasure = new(StoredAxisMeasure)
)

// PixelNearBorder returns the visible item whose leading border
// is within MouseMoveEpsilon of pixel.
// If the trailing border of the item at pixel is hit instead,
// the index after that item is returned.
// The leading border wins if both are in reach.
// The trailing border of the last item can only be hit from inside
// the content because VisFromPixel reports nothing past its end.
func PixelNearBorder(m AxisMeasure, pixel float64) (VisIdx, bool) {
	idx, ok := m.VisFromPixel(pixel)
	if !ok {
		return 0, false
	}
	halfBorder := m.Border() / 2
	first, _ := m.FirstPixelFromVis(idx)
	next, ok := m.FirstPixelFromVis(idx.Add(1))
	if !ok {
		next = m.TotalPixelLength()
	}
	switch {
	case math.Abs(pixel-(first-halfBorder)) < MouseMoveEpsilon:
		return idx, true
	case math.Abs(pixel-(next-halfBorder)) < MouseMoveEpsilon:
		return idx.Add(1), true
	}
	return 0, false
}
