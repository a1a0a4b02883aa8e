package tableaxis

import (
	"fmt"
	"math"
)

// FixedAxisMeasure is an AxisMeasure where every item
// has the same extent of PixelsPerUnit.
// All lookups are computed arithmetically.
type FixedAxisMeasure struct {
	pixelsPerUnit float64
	border        float64
	len           int
}

func NewFixedAxisMeasure(pixelsPerUnit float64) *FixedAxisMeasure {
	return &FixedAxisMeasure{pixelsPerUnit: pixelsPerUnit}
}

func (m *FixedAxisMeasure) PixelsPerUnit() float64 { return m.pixelsPerUnit }

func (m *FixedAxisMeasure) Border() float64 { return m.border }

// SetAxisProperties ignores the remap because
// reordering identical items changes no offsets.
func (m *FixedAxisMeasure) SetAxisProperties(border float64, logicalLen int, _ Remap) {
	m.border = border
	m.len = max(logicalLen, 0)
}

func (m *FixedAxisMeasure) stride() float64 {
	return m.pixelsPerUnit + m.border
}

func (m *FixedAxisMeasure) TotalPixelLength() float64 {
	return m.stride() * float64(m.len)
}

func (m *FixedAxisMeasure) VisFromPixel(pixel float64) (VisIdx, bool) {
	f := math.Floor(pixel / m.stride())
	if math.IsNaN(f) || f < 0 || f >= float64(m.len) {
		return 0, false
	}
	return VisIdx(f), true
}

func (m *FixedAxisMeasure) VisRangeFromPixels(p0, p1 float64) (from, to VisIdx, ok bool) {
	if m.len == 0 {
		return 0, 0, false
	}
	from, ok = m.VisFromPixel(p0)
	if !ok {
		from = 0
	}
	to, ok = m.VisFromPixel(p1)
	if !ok {
		to = VisIdx(m.len - 1)
	}
	return from, to, true
}

func (m *FixedAxisMeasure) FirstPixelFromVis(idx VisIdx) (float64, bool) {
	if idx < 0 || int(idx) >= m.len {
		return 0, false
	}
	return float64(idx) * m.stride(), true
}

func (m *FixedAxisMeasure) PixelsLengthForVis(idx VisIdx) (float64, bool) {
	if idx < 0 || int(idx) >= m.len {
		return 0, false
	}
	return m.pixelsPerUnit, true
}

// SetFarPixelForVis does not change anything
// and returns the fixed extent.
func (m *FixedAxisMeasure) SetFarPixelForVis(VisIdx, float64) float64 {
	return m.pixelsPerUnit
}

// SetPixelLengthForVis does not change anything
// and returns the fixed extent.
func (m *FixedAxisMeasure) SetPixelLengthForVis(VisIdx, float64) float64 {
	return m.pixelsPerUnit
}

func (m *FixedAxisMeasure) CanResize(VisIdx) bool { return false }

func (m *FixedAxisMeasure) PixelNearBorder(pixel float64) (VisIdx, bool) {
	return PixelNearBorder(m, pixel)
}

// Clone returns an independent copy of the measure.
func (m *FixedAxisMeasure) Clone() *FixedAxisMeasure {
	c := *m
	return &c
}

func (m *FixedAxisMeasure) String() string {
	return fmt.Sprintf("FixedAxisMeasure{pixelsPerUnit: %g, border: %g, len: %d}", m.pixelsPerUnit, m.border, m.len)
}
