package tableaxis

import (
	"fmt"
	"slices"
	"strings"
)

// StoredAxisMeasure is an AxisMeasure where every logical item
// has its own extent.
//
// The extents are stored in logical order and projected
// through the current Remap into visible order.
// The first pixel of every visible item and the reverse
// mapping from pixel to visible item are derived from them
// and updated before any mutating method returns.
type StoredAxisMeasure struct {
	remap         Remap
	logPixLengths []float64
	visPixLengths []float64
	// firstPixels is indexed by VisIdx
	firstPixels      []float64
	pixelsToVis      pixelIndex
	defaultPixels    float64
	border           float64
	totalPixelLength float64

	// fullRebuild disables the rebuild of only the
	// affected suffix after a single item was resized.
	fullRebuild bool
}

// NewStoredAxisMeasure returns a StoredAxisMeasure
// that gives new logical items defaultPixels extent.
func NewStoredAxisMeasure(defaultPixels float64) *StoredAxisMeasure {
	return &StoredAxisMeasure{
		remap:         Pristine{},
		pixelsToVis:   newPixelIndex(),
		defaultPixels: defaultPixels,
	}
}

func (m *StoredAxisMeasure) DefaultPixels() float64 { return m.defaultPixels }

// Remap returns a copy of the current Remap.
func (m *StoredAxisMeasure) Remap() Remap { return cloneRemap(m.remap) }

// LogicalLen returns the number of logical items.
func (m *StoredAxisMeasure) LogicalLen() int { return len(m.logPixLengths) }

// VisibleLen returns the number of visible items.
func (m *StoredAxisMeasure) VisibleLen() int { return len(m.visPixLengths) }

// LogPixelLengths returns a copy of the extents in logical order.
func (m *StoredAxisMeasure) LogPixelLengths() []float64 {
	return slices.Clone(m.logPixLengths)
}

func (m *StoredAxisMeasure) Border() float64 { return m.border }

// SetAxisProperties appends the default extent for new logical items
// or drops the extents of removed ones from the end,
// then rebuilds all derived maps for the new remap.
func (m *StoredAxisMeasure) SetAxisProperties(border float64, logicalLen int, remap Remap) {
	m.border = border
	m.remap = cloneRemap(remap)

	logicalLen = max(logicalLen, 0)
	if oldLen := len(m.logPixLengths); oldLen > logicalLen {
		m.logPixLengths = m.logPixLengths[:logicalLen]
	} else {
		for range logicalLen - oldLen {
			m.logPixLengths = append(m.logPixLengths, m.defaultPixels)
		}
	}

	m.buildMaps()
}

func (m *StoredAxisMeasure) buildMaps() {
	visLen := m.remap.VisibleLen(len(m.logPixLengths))
	m.visPixLengths = slices.Grow(m.visPixLengths[:0], visLen)
	m.visPixLengths = projectLengths(m.visPixLengths, m.remap, m.logPixLengths, m.defaultPixels)
	m.layoutFrom(0)
}

// layoutFrom recomputes the first pixels of the visible items
// starting at start and the total length.
// The first pixels before start must still be valid.
func (m *StoredAxisMeasure) layoutFrom(start VisIdx) {
	var removed []float64
	if start == 0 {
		m.pixelsToVis.clear()
	} else {
		removed = slices.Clone(m.firstPixels[start:])
		for _, pixel := range removed {
			m.pixelsToVis.remove(pixel)
		}
	}
	m.firstPixels = m.firstPixels[:start]

	cur := 0.0
	if start > 0 {
		prev := start - 1
		cur = m.firstPixels[prev]
		cur += m.visPixLengths[prev] + m.border
	}
	for vis := start; int(vis) < len(m.visPixLengths); vis++ {
		m.firstPixels = append(m.firstPixels, cur)
		m.pixelsToVis.set(cur, vis)
		cur += m.visPixLengths[vis] + m.border
	}
	m.totalPixelLength = cur

	// Negative extents make first pixels non monotonic,
	// so a removed key can still be the start of an item before start
	for _, pixel := range removed {
		if !m.pixelsToVis.has(pixel) {
			m.restoreOwner(pixel, start)
		}
	}
}

// restoreOwner maps pixel to the last item before start beginning at it.
func (m *StoredAxisMeasure) restoreOwner(pixel float64, start VisIdx) {
	key := totalOrderKey(pixel)
	for vis := start - 1; vis >= 0; vis-- {
		if totalOrderKey(m.firstPixels[vis]) == key {
			m.pixelsToVis.set(pixel, vis)
			return
		}
	}
}

func (m *StoredAxisMeasure) TotalPixelLength() float64 {
	return m.totalPixelLength
}

func (m *StoredAxisMeasure) VisFromPixel(pixel float64) (VisIdx, bool) {
	if pixel == 0 {
		pixel = 0 // -0 belongs to the first item
	}
	if pixel >= m.totalPixelLength {
		return 0, false
	}
	return m.pixelsToVis.floor(pixel)
}

func (m *StoredAxisMeasure) VisRangeFromPixels(p0, p1 float64) (from, to VisIdx, ok bool) {
	if len(m.visPixLengths) == 0 {
		return 0, 0, false
	}
	from, ok = m.VisFromPixel(p0)
	if !ok {
		from = 0
	}
	to, ok = m.VisFromPixel(p1)
	if !ok {
		to = VisIdx(len(m.visPixLengths) - 1)
	}
	return from, to, true
}

func (m *StoredAxisMeasure) FirstPixelFromVis(idx VisIdx) (float64, bool) {
	if idx < 0 || int(idx) >= len(m.firstPixels) {
		return 0, false
	}
	return m.firstPixels[idx], true
}

func (m *StoredAxisMeasure) PixelsLengthForVis(idx VisIdx) (float64, bool) {
	if idx < 0 || int(idx) >= len(m.visPixLengths) {
		return 0, false
	}
	return m.visPixLengths[idx], true
}

func (m *StoredAxisMeasure) SetFarPixelForVis(idx VisIdx, pixel float64) float64 {
	first, _ := m.FirstPixelFromVis(idx)
	return m.SetPixelLengthForVis(idx, max(0, pixel-first))
}

func (m *StoredAxisMeasure) SetPixelLengthForVis(idx VisIdx, length float64) float64 {
	log, ok := m.remap.LogIdx(idx)
	if !ok || log < 0 || int(log) >= len(m.logPixLengths) {
		return 0
	}
	m.logPixLengths[log] = length

	if m.fullRebuild {
		m.buildMaps()
		return length
	}
	positions := visPositionsOf(m.remap, log, len(m.visPixLengths))
	if len(positions) == 0 {
		return length
	}
	for _, vis := range positions {
		m.visPixLengths[vis] = length
	}
	m.layoutFrom(positions[0])
	return length
}

func (m *StoredAxisMeasure) CanResize(VisIdx) bool { return true }

func (m *StoredAxisMeasure) PixelNearBorder(pixel float64) (VisIdx, bool) {
	return PixelNearBorder(m, pixel)
}

// Clone returns an independent copy of the measure.
func (m *StoredAxisMeasure) Clone() *StoredAxisMeasure {
	c := *m
	c.remap = cloneRemap(m.remap)
	c.logPixLengths = slices.Clone(m.logPixLengths)
	c.visPixLengths = slices.Clone(m.visPixLengths)
	c.firstPixels = slices.Clone(m.firstPixels)
	c.pixelsToVis = m.pixelsToVis.clone()
	return &c
}

func (m *StoredAxisMeasure) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "StoredAxisMeasure{remap: %v, logPixLengths: %v, visPixLengths: %v", m.remap, m.logPixLengths, m.visPixLengths)
	fmt.Fprintf(&b, ", defaultPixels: %g, border: %g, totalPixelLength: %g", m.defaultPixels, m.border, m.totalPixelLength)
	b.WriteString(", firstPixels: {")
	for vis, pixel := range m.firstPixels {
		if vis > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %g", vis, pixel)
	}
	b.WriteString("}, pixelsToVis: {")
	for i, e := range m.pixelsToVis.entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g: %d", e.pixel, e.vis)
	}
	b.WriteString("}}")
	return b.String()
}
