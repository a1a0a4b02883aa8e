package tableaxis

import (
	"log/slog"
	"math"
)

// Layout combines the AxisMeasure of the rows and the columns
// of a table into cell geometry and applies resize and remap
// requests of the host, reporting them as AxisMeasureAdjustment.
//
// A Layout is not safe for concurrent use.
type Layout struct {
	measures   [2]AxisMeasure
	logicalLen [2]int
	border     float64

	Options Option
	// Logger defaults to slog.Default() if nil
	Logger *slog.Logger
	// OnAdjust is called after every applied
	// resize or remap if not nil.
	OnAdjust AdjustmentHandler
}

func NewLayout(rows, columns AxisMeasure, options Option) *Layout {
	return &Layout{
		measures: [2]AxisMeasure{Rows: rows, Columns: columns},
		Options:  options,
	}
}

// Measure returns the AxisMeasure of axis.
func (l *Layout) Measure(axis TableAxis) AxisMeasure {
	return l.measures[axis]
}

// LogicalLen returns the number of logical items of axis
// as passed to the last SetView.
func (l *Layout) LogicalLen(axis TableAxis) int {
	return l.logicalLen[axis]
}

func (l *Layout) log() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// SetView configures both measures for the rows and columns
// of view with border pixels between items.
// The remaps of a RemappedView are applied.
func (l *Layout) SetView(view View, border float64) {
	l.border = border
	for _, axis := range []TableAxis{Rows, Columns} {
		logicalLen, remap := logicalShape(view, axis)
		l.logicalLen[axis] = logicalLen
		l.measures[axis].SetAxisProperties(border, logicalLen, remap)
	}
}

// SetRemap changes the visible order of axis
// and reports a RemapChanged adjustment.
func (l *Layout) SetRemap(axis TableAxis, remap Remap) {
	remap = cloneRemap(remap)
	l.measures[axis].SetAxisProperties(l.border, l.logicalLen[axis], remap)
	l.log().Debug("table axis remapped", "axis", axis, "remap", remap)
	l.emit(RemapChanged{TableAxis: axis, Remap: remap})
}

// ResizeItem sets the extent of the visible item vis of axis.
// It returns the applied extent and false if the item
// can't be resized, in which case nothing is changed.
func (l *Layout) ResizeItem(axis TableAxis, vis VisIdx, length float64) (float64, bool) {
	if math.IsNaN(length) {
		l.log().Warn("rejected NaN length for table item", "axis", axis, "vis", vis)
		return 0, false
	}
	return l.resize(axis, vis, func(m AxisMeasure) float64 {
		return m.SetPixelLengthForVis(vis, length)
	})
}

// DragBorder resizes the item in front of border,
// as returned by ResizeHit, so that it ends at point.
func (l *Layout) DragBorder(axis TableAxis, border VisIdx, point Point) (float64, bool) {
	vis, ok := border.CheckedSub(1)
	if !ok {
		return 0, false
	}
	pixel := axis.MainPixelFromPoint(point.Sub(l.ContentOrigin()))
	if math.IsNaN(pixel) {
		l.log().Warn("rejected NaN border position", "axis", axis, "border", border)
		return 0, false
	}
	return l.resize(axis, vis, func(m AxisMeasure) float64 {
		return m.SetFarPixelForVis(vis, pixel)
	})
}

func (l *Layout) resize(axis TableAxis, vis VisIdx, set func(AxisMeasure) float64) (float64, bool) {
	m := l.measures[axis]
	if _, ok := m.PixelsLengthForVis(vis); !ok || !m.CanResize(vis) {
		l.log().Warn("rejected resize of table item", "axis", axis, "vis", vis)
		return 0, false
	}
	applied := set(m)
	// A measure returns 0 without a change for items
	// it can't resolve to a logical item
	if current, _ := m.PixelsLengthForVis(vis); current != applied {
		l.log().Warn("rejected resize of unresolvable table item", "axis", axis, "vis", vis)
		return 0, false
	}
	l.log().Debug("table item resized", "axis", axis, "vis", vis, "length", applied)
	l.emit(LengthChanged{TableAxis: axis, Vis: vis, Length: applied})
	return applied, true
}

func (l *Layout) emit(adj AxisMeasureAdjustment) {
	if l.OnAdjust != nil {
		l.OnAdjust(adj)
	}
}

// ApplyAdjustment replays an adjustment reported
// by another Layout showing the same table.
// No adjustment is reported for it.
func (l *Layout) ApplyAdjustment(adj AxisMeasureAdjustment) {
	switch a := adj.(type) {
	case LengthChanged:
		l.measures[a.TableAxis].SetPixelLengthForVis(a.Vis, a.Length)
	case RemapChanged:
		l.measures[a.TableAxis].SetAxisProperties(l.border, l.logicalLen[a.TableAxis], a.Remap)
	}
}

// HeaderCross returns the cross axis extent of the header of axis,
// or zero if the header is not enabled by the options.
func (l *Layout) HeaderCross(axis TableAxis) float64 {
	if !l.Options.Has(HeaderOption(axis)) {
		return 0
	}
	return axis.DefaultHeaderCross()
}

// ContentOrigin returns the top left corner of the first cell.
func (l *Layout) ContentOrigin() Point {
	return Point{X: l.HeaderCross(Rows), Y: l.HeaderCross(Columns)}
}

// ContentSize returns the size of all cells without headers.
func (l *Layout) ContentSize() Size {
	return Rows.Size(
		l.measures[Rows].TotalPixelLength(),
		l.measures[Columns].TotalPixelLength(),
	)
}

// CellRect returns the rectangle of the cell at row and col.
func (l *Layout) CellRect(row, col VisIdx) (Rect, bool) {
	y, ok := l.measures[Rows].FirstPixelFromVis(row)
	if !ok {
		return Rect{}, false
	}
	height, _ := l.measures[Rows].PixelsLengthForVis(row)
	x, ok := l.measures[Columns].FirstPixelFromVis(col)
	if !ok {
		return Rect{}, false
	}
	width, _ := l.measures[Columns].PixelsLengthForVis(col)

	origin := l.ContentOrigin().Add(Rows.CellOrigin(y, x))
	return RectFromOrigin(origin, Rows.Size(height, width)), true
}

// CellAt returns the cell under point.
func (l *Layout) CellAt(point Point) (row, col VisIdx, ok bool) {
	local := point.Sub(l.ContentOrigin())
	row, ok = l.measures[Rows].VisFromPixel(Rows.MainPixelFromPoint(local))
	if !ok {
		return 0, 0, false
	}
	col, ok = l.measures[Columns].VisFromPixel(Columns.MainPixelFromPoint(local))
	if !ok {
		return 0, 0, false
	}
	return row, col, true
}

// VisibleRange returns the inclusive range of items of axis
// overlapping viewport.
// It returns false if axis has no visible items.
func (l *Layout) VisibleRange(axis TableAxis, viewport Rect) (from, to VisIdx, ok bool) {
	near, far := axis.PixelsFromRect(viewport)
	offset := axis.MainPixelFromPoint(l.ContentOrigin())
	return l.measures[axis].VisRangeFromPixels(near-offset, far-offset)
}

// ResizeHit returns the border of axis under point
// and the cursor to show for it, if the item in front
// of the border can be resized.
// The returned border is the VisIdx of the item following it
// and can be passed to DragBorder.
func (l *Layout) ResizeHit(axis TableAxis, point Point) (border VisIdx, cursor Cursor, ok bool) {
	m := l.measures[axis]
	pixel := axis.MainPixelFromPoint(point.Sub(l.ContentOrigin()))
	border, ok = m.PixelNearBorder(pixel)
	if !ok {
		return 0, CursorArrow, false
	}
	item, ok := border.CheckedSub(1)
	if !ok || !m.CanResize(item) {
		return 0, CursorArrow, false
	}
	return border, axis.ResizeCursor(), true
}
