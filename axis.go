package tableaxis

import "fmt"

// TableAxis selects which dimension of a table is measured.
// For Rows the main axis is vertical, for Columns it is horizontal.
type TableAxis int

const (
	Rows TableAxis = iota
	Columns
)

// String implements the fmt.Stringer interface.
func (axis TableAxis) String() string {
	switch axis {
	case Rows:
		return "Rows"
	case Columns:
		return "Columns"
	}
	return fmt.Sprintf("TableAxis(%d)", int(axis))
}

// CrossAxis returns the orthogonal axis.
func (axis TableAxis) CrossAxis() TableAxis {
	if axis == Rows {
		return Columns
	}
	return Rows
}

// MainPixelFromPoint returns the coordinate of point along the main axis.
func (axis TableAxis) MainPixelFromPoint(point Point) float64 {
	if axis == Rows {
		return point.Y
	}
	return point.X
}

// PixelsFromRect returns the near and far bounds of rect along the main axis.
func (axis TableAxis) PixelsFromRect(rect Rect) (near, far float64) {
	if axis == Rows {
		return rect.Y0, rect.Y1
	}
	return rect.X0, rect.X1
}

// DefaultHeaderCross returns the configured cross axis extent
// of the header belonging to axis.
// Row headers are a column of DefaultRowHeaderWidth,
// column headers a row of DefaultColHeaderHeight.
func (axis TableAxis) DefaultHeaderCross() float64 {
	if axis == Rows {
		return DefaultRowHeaderWidth
	}
	return DefaultColHeaderHeight
}

// Coords places main and cross into x and y.
func (axis TableAxis) Coords(main, cross float64) (x, y float64) {
	if axis == Rows {
		return cross, main
	}
	return main, cross
}

func (axis TableAxis) Size(main, cross float64) Size {
	w, h := axis.Coords(main, cross)
	return Size{Width: w, Height: h}
}

func (axis TableAxis) CellOrigin(main, cross float64) Point {
	x, y := axis.Coords(main, cross)
	return Point{X: x, Y: y}
}

// ResizeCursor returns the cursor to show while
// the border between two items of axis is dragged.
func (axis TableAxis) ResizeCursor() Cursor {
	if axis == Rows {
		return CursorResizeUpDown
	}
	return CursorResizeLeftRight
}

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the point translated by -other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size is an extent in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis aligned rectangle given by
// its near (X0, Y0) and far (X1, Y1) corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFromOrigin returns the rectangle at origin with size.
func RectFromOrigin(origin Point, size Size) Rect {
	return Rect{
		X0: origin.X,
		Y0: origin.Y,
		X1: origin.X + size.Width,
		Y1: origin.Y + size.Height,
	}
}

func (r Rect) Origin() Point { return Point{X: r.X0, Y: r.Y0} }
func (r Rect) Size() Size    { return Size{Width: r.X1 - r.X0, Height: r.Y1 - r.Y0} }

// Contains returns true if p is inside of the rectangle,
// the far edges are excluded.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Cursor is a platform independent mouse cursor hint.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorResizeUpDown
	CursorResizeLeftRight
)

// String implements the fmt.Stringer interface.
func (c Cursor) String() string {
	switch c {
	case CursorArrow:
		return "Arrow"
	case CursorResizeUpDown:
		return "ResizeUpDown"
	case CursorResizeLeftRight:
		return "ResizeLeftRight"
	}
	return fmt.Sprintf("Cursor(%d)", int(c))
}
