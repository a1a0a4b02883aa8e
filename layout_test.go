package tableaxis

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestLayout returns a Layout of 3 rows of 20 pixels
// and 2 columns of 50 pixels with a border of 1 pixel and headers,
// so the first cell starts at (100, 25).
func newTestLayout(t *testing.T) (*Layout, *[]AxisMeasureAdjustment, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	var adjustments []AxisMeasureAdjustment
	l := NewLayout(NewStoredAxisMeasure(20), NewStoredAxisMeasure(50), OptionHeaders)
	l.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l.OnAdjust = func(adj AxisMeasureAdjustment) { adjustments = append(adjustments, adj) }
	l.SetView(NewStringsView([][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}}, "A", "B"), 1)
	return l, &adjustments, &logs
}

func TestLayout_Geometry(t *testing.T) {
	l, _, _ := newTestLayout(t)

	require.Equal(t, 3, l.LogicalLen(Rows))
	require.Equal(t, 2, l.LogicalLen(Columns))
	require.Equal(t, Point{X: 100, Y: 25}, l.ContentOrigin())
	require.Equal(t, Size{Width: 102, Height: 63}, l.ContentSize())

	rect, ok := l.CellRect(1, 1)
	require.True(t, ok)
	require.Equal(t, Rect{X0: 151, Y0: 46, X1: 201, Y1: 66}, rect)

	_, ok = l.CellRect(3, 0)
	require.False(t, ok)
	_, ok = l.CellRect(0, 2)
	require.False(t, ok)

	row, col, ok := l.CellAt(Point{X: 151, Y: 46})
	require.True(t, ok)
	require.Equal(t, [2]VisIdx{1, 1}, [2]VisIdx{row, col})

	_, _, ok = l.CellAt(Point{X: 50, Y: 50})
	require.False(t, ok, "inside of the row headers")
	_, _, ok = l.CellAt(Point{X: 150, Y: 200})
	require.False(t, ok, "below the last row")

	from, to, ok := l.VisibleRange(Rows, Rect{X0: 0, Y0: 50, X1: 300, Y1: 1000})
	require.True(t, ok)
	require.Equal(t, [2]VisIdx{1, 2}, [2]VisIdx{from, to})
	from, to, ok = l.VisibleRange(Columns, Rect{X0: 0, Y0: 0, X1: 120, Y1: 10})
	require.True(t, ok)
	require.Equal(t, [2]VisIdx{0, 0}, [2]VisIdx{from, to})
}

func TestLayout_WithoutHeaders(t *testing.T) {
	l := NewLayout(NewFixedAxisMeasure(10), NewFixedAxisMeasure(30), 0)
	l.SetView(NewStringsView(nil, "A", "B", "C"), 0)
	require.Equal(t, Point{}, l.ContentOrigin())
	require.Equal(t, 0.0, l.HeaderCross(Rows))
	require.Equal(t, Size{Width: 90, Height: 0}, l.ContentSize())

	_, _, ok := l.VisibleRange(Rows, Rect{X1: 100, Y1: 100})
	require.False(t, ok, "no rows")
}

func TestLayout_ResizeHitAndDrag(t *testing.T) {
	l, adjustments, logs := newTestLayout(t)

	border, cursor, ok := l.ResizeHit(Columns, Point{X: 151, Y: 10})
	require.True(t, ok)
	require.Equal(t, VisIdx(1), border)
	require.Equal(t, CursorResizeLeftRight, cursor)

	_, cursor, ok = l.ResizeHit(Columns, Point{X: 100, Y: 10})
	require.False(t, ok, "leading edge of the first column")
	require.Equal(t, CursorArrow, cursor)

	_, _, ok = l.ResizeHit(Columns, Point{X: 125, Y: 10})
	require.False(t, ok)

	length, ok := l.DragBorder(Columns, border, Point{X: 180, Y: 10})
	require.True(t, ok)
	require.Equal(t, 80.0, length)
	require.Equal(t, Size{Width: 132, Height: 63}, l.ContentSize())
	require.Equal(t, []AxisMeasureAdjustment{
		LengthChanged{TableAxis: Columns, Vis: 0, Length: 80},
	}, *adjustments)
	require.Contains(t, logs.String(), "table item resized")

	border, cursor, ok = l.ResizeHit(Rows, Point{X: 10, Y: 25 + 21*3 - 1})
	require.True(t, ok)
	require.Equal(t, VisIdx(3), border, "trailing edge of the last row")
	require.Equal(t, CursorResizeUpDown, cursor)

	_, ok = l.DragBorder(Rows, 0, Point{})
	require.False(t, ok, "no item in front of the first border")
}

func TestLayout_ResizeItem(t *testing.T) {
	l, adjustments, logs := newTestLayout(t)

	length, ok := l.ResizeItem(Rows, 2, 40)
	require.True(t, ok)
	require.Equal(t, 40.0, length)
	rect, _ := l.CellRect(2, 0)
	require.Equal(t, 40.0, rect.Size().Height)

	_, ok = l.ResizeItem(Rows, 3, 40)
	require.False(t, ok, "not a visible row")
	require.Contains(t, logs.String(), "rejected resize")
	require.Len(t, *adjustments, 1)

	fixed := NewLayout(NewFixedAxisMeasure(10), NewFixedAxisMeasure(10), 0)
	fixed.Logger = l.Logger
	fixed.SetView(testSource(), 0)
	_, ok = fixed.ResizeItem(Rows, 0, 40)
	require.False(t, ok, "fixed measure can't resize")
}

func TestLayout_RejectsNaN(t *testing.T) {
	l, adjustments, logs := newTestLayout(t)
	columns := l.Measure(Columns).(*StoredAxisMeasure)

	_, ok := l.ResizeItem(Columns, 0, nan())
	require.False(t, ok)
	_, ok = l.DragBorder(Columns, 1, Point{X: nan(), Y: 10})
	require.False(t, ok)

	require.Equal(t, []float64{50, 50}, columns.LogPixelLengths(), "nothing changed")
	require.Empty(t, *adjustments)
	require.Contains(t, logs.String(), "rejected NaN")
}

func TestLayout_ResizeStaleItem(t *testing.T) {
	l, adjustments, _ := newTestLayout(t)
	l.SetRemap(Columns, Selected{Details: Full{1, 5}})
	*adjustments = nil

	_, ok := l.ResizeItem(Columns, 1, 70)
	require.False(t, ok, "visible column maps to a removed logical column")
	require.Empty(t, *adjustments)
}

func TestLayout_SetViewWithRemappedView(t *testing.T) {
	l := NewLayout(NewStoredAxisMeasure(20), NewStoredAxisMeasure(50), 0)
	l.SetView(&FilteredView{Source: testSource(), RowOffset: 1, RowLimit: 2, ColumnMapping: []int{2}}, 0)

	require.Equal(t, 5, l.LogicalLen(Rows))
	require.Equal(t, 3, l.LogicalLen(Columns))
	require.Equal(t, Size{Width: 50, Height: 40}, l.ContentSize())

	l.ResizeItem(Columns, 0, 10)
	columns := l.Measure(Columns).(*StoredAxisMeasure)
	require.Equal(t, []float64{50, 50, 10}, columns.LogPixelLengths(), "resized the mapped logical column")
}

func TestLayout_SetRemapAndApplyAdjustment(t *testing.T) {
	l, adjustments, _ := newTestLayout(t)
	mirror, _, _ := newTestLayout(t)

	l.ResizeItem(Columns, 1, 30)
	l.SetRemap(Columns, SortedRemap(2, func(a, b LogIdx) bool { return a > b }))
	require.Equal(t, []AxisMeasureAdjustment{
		LengthChanged{TableAxis: Columns, Vis: 1, Length: 30},
		RemapChanged{TableAxis: Columns, Remap: Selected{Details: Full{1, 0}}},
	}, *adjustments)

	rect, _ := l.CellRect(0, 0)
	require.Equal(t, 30.0, rect.Size().Width, "column 1 is shown first")

	for _, adj := range *adjustments {
		mirror.ApplyAdjustment(adj)
	}
	for row := range VisRangeInc(0, 2) {
		for col := range VisRangeInc(0, 1) {
			want, _ := l.CellRect(row, col)
			got, ok := mirror.CellRect(row, col)
			require.True(t, ok)
			require.Equal(t, want, got)
		}
	}
}

func TestAxisMeasureAdjustment_String(t *testing.T) {
	require.Equal(t, "LengthChanged(Rows, 2, 40.5)", LengthChanged{TableAxis: Rows, Vis: 2, Length: 40.5}.String())
	require.Equal(t, "RemapChanged(Columns, Pristine)", RemapChanged{TableAxis: Columns, Remap: Pristine{}}.String())
	require.Equal(t, Columns, RemapChanged{TableAxis: Columns}.Axis())
}
