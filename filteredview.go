package tableaxis

import "fmt"

var _ RemappedView = new(FilteredView)

// FilteredView shows a window of the rows
// and a selection of the columns of Source.
type FilteredView struct {
	Source View
	// Offset index of the first row from Source, must be positive.
	RowOffset int
	// Limits the number of rows, only used if > 0.
	RowLimit int
	// If not nil then the view has as many
	// columns as ColumnMapping has elements and
	// every element is a column index into the Source view.
	// If nil then the view has as many columns as the Source view.
	ColumnMapping []int
}

// Validate returns an error wrapping ErrIndexOutOfRange
// if ColumnMapping references a column Source does not have.
func (view *FilteredView) Validate() error {
	if view.RowOffset < 0 {
		return fmt.Errorf("negative RowOffset %d: %w", view.RowOffset, ErrIndexOutOfRange)
	}
	_, err := RemapFromMapping(view.ColumnMapping, view.LogicalNumCols())
	return err
}

func (view *FilteredView) Columns() []string {
	sourceCols := view.Source.Columns()
	if view.ColumnMapping == nil {
		return sourceCols
	}
	mappedCols := make([]string, len(view.ColumnMapping))
	for i, iSource := range view.ColumnMapping {
		if iSource >= 0 && iSource < len(sourceCols) {
			mappedCols[i] = sourceCols[iSource]
		}
	}
	return mappedCols
}

func (view *FilteredView) NumCols() int {
	if view.ColumnMapping != nil {
		return len(view.ColumnMapping)
	}
	return len(view.Source.Columns())
}

func (view *FilteredView) NumRows() int {
	n := view.Source.NumRows() - max(view.RowOffset, 0)
	if n < 0 {
		return 0
	}
	if view.RowLimit > 0 && n > view.RowLimit {
		return view.RowLimit
	}
	return n
}

func (view *FilteredView) LogicalNumRows() int { return view.Source.NumRows() }
func (view *FilteredView) LogicalNumCols() int { return len(view.Source.Columns()) }

// RowRemap returns Pristine if all Source rows are shown,
// else a Full remap of the shown row window.
func (view *FilteredView) RowRemap() Remap {
	numRows := view.NumRows()
	if numRows == view.LogicalNumRows() {
		return Pristine{}
	}
	offset := max(view.RowOffset, 0)
	mapping := make(Full, numRows)
	for i := range mapping {
		mapping[i] = LogIdx(offset + i)
	}
	return Selected{Details: mapping}
}

// ColumnRemap returns Pristine if ColumnMapping is nil,
// else a Full remap of ColumnMapping.
// Invalid mappings are returned as they are, see Validate.
func (view *FilteredView) ColumnRemap() Remap {
	if view.ColumnMapping == nil {
		return Pristine{}
	}
	mapping := make(Full, len(view.ColumnMapping))
	for i, col := range view.ColumnMapping {
		mapping[i] = LogIdx(col)
	}
	return Selected{Details: mapping}
}
