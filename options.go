package tableaxis

import "strings"

type Option int

const (
	// OptionRowHeaders reserves DefaultRowHeaderWidth
	// left of the cells for row headers.
	OptionRowHeaders Option = 1 << iota
	// OptionColumnHeaders reserves DefaultColHeaderHeight
	// above the cells for column headers.
	OptionColumnHeaders

	OptionHeaders = OptionRowHeaders | OptionColumnHeaders
)

func (o Option) Has(option Option) bool {
	return o&option != 0
}

func (o Option) String() string {
	var b strings.Builder
	if o.Has(OptionRowHeaders) {
		b.WriteString("RowHeaders")
	}
	if o.Has(OptionColumnHeaders) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("ColumnHeaders")
	}
	if b.Len() == 0 {
		return "no Option"
	}
	return b.String()
}

// HeaderOption returns the option that enables the header of axis.
func HeaderOption(axis TableAxis) Option {
	if axis == Rows {
		return OptionRowHeaders
	}
	return OptionColumnHeaders
}
