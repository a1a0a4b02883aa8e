package tableaxis

import "fmt"

// AxisMeasureAdjustment describes a mutation
// that was already applied to the AxisMeasure of an axis.
// The implementations are LengthChanged and RemapChanged.
// Dispatching adjustments is up to the host,
// see AdjustmentHandler.
type AxisMeasureAdjustment interface {
	Axis() TableAxis
	String() string

	isAdjustment()
}

// LengthChanged reports that the visible item Vis
// of the axis now has Length pixels.
type LengthChanged struct {
	TableAxis TableAxis
	Vis       VisIdx
	Length    float64
}

func (a LengthChanged) Axis() TableAxis { return a.TableAxis }

func (a LengthChanged) String() string {
	return fmt.Sprintf("LengthChanged(%s, %d, %g)", a.TableAxis, a.Vis, a.Length)
}

func (LengthChanged) isAdjustment() {}

// RemapChanged reports that the axis now uses Remap.
type RemapChanged struct {
	TableAxis TableAxis
	Remap     Remap
}

func (a RemapChanged) Axis() TableAxis { return a.TableAxis }

func (a RemapChanged) String() string {
	return fmt.Sprintf("RemapChanged(%s, %v)", a.TableAxis, a.Remap)
}

func (RemapChanged) isAdjustment() {}

// AdjustmentHandler is called with every adjustment a Layout applies.
type AdjustmentHandler func(AxisMeasureAdjustment)
