package tableaxis

import (
	"math"

	"github.com/google/btree"
)

// pixelIndex is an ordered map from the first pixel
// of visible items to their VisIdx.
// Keys are ordered by the IEEE 754 total order,
// NaN is never inserted or looked up.
type pixelIndex struct {
	tree *btree.BTreeG[pixelEntry]
}

type pixelEntry struct {
	pixel float64
	vis   VisIdx
}

const pixelIndexDegree = 16

func newPixelIndex() pixelIndex {
	return pixelIndex{tree: btree.NewG(pixelIndexDegree, pixelEntryLess)}
}

func pixelEntryLess(a, b pixelEntry) bool {
	return totalOrderKey(a.pixel) < totalOrderKey(b.pixel)
}

// totalOrderKey maps f to an unsigned integer
// that sorts like f in the IEEE 754 total order.
func totalOrderKey(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}
	return bits | 1<<63
}

// set maps pixel to vis, replacing a previous mapping of pixel.
func (idx pixelIndex) set(pixel float64, vis VisIdx) {
	idx.tree.ReplaceOrInsert(pixelEntry{pixel: pixel, vis: vis})
}

func (idx pixelIndex) has(pixel float64) bool {
	return idx.tree.Has(pixelEntry{pixel: pixel})
}

func (idx pixelIndex) remove(pixel float64) {
	idx.tree.Delete(pixelEntry{pixel: pixel})
}

// floor returns the VisIdx of the greatest key <= pixel.
func (idx pixelIndex) floor(pixel float64) (vis VisIdx, ok bool) {
	if math.IsNaN(pixel) {
		return 0, false
	}
	idx.tree.DescendLessOrEqual(pixelEntry{pixel: pixel}, func(e pixelEntry) bool {
		vis, ok = e.vis, true
		return false
	})
	return vis, ok
}

func (idx pixelIndex) clear() {
	idx.tree.Clear(true)
}

func (idx pixelIndex) len() int {
	return idx.tree.Len()
}

func (idx pixelIndex) clone() pixelIndex {
	return pixelIndex{tree: idx.tree.Clone()}
}

// entries returns all mappings in ascending pixel order.
func (idx pixelIndex) entries() []pixelEntry {
	entries := make([]pixelEntry, 0, idx.tree.Len())
	idx.tree.Ascend(func(e pixelEntry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}
