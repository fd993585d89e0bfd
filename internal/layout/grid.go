// Package layout partitions rectangular areas into responsive grids of
// sub-rectangles. All functions are total: degenerate widths, heights and
// item counts are absorbed by clamping, never by returning an error.
package layout

import (
	"math"

	"github.com/vovakirdan/tui-ambient/internal/core"
)

// MaxRows caps the number of rows Split will ever produce. It bounds the
// allocation for pathological item counts; well-formed inputs never reach it.
// A safety valve, not a contract — tune freely.
const MaxRows = 1024

// Grid computes responsive grid layouts: the column count adapts to the
// available width, the row count to the number of items.
type Grid struct {
	// MinColumnWidth is the narrowest a column may get before the grid
	// sheds a column.
	MinColumnWidth int
	// MaxColumns bounds the column count no matter how wide the area is.
	MaxColumns int
}

// DefaultGrid returns a grid tuned for card-sized panes.
func DefaultGrid() Grid {
	return Grid{
		MinColumnWidth: 30,
		MaxColumns:     4,
	}
}

// NewGrid creates a grid with the given settings, flooring both at 1.
func NewGrid(minColumnWidth, maxColumns int) Grid {
	return Grid{
		MinColumnWidth: core.Max(minColumnWidth, 1),
		MaxColumns:     core.Max(maxColumns, 1),
	}
}

// Columns returns the column count for the given width. Always at least 1,
// even for zero width, so downstream division is safe; at most MaxColumns.
func (g Grid) Columns(width int) int {
	minW := core.Max(g.MinColumnWidth, 1)
	maxC := core.Max(g.MaxColumns, 1)
	if width == 0 {
		return 1
	}
	return core.Clamp(width/minW, 1, maxC)
}

// Split partitions area into exactly itemCount sub-rectangles in row-major
// order. Rows are equal-height bands, columns equal-width slices, both by
// proportional split so the totals always sum to the area's dimensions.
// Trailing slices of the final partially-filled row are discarded.
func (g Grid) Split(area core.Rect, itemCount int) []core.Rect {
	if itemCount <= 0 {
		return nil
	}

	columns := g.Columns(area.W)

	// Row count in float64 to dodge integer-truncation bugs, then clamped:
	// NaN or negative becomes 1, oversized results are capped at MaxRows.
	rows := 1
	if rf := math.Ceil(float64(itemCount) / float64(columns)); !math.IsNaN(rf) && rf >= 1 {
		if rf > MaxRows {
			rows = MaxRows
		} else {
			rows = int(rf)
		}
	}

	cells := make([]core.Rect, 0, itemCount)
	for _, band := range SplitVertical(area, rows) {
		for _, slice := range SplitHorizontal(band, columns) {
			cells = append(cells, slice)
			if len(cells) == itemCount {
				return cells
			}
		}
	}
	return cells
}

// SplitVertical cuts area into n horizontal bands of proportional height.
// Band i spans rows [H*i/n, H*(i+1)/n), so the heights differ by at most one
// cell and always sum to exactly area.H.
func SplitVertical(area core.Rect, n int) []core.Rect {
	if n <= 0 {
		return nil
	}
	bands := make([]core.Rect, n)
	for i := 0; i < n; i++ {
		top := area.Y + area.H*i/n
		bottom := area.Y + area.H*(i+1)/n
		bands[i] = core.NewRect(area.X, top, area.W, bottom-top)
	}
	return bands
}

// SplitHorizontal cuts area into n vertical slices of proportional width.
// Widths always sum to exactly area.W.
func SplitHorizontal(area core.Rect, n int) []core.Rect {
	if n <= 0 {
		return nil
	}
	slices := make([]core.Rect, n)
	for i := 0; i < n; i++ {
		left := area.X + area.W*i/n
		right := area.X + area.W*(i+1)/n
		slices[i] = core.NewRect(left, area.Y, right-left, area.H)
	}
	return slices
}

// CenteredRect returns a box of the requested size centered within container.
// Padding uses saturating subtraction and the box dimensions are clamped to
// the container's, so an oversized request degrades to a corner-aligned,
// container-sized box instead of going negative.
func CenteredRect(width, height int, container core.Rect) core.Rect {
	hPad := core.Max(container.W-width, 0) / 2
	vPad := core.Max(container.H-height, 0) / 2

	return core.NewRect(
		container.X+hPad,
		container.Y+vPad,
		core.Min(width, container.W),
		core.Min(height, container.H),
	)
}
