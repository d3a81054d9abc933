package window

// Viewport is the visible scroll area: current offset plus size.
type Viewport struct {
	Offset int // rows scrolled past the top of the content
	Height int // rows the container can show
}

// Window is the contiguous index range of items currently materialized.
// End is inclusive; an empty window has Start=0, End=-1. It is purely
// derived state, recomputed on every viewport or item-set change.
type Window struct {
	Start   int // first materialized index
	End     int // last materialized index (inclusive)
	OffsetY int // summed height of all items before Start
	Height  int // summed height of items Start..End
}

// Empty reports whether the window holds no items.
func (w Window) Empty() bool { return w.End < w.Start }

// Count returns the number of materialized items.
func (w Window) Count() int {
	if w.Empty() {
		return 0
	}
	return w.End - w.Start + 1
}

// Contains reports whether index i is materialized.
func (w Window) Contains(i int) bool { return i >= w.Start && i <= w.End }

// ClampOffset clamps a scroll offset into [0, total-height]. Negative
// or garbled offsets collapse to 0; offsets past the end of the
// content (for example after item removal) pull back so the last page
// stays filled.
func ClampOffset(offset, total, height int) int {
	maxOff := total - height
	if maxOff < 0 {
		maxOff = 0
	}
	if offset > maxOff {
		offset = maxOff
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// ItemsPerPage is the number of items a full page spans under a fixed
// height h, including the buffer rows on both sides.
func ItemsPerPage(height, h, buffer int) int {
	if h < 1 {
		h = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	pages := (height + h - 1) / h
	return pages + 2*buffer
}

// Compute maps the viewport onto the item range to materialize.
// buffer extra items are included beyond each edge of the visible
// area to mask rendering latency during fast scrolling. The offset is
// clamped before any index math, so callers may pass a raw value.
func Compute[T any](items []T, vp Viewport, buffer int, r *Resolver[T]) Window {
	n := len(items)
	if n == 0 {
		return Window{Start: 0, End: -1}
	}
	if buffer < 0 {
		buffer = 0
	}
	if vp.Height < 0 {
		vp.Height = 0
	}
	offset := ClampOffset(vp.Offset, r.Total(items), vp.Height)

	if r.spec.IsFixed() {
		return computeFixed(n, offset, vp.Height, buffer, r.spec.FixedHeight())
	}
	return computeVariable(items, offset, vp.Height, buffer, r)
}

func computeFixed(n, offset, height, buffer, h int) Window {
	start := offset/h - buffer
	if start < 0 {
		start = 0
	}
	if start > n-1 {
		start = n - 1
	}
	end := start + ItemsPerPage(height, h, buffer)
	if end > n-1 {
		end = n - 1
	}
	return Window{
		Start:   start,
		End:     end,
		OffsetY: start * h,
		Height:  (end - start + 1) * h,
	}
}

// computeVariable walks cumulative heights from the top. O(n) worst
// case per recomputation, which only happens on discrete scroll or
// resize events; fine up to tens of thousands of rows. A prefix-sum
// index would make this O(log n) if much larger lists ever matter.
func computeVariable[T any](items []T, offset, height, buffer int, r *Resolver[T]) Window {
	n := len(items)

	// find the row containing the offset
	first := n - 1
	y := 0
	for i := 0; i < n; i++ {
		h := r.Height(items[i], i)
		if y+h > offset {
			first = i
			break
		}
		y += h
	}

	start := first - buffer
	if start < 0 {
		start = 0
	}
	offsetY := r.PrefixHeight(items, start)

	// cover the visible area from start, then extend by buffer rows
	covered := 0
	end := start
	for i := start; i < n; i++ {
		covered += r.Height(items[i], i)
		end = i
		if offsetY+covered >= offset+height {
			break
		}
	}
	end += buffer
	if end > n-1 {
		end = n - 1
	}

	visible := 0
	for i := start; i <= end; i++ {
		visible += r.Height(items[i], i)
	}
	return Window{Start: start, End: end, OffsetY: offsetY, Height: visible}
}
