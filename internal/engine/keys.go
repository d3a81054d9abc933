package engine

import "vlist/internal/core/window"

// HandleKey drives the keyboard navigator. It reports whether the key
// was consumed; when keyboard navigation is disabled every key passes
// through unhandled. Arrow keys move the selection by one, page keys
// by one window worth of items, Home/End jump to the edges, and
// KeyActivate emits item-click for the current selection without
// moving it. Movement clamps to [0, n-1] with no wraparound, and every
// selection change scrolls the selected item into view.
func (e *Engine[T]) HandleKey(k Key) bool {
	e.mu.Lock()
	if e.closed || !e.keyboard {
		e.mu.Unlock()
		return false
	}
	n := len(e.items)
	if n == 0 {
		e.mu.Unlock()
		return true
	}

	var evs []event
	switch k {
	case KeyUp:
		evs = e.selectLocked(clampIndex(e.selected-1, n))
	case KeyDown:
		evs = e.selectLocked(clampIndex(e.selected+1, n))
	case KeyPageUp:
		evs = e.selectLocked(clampIndex(e.selected-e.itemsPerPageLocked(), n))
	case KeyPageDown:
		evs = e.selectLocked(clampIndex(e.selected+e.itemsPerPageLocked(), n))
	case KeyHome:
		evs = e.selectLocked(0)
	case KeyEnd:
		evs = e.selectLocked(n - 1)
	case KeyActivate:
		if e.selected >= 0 && e.selected < n {
			if fn := e.cb.onItemClick; fn != nil {
				item := e.items[e.selected]
				index := e.selected
				evs = []event{func() { fn(item, index) }}
			}
		}
	default:
		e.mu.Unlock()
		return false
	}
	e.mu.Unlock()
	fire(evs)
	return true
}

// itemsPerPageLocked is the page jump size: the fixed-height formula
// when heights are constant, otherwise the current window's item
// count.
func (e *Engine[T]) itemsPerPageLocked() int {
	if spec := e.res.Spec(); spec.IsFixed() {
		return window.ItemsPerPage(e.vp.Height, spec.FixedHeight(), e.buffer)
	}
	if c := e.win.Count(); c > 0 {
		return c
	}
	return 1
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
