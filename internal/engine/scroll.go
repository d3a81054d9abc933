package engine

import (
	"time"

	"vlist/internal/core/window"
)

// HandleScroll consumes a raw scroll event at the given offset.
// Negative or garbled offsets are clamped; the is-scrolling flag is
// raised and its debounce timer restarted; the window is recomputed;
// scroll and visible-range-change fire; and the infinite-scroll
// trigger is evaluated.
func (e *Engine[T]) HandleScroll(offset int) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	evs := e.handleScrollLocked(offset)
	e.mu.Unlock()
	fire(evs)
}

func (e *Engine[T]) handleScrollLocked(offset int) []event {
	total := e.res.Total(e.items)
	e.vp.Offset = window.ClampOffset(offset, total, e.vp.Height)

	e.isScrolling = true
	e.restartDebounceLocked()

	var evs []event
	if fn := e.cb.onScroll; fn != nil {
		state := e.scrollStateLocked(total)
		evs = append(evs, func() { fn(state) })
	}
	evs = append(evs, e.recomputeLocked()...)
	evs = append(evs, e.checkLoadMoreLocked(total)...)
	return evs
}

// restartDebounceLocked cancels and reschedules the timer that resets
// the is-scrolling flag. The timer is the engine's only cancellable
// unit.
func (e *Engine[T]) restartDebounceLocked() {
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, e.settle)
}

func (e *Engine[T]) settle() {
	e.mu.Lock()
	if e.closed || !e.isScrolling {
		e.mu.Unlock()
		return
	}
	e.isScrolling = false
	fn := e.cb.onScroll
	var state ScrollState
	if fn != nil {
		state = e.scrollStateLocked(e.res.Total(e.items))
	}
	e.mu.Unlock()
	if fn != nil {
		fn(state)
	}
}

func (e *Engine[T]) scrollStateLocked(total int) ScrollState {
	return ScrollState{
		ScrollTop:    e.vp.Offset,
		ScrollHeight: total,
		ClientHeight: e.vp.Height,
		IsScrolling:  e.isScrolling,
	}
}

// checkLoadMoreLocked fires load-more exactly once per crossing into
// the threshold band at the bottom of the content. The latch re-arms
// only when the position leaves the band (or the item set changes), so
// jitter inside the band cannot refire regardless of the loading flag.
func (e *Engine[T]) checkLoadMoreLocked(total int) []event {
	dist := total - (e.vp.Offset + e.vp.Height)
	if dist > e.threshold {
		e.loadArmed = true
		return nil
	}
	if !e.loadArmed || e.loading {
		return nil
	}
	e.loadArmed = false
	fn := e.cb.onLoadMore
	if fn == nil {
		return nil
	}
	return []event{func() { fn() }}
}
