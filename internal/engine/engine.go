// Package engine implements a virtualized list windowing engine: it
// tracks a viewport over an arbitrarily long item list and keeps the
// small materialized index range, the selection and the scroll state
// consistent across scroll, resize, keyboard and data-change events.
// It performs no I/O of its own; hosts feed it events and listen for
// the ones it emits.
package engine

import (
	"sync"
	"time"

	"vlist/internal/core/window"
)

const (
	DefaultBuffer    = 5
	DefaultThreshold = 100
	DefaultDebounce  = 150 * time.Millisecond
	DefaultHeight    = 1
)

// Engine owns the windowing state for one list. All public methods are
// safe for concurrent use, but the intended model is cooperative: one
// event loop feeding events in arrival order. No public operation
// blocks or propagates a panic past the engine boundary.
type Engine[T any] struct {
	mu sync.Mutex

	items    []T
	res      *window.Resolver[T]
	vp       window.Viewport
	win      window.Window
	selected int

	buffer    int
	threshold int
	debounce  time.Duration
	keyboard  bool
	label     string

	loading     bool
	isScrolling bool
	timer       *time.Timer
	loadArmed   bool

	unsubscribe func()
	closed      bool

	cb callbacks[T]
}

type options[T any] struct {
	spec      window.HeightSpec[T]
	def       int
	key       window.Keyer[T]
	buffer    int
	threshold int
	debounce  time.Duration
	keyboard  bool
	label     string
	resize    ResizeSource
	cb        callbacks[T]
}

// Option configures an Engine at construction time. Invalid values are
// clamped to safe defaults rather than rejected; a rendering component
// must not crash its host over configuration.
type Option[T any] func(*options[T])

// WithFixedHeight gives every item the constant height h.
func WithFixedHeight[T any](h int) Option[T] {
	return func(o *options[T]) { o.spec = window.Fixed[T](h) }
}

// WithHeightFunc resolves heights per item. Results are cached by item
// key until the item collection is replaced.
func WithHeightFunc[T any](fn func(item T, index int) int) Option[T] {
	return func(o *options[T]) { o.spec = window.Dynamic(fn) }
}

// WithDefaultHeight sets the height substituted when a height function
// fails.
func WithDefaultHeight[T any](h int) Option[T] {
	return func(o *options[T]) { o.def = h }
}

// WithBuffer sets how many extra items are materialized beyond each
// edge of the visible area. Negative values clamp to 0.
func WithBuffer[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			n = 0
		}
		o.buffer = n
	}
}

// WithThreshold sets the distance from the bottom, in rows, at which
// load-more fires. Negative values clamp to 0.
func WithThreshold[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			n = 0
		}
		o.threshold = n
	}
}

// WithDebounce sets how long after the last scroll event the
// is-scrolling flag resets.
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(o *options[T]) {
		if d <= 0 {
			d = DefaultDebounce
		}
		o.debounce = d
	}
}

// WithKeyFunc keys height-cache entries through fn.
func WithKeyFunc[T any](fn func(item T) string) Option[T] {
	return func(o *options[T]) { o.key = window.KeyBy(fn) }
}

// WithKeyField keys height-cache entries by the named struct field.
func WithKeyField[T any](name string) Option[T] {
	return func(o *options[T]) { o.key = window.KeyField[T](name) }
}

// WithLabel sets the accessibility label hosts should attach to the
// list surface.
func WithLabel[T any](s string) Option[T] {
	return func(o *options[T]) { o.label = s }
}

// WithKeyboardDisabled makes HandleKey inert; key events pass through
// unhandled.
func WithKeyboardDisabled[T any]() Option[T] {
	return func(o *options[T]) { o.keyboard = false }
}

// WithResizeSource subscribes the engine to container size changes.
// The subscription is released by Close.
func WithResizeSource[T any](src ResizeSource) Option[T] {
	return func(o *options[T]) { o.resize = src }
}

// OnScroll registers the scroll listener.
func OnScroll[T any](fn func(ScrollState)) Option[T] {
	return func(o *options[T]) { o.cb.onScroll = fn }
}

// OnItemClick registers the item-click listener (Enter/Space or host
// click on the selection).
func OnItemClick[T any](fn func(item T, index int)) Option[T] {
	return func(o *options[T]) { o.cb.onItemClick = fn }
}

// OnLoadMore registers the infinite-scroll listener.
func OnLoadMore[T any](fn func()) Option[T] {
	return func(o *options[T]) { o.cb.onLoadMore = fn }
}

// OnSelectionChange registers the selection listener.
func OnSelectionChange[T any](fn func(item T, index int)) Option[T] {
	return func(o *options[T]) { o.cb.onSelectionChange = fn }
}

// OnRangeChange registers the visible-range listener.
func OnRangeChange[T any](fn func(start, end int, visible []T)) Option[T] {
	return func(o *options[T]) { o.cb.onRangeChange = fn }
}

// OnScrollCommand registers the listener for scroll commands issued by
// ScrollToItem. Without one the engine applies the target offset to
// itself, so a headless engine still works standalone.
func OnScrollCommand[T any](fn func(offset int, behavior Behavior)) Option[T] {
	return func(o *options[T]) { o.cb.onScrollCommand = fn }
}

// New builds an engine over an initial item snapshot.
func New[T any](items []T, opts ...Option[T]) *Engine[T] {
	o := options[T]{
		spec:      window.Fixed[T](DefaultHeight),
		def:       DefaultHeight,
		buffer:    DefaultBuffer,
		threshold: DefaultThreshold,
		debounce:  DefaultDebounce,
		keyboard:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine[T]{
		items:     append([]T(nil), items...),
		res:       window.NewResolver(o.spec, o.def, o.key),
		selected:  -1,
		buffer:    o.buffer,
		threshold: o.threshold,
		debounce:  o.debounce,
		keyboard:  o.keyboard,
		label:     o.label,
		loadArmed: true,
		cb:        o.cb,
	}
	e.win = window.Compute(e.items, e.vp, e.buffer, e.res)

	if o.resize != nil {
		e.unsubscribe = o.resize.Subscribe(func(_, height int) {
			e.HandleResize(height)
		})
	}
	return e
}

// SetItems replaces the item snapshot. The height cache is invalidated
// wholesale, the scroll offset is re-clamped against the new total
// height, a dangling selection is pulled back into range and the
// load-more latch re-arms.
func (e *Engine[T]) SetItems(items []T) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.items = append([]T(nil), items...)
	e.res.Invalidate()
	e.loadArmed = true
	if n := len(e.items); e.selected >= n {
		e.selected = n - 1
	}
	e.vp.Offset = window.ClampOffset(e.vp.Offset, e.res.Total(e.items), e.vp.Height)
	evs := e.recomputeLocked()
	e.mu.Unlock()
	fire(evs)
}

// SetLoading records the host's loading flag, which suppresses
// duplicate load-more triggers.
func (e *Engine[T]) SetLoading(loading bool) {
	e.mu.Lock()
	e.loading = loading
	e.mu.Unlock()
}

// Select moves the selection to index and scrolls it into view. An
// out-of-range index is a silent no-op, as is reselecting the current
// index.
func (e *Engine[T]) Select(index int) {
	e.mu.Lock()
	evs := e.selectLocked(index)
	e.mu.Unlock()
	fire(evs)
}

func (e *Engine[T]) selectLocked(index int) []event {
	if e.closed || index < 0 || index >= len(e.items) || index == e.selected {
		return nil
	}
	e.selected = index
	item := e.items[index]
	evs := []event{}
	if fn := e.cb.onSelectionChange; fn != nil {
		evs = append(evs, func() { fn(item, index) })
	}
	evs = append(evs, e.scrollToLocked(index, BehaviorInstant)...)
	return evs
}

// Selection returns the selected index, -1 when nothing is selected.
// The selection is independent of the window and may point outside the
// materialized range.
func (e *Engine[T]) Selection() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// ScrollToItem computes the offset placing index at the top of the
// viewport and issues a scroll command with the requested behavior.
// Out-of-range indices are silent no-ops.
func (e *Engine[T]) ScrollToItem(index int, behavior Behavior) {
	e.mu.Lock()
	evs := e.scrollToLocked(index, behavior)
	e.mu.Unlock()
	fire(evs)
}

func (e *Engine[T]) scrollToLocked(index int, behavior Behavior) []event {
	if e.closed || index < 0 || index >= len(e.items) {
		return nil
	}
	target := e.res.PrefixHeight(e.items, index)
	target = window.ClampOffset(target, e.res.Total(e.items), e.vp.Height)
	if fn := e.cb.onScrollCommand; fn != nil {
		return []event{func() { fn(target, behavior) }}
	}
	// no host scroll mechanism registered: apply directly
	return e.handleScrollLocked(target)
}

// HandleResize updates the container size and recomputes the window.
func (e *Engine[T]) HandleResize(height int) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if height < 0 {
		height = 0
	}
	e.vp.Height = height
	e.vp.Offset = window.ClampOffset(e.vp.Offset, e.res.Total(e.items), height)
	evs := e.recomputeLocked()
	e.mu.Unlock()
	fire(evs)
}

// InvalidateHeights drops every cached height and recomputes. Hosts
// whose dynamic heights depend on layout width call this after a
// width change; plain item-set swaps go through SetItems instead.
func (e *Engine[T]) InvalidateHeights() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.res.Invalidate()
	e.vp.Offset = window.ClampOffset(e.vp.Offset, e.res.Total(e.items), e.vp.Height)
	evs := e.recomputeLocked()
	e.mu.Unlock()
	fire(evs)
}

// recomputeLocked rebuilds the derived window and returns the
// range-change event. Callers hold e.mu.
func (e *Engine[T]) recomputeLocked() []event {
	e.win = window.Compute(e.items, e.vp, e.buffer, e.res)
	fn := e.cb.onRangeChange
	if fn == nil {
		return nil
	}
	start, end := e.win.Start, e.win.End
	visible := e.visibleLocked()
	return []event{func() { fn(start, end, visible) }}
}

func (e *Engine[T]) visibleLocked() []T {
	if e.win.Empty() {
		return nil
	}
	return append([]T(nil), e.items[e.win.Start:e.win.End+1]...)
}

// Window returns the current materialized range.
func (e *Engine[T]) Window() window.Window {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.win
}

// ComputeWindow recomputes the window from current state and returns
// it. Pure with respect to inputs: unchanged items, viewport and cache
// yield an identical window.
func (e *Engine[T]) ComputeWindow() window.Window {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.win = window.Compute(e.items, e.vp, e.buffer, e.res)
	return e.win
}

// VisibleItems returns a copy of the materialized item slice.
func (e *Engine[T]) VisibleItems() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visibleLocked()
}

// Viewport returns the current scroll offset and container height.
func (e *Engine[T]) Viewport() window.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp
}

// TotalHeight returns the summed height of all items.
func (e *Engine[T]) TotalHeight() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.res.Total(e.items)
}

// Len returns the current item count.
func (e *Engine[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// IsScrolling reports whether a scroll event arrived within the
// debounce interval.
func (e *Engine[T]) IsScrolling() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isScrolling
}

// Label returns the configured accessibility label.
func (e *Engine[T]) Label() string { return e.label }

// Close releases the engine's resources: the debounce timer and the
// resize subscription. Idempotent; a closed engine ignores further
// events.
func (e *Engine[T]) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	unsub := e.unsubscribe
	e.unsubscribe = nil
	e.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}
