package engine

// Behavior selects how a scroll command should be carried out by the
// host's scroll mechanism.
type Behavior int

const (
	BehaviorInstant Behavior = iota
	BehaviorSmooth
)

// ScrollState is the payload of the scroll event, mirroring what a
// scroll container would report about itself.
type ScrollState struct {
	ScrollTop    int  // current offset
	ScrollHeight int  // total content height
	ClientHeight int  // container height
	IsScrolling  bool // true between a scroll event and the debounce settling
}

// Key identifies a navigation key handled by the keyboard navigator.
// Hosts map their own key events onto these.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	// KeyActivate covers Enter and Space: emit item-click for the
	// current selection without moving it.
	KeyActivate
)

// callbacks holds the host's registered listeners. All of them are
// optional; a nil callback is simply skipped.
type callbacks[T any] struct {
	onScroll          func(ScrollState)
	onItemClick       func(item T, index int)
	onLoadMore        func()
	onSelectionChange func(item T, index int)
	onRangeChange     func(start, end int, visible []T)
	onScrollCommand   func(offset int, behavior Behavior)
}

// event is a deferred callback invocation. Mutating operations collect
// events under the engine lock and fire them after it is released, so
// listeners only ever observe fully recomputed state and may re-enter
// the engine.
type event func()

func fire(events []event) {
	for _, ev := range events {
		ev()
	}
}
