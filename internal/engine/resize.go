package engine

// ResizeSource delivers container box-size changes. Subscribe returns
// a cancel function; the engine calls it exactly once, on Close, so
// repeated mount/unmount cycles cannot leak listeners.
type ResizeSource interface {
	Subscribe(fn func(width, height int)) (cancel func())
}

// ResizeFeed is a push-based ResizeSource for hosts that receive size
// changes as events (a bubbletea WindowSizeMsg, a window-level resize
// listener) rather than owning an observer themselves.
type ResizeFeed struct {
	subs   map[int]func(width, height int)
	nextID int
}

// NewResizeFeed returns an empty feed.
func NewResizeFeed() *ResizeFeed {
	return &ResizeFeed{subs: make(map[int]func(width, height int))}
}

// Subscribe registers fn and returns its cancel function.
func (f *ResizeFeed) Subscribe(fn func(width, height int)) (cancel func()) {
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	return func() { delete(f.subs, id) }
}

// Emit pushes a size change to every subscriber.
func (f *ResizeFeed) Emit(width, height int) {
	for _, fn := range f.subs {
		fn(width, height)
	}
}

// Len returns the number of live subscriptions.
func (f *ResizeFeed) Len() int { return len(f.subs) }
