package window

import (
	"fmt"
	"reflect"
	"strconv"

	"vlist/internal/infra/logx"
)

// HeightSpec is the tagged fixed-vs-function height choice.
// Exactly one variant is active; the zero value behaves like Fixed(1).
type HeightSpec[T any] struct {
	fixed int
	fn    func(item T, index int) int
}

// Fixed gives every item the same height. Non-positive values are
// clamped to 1 so geometry stays well-formed.
func Fixed[T any](h int) HeightSpec[T] {
	if h < 1 {
		h = 1
	}
	return HeightSpec[T]{fixed: h}
}

// Dynamic resolves heights per item through fn. A nil fn degrades to
// Fixed(1).
func Dynamic[T any](fn func(item T, index int) int) HeightSpec[T] {
	if fn == nil {
		return Fixed[T](1)
	}
	return HeightSpec[T]{fn: fn}
}

// IsFixed reports whether the spec uses a constant height.
func (s HeightSpec[T]) IsFixed() bool { return s.fn == nil }

// FixedHeight returns the constant height; only meaningful when IsFixed.
func (s HeightSpec[T]) FixedHeight() int {
	if s.fixed < 1 {
		return 1
	}
	return s.fixed
}

// Keyer derives the cache identity of an item. Strategies that cannot
// produce a key fall back to the positional index.
type Keyer[T any] func(item T, index int) string

// KeyByIndex keys items by their position.
func KeyByIndex[T any]() Keyer[T] {
	return func(_ T, index int) string { return strconv.Itoa(index) }
}

// KeyBy keys items through fn.
func KeyBy[T any](fn func(item T) string) Keyer[T] {
	if fn == nil {
		return KeyByIndex[T]()
	}
	return func(item T, _ int) string { return fn(item) }
}

// KeyField keys struct items by the named field, falling back to the
// positional index when the field is absent or unreadable.
func KeyField[T any](name string) Keyer[T] {
	return func(item T, index int) string {
		v := reflect.ValueOf(item)
		if v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		if v.Kind() == reflect.Struct {
			f := v.FieldByName(name)
			if f.IsValid() && f.CanInterface() {
				return fmt.Sprint(f.Interface())
			}
		}
		return strconv.Itoa(index)
	}
}

// Resolver resolves and caches item heights. It owns the cache; all
// other components only read derived values.
type Resolver[T any] struct {
	spec  HeightSpec[T]
	def   int
	key   Keyer[T]
	cache map[string]int
}

// NewResolver builds a resolver. def is substituted when a dynamic
// height function panics or returns a negative value; non-positive def
// is clamped to 1.
func NewResolver[T any](spec HeightSpec[T], def int, key Keyer[T]) *Resolver[T] {
	if def < 1 {
		def = 1
	}
	if key == nil {
		key = KeyByIndex[T]()
	}
	return &Resolver[T]{
		spec:  spec,
		def:   def,
		key:   key,
		cache: make(map[string]int),
	}
}

// Spec returns the height spec the resolver was built with.
func (r *Resolver[T]) Spec() HeightSpec[T] { return r.spec }

// Height resolves the height of item at index. Fixed specs return the
// constant directly; dynamic specs consult the cache and measure on a
// miss. A panicking or misbehaving height function never escapes: the
// failure is logged and def takes its place, cached like any other
// measurement.
func (r *Resolver[T]) Height(item T, index int) int {
	if r.spec.IsFixed() {
		return r.spec.FixedHeight()
	}
	k := r.key(item, index)
	if h, ok := r.cache[k]; ok {
		return h
	}
	h := r.measure(item, index, k)
	r.cache[k] = h
	return h
}

func (r *Resolver[T]) measure(item T, index int, key string) (h int) {
	defer func() {
		if rec := recover(); rec != nil {
			logx.WarnKV("height function panicked, using default", map[string]any{
				"key":     key,
				"index":   index,
				"panic":   fmt.Sprint(rec),
				"default": r.def,
			})
			h = r.def
		}
	}()
	h = r.spec.fn(item, index)
	if h < 0 {
		logx.WarnKV("height function returned negative value, using default", map[string]any{
			"key":     key,
			"index":   index,
			"height":  h,
			"default": r.def,
		})
		h = r.def
	}
	return h
}

// Invalidate clears the whole cache. Called on every item-collection
// replacement; stale geometry after a bulk swap is worse than
// re-measuring.
func (r *Resolver[T]) Invalidate() {
	clear(r.cache)
}

// CacheLen returns the number of cached entries.
func (r *Resolver[T]) CacheLen() int { return len(r.cache) }

// Total returns the summed height of all items. O(1) for fixed specs.
func (r *Resolver[T]) Total(items []T) int {
	if r.spec.IsFixed() {
		return len(items) * r.spec.FixedHeight()
	}
	sum := 0
	for i, it := range items {
		sum += r.Height(it, i)
	}
	return sum
}

// PrefixHeight returns the summed height of all items before index.
// index is clamped into [0, len(items)].
func (r *Resolver[T]) PrefixHeight(items []T, index int) int {
	if index > len(items) {
		index = len(items)
	}
	if r.spec.IsFixed() {
		if index < 0 {
			return 0
		}
		return index * r.spec.FixedHeight()
	}
	sum := 0
	for i := 0; i < index; i++ {
		sum += r.Height(items[i], i)
	}
	return sum
}
