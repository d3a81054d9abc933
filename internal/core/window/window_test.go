package window

import "testing"

func fixedResolver(h int) *Resolver[int] {
	return NewResolver(Fixed[int](h), 1, nil)
}

func intItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestTotalHeightFixed(t *testing.T) {
	cases := []struct{ n, h int }{
		{0, 50}, {1, 50}, {1000, 50}, {37, 3},
	}
	for _, c := range cases {
		r := fixedResolver(c.h)
		if got := r.Total(intItems(c.n)); got != c.n*c.h {
			t.Fatalf("Total(n=%d h=%d) = %d, want %d", c.n, c.h, got, c.n*c.h)
		}
	}
}

func TestComputeFixedScenarios(t *testing.T) {
	// n=1000, h=50, container=500, buffer=2 -> itemsPerPage=14
	items := intItems(1000)
	r := fixedResolver(50)

	cases := []struct {
		name                         string
		offset                       int
		wantStart, wantEnd, wantOffY int
	}{
		{"top", 0, 0, 14, 0},
		{"mid", 505, 8, 22, 400},
	}
	for _, c := range cases {
		w := Compute(items, Viewport{Offset: c.offset, Height: 500}, 2, r)
		if w.Start != c.wantStart || w.End != c.wantEnd || w.OffsetY != c.wantOffY {
			t.Fatalf("%s: got start=%d end=%d offsetY=%d, want %d/%d/%d",
				c.name, w.Start, w.End, w.OffsetY, c.wantStart, c.wantEnd, c.wantOffY)
		}
	}
}

func TestItemsPerPage(t *testing.T) {
	if got := ItemsPerPage(500, 50, 2); got != 14 {
		t.Fatalf("ItemsPerPage(500,50,2) = %d, want 14", got)
	}
	if got := ItemsPerPage(501, 50, 0); got != 11 {
		t.Fatalf("ItemsPerPage(501,50,0) = %d, want 11", got)
	}
}

func TestComputeEmpty(t *testing.T) {
	w := Compute(nil, Viewport{Offset: 100, Height: 500}, 5, fixedResolver(50))
	if !w.Empty() || w.Start != 0 || w.End != -1 || w.OffsetY != 0 || w.Height != 0 {
		t.Fatalf("empty list window = %+v", w)
	}
	if w.Count() != 0 {
		t.Fatalf("empty window Count = %d", w.Count())
	}
}

func TestComputeClampsOffsetPastEnd(t *testing.T) {
	// 10 items of height 50 = 500 total, container 200; anything past
	// 300 pulls back so the last page stays filled.
	items := intItems(10)
	r := fixedResolver(50)
	w := Compute(items, Viewport{Offset: 9999, Height: 200}, 0, r)
	if w.Start != 6 || w.End != 9 {
		t.Fatalf("clamped window = %+v, want start=6 end=9", w)
	}
	if w.OffsetY != 300 {
		t.Fatalf("clamped offsetY = %d, want 300", w.OffsetY)
	}
}

func TestComputeNegativeOffsetClampsToZero(t *testing.T) {
	w := Compute(intItems(100), Viewport{Offset: -42, Height: 100}, 0, fixedResolver(10))
	if w.Start != 0 || w.OffsetY != 0 {
		t.Fatalf("negative offset window = %+v", w)
	}
}

func TestComputeIdempotent(t *testing.T) {
	items := intItems(500)
	r := NewResolver(Dynamic(func(_ int, i int) int { return i%4 + 1 }), 1, nil)
	vp := Viewport{Offset: 123, Height: 60}
	a := Compute(items, vp, 3, r)
	b := Compute(items, vp, 3, r)
	if a != b {
		t.Fatalf("Compute not idempotent: %+v vs %+v", a, b)
	}
}

func TestOffsetYInvariantWithoutBuffer(t *testing.T) {
	items := intItems(200)
	fixed := fixedResolver(7)
	dyn := NewResolver(Dynamic(func(_ int, i int) int { return i%5 + 1 }), 1, nil)

	for _, r := range []*Resolver[int]{fixed, dyn} {
		max := r.Total(items) - 40
		for offset := 0; offset < max; offset += 13 {
			w := Compute(items, Viewport{Offset: offset, Height: 40}, 0, r)
			h := r.Height(items[w.Start], w.Start)
			if !(w.OffsetY <= offset && offset < w.OffsetY+h) {
				t.Fatalf("offset %d: offsetY=%d h(start)=%d violates invariant", offset, w.OffsetY, h)
			}
		}
	}
}

func TestShrinkingContainerShrinksWindow(t *testing.T) {
	items := intItems(1000)
	r := fixedResolver(50)
	big := Compute(items, Viewport{Offset: 1000, Height: 500}, 2, r)
	small := Compute(items, Viewport{Offset: 1000, Height: 250}, 2, r)
	if small.Count() >= big.Count() {
		t.Fatalf("window did not shrink: %d -> %d items", big.Count(), small.Count())
	}
}

func TestComputeVariableWalk(t *testing.T) {
	// heights cycle 10,20,30; cumulative 10,30,60,70,90,120,...
	items := intItems(12)
	r := NewResolver(Dynamic(func(_ int, i int) int { return (i%3 + 1) * 10 }), 1, nil)

	w := Compute(items, Viewport{Offset: 35, Height: 40}, 1, r)
	if w.Start != 1 || w.End != 5 {
		t.Fatalf("variable window = %+v, want start=1 end=5", w)
	}
	if w.OffsetY != 10 {
		t.Fatalf("variable offsetY = %d, want 10", w.OffsetY)
	}
	if w.Height != 20+30+10+20+30 {
		t.Fatalf("variable visible height = %d, want 110", w.Height)
	}
}

func TestComputeVariableCoversViewport(t *testing.T) {
	items := intItems(100)
	r := NewResolver(Dynamic(func(_ int, i int) int { return i%7 + 1 }), 1, nil)
	for offset := 0; offset < 300; offset += 17 {
		w := Compute(items, Viewport{Offset: offset, Height: 50}, 0, r)
		if w.Empty() {
			t.Fatalf("offset %d: empty window over non-empty list", offset)
		}
		if w.End < 99 && w.OffsetY+w.Height < offset+50 {
			t.Fatalf("offset %d: window %+v does not cover the viewport", offset, w)
		}
	}
}

func TestClampOffset(t *testing.T) {
	cases := []struct {
		offset, total, height, want int
	}{
		{0, 1000, 500, 0},
		{-10, 1000, 500, 0},
		{600, 1000, 500, 500},
		{100, 200, 500, 0}, // content shorter than container
		{42, 1000, 500, 42},
	}
	for _, c := range cases {
		if got := ClampOffset(c.offset, c.total, c.height); got != c.want {
			t.Fatalf("ClampOffset(%d,%d,%d) = %d, want %d", c.offset, c.total, c.height, got, c.want)
		}
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: 3, End: 7}
	if !w.Contains(3) || !w.Contains(7) || w.Contains(2) || w.Contains(8) {
		t.Fatalf("Contains misbehaves on %+v", w)
	}
}
