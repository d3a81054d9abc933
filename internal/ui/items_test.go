package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSyntheticSourcePaging(t *testing.T) {
	src := SyntheticSource(25)

	page, eof, err := src.NextPage(10)
	if err != nil || eof || len(page) != 10 {
		t.Fatalf("first page: len=%d eof=%v err=%v", len(page), eof, err)
	}
	if page[0].Num != 1 || page[9].Num != 10 {
		t.Fatalf("first page numbering: %v..%v", page[0].Num, page[9].Num)
	}

	page, eof, _ = src.NextPage(10)
	if eof || len(page) != 10 || page[0].Num != 11 {
		t.Fatalf("second page: len=%d eof=%v first=%d", len(page), eof, page[0].Num)
	}

	page, eof, _ = src.NextPage(10)
	if !eof || len(page) != 5 {
		t.Fatalf("final page: len=%d eof=%v", len(page), eof)
	}

	page, eof, _ = src.NextPage(10)
	if !eof || len(page) != 0 {
		t.Fatalf("drained source returned %d lines", len(page))
	}
}

func TestOpenLineSourceReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	content := "alpha\nbeta\ngamma\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	src, err := OpenLineSource(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	page, _, err := src.NextPage(2)
	if err != nil || len(page) != 2 {
		t.Fatalf("page: len=%d err=%v", len(page), err)
	}
	if page[0] != (Line{Num: 1, Text: "alpha"}) || page[1] != (Line{Num: 2, Text: "beta"}) {
		t.Fatalf("unexpected lines: %+v", page)
	}

	page, eof, _ := src.NextPage(5)
	if len(page) != 1 || page[0].Text != "gamma" || !eof {
		t.Fatalf("tail page: %+v eof=%v", page, eof)
	}
}

func TestOpenLineSourceMissingFile(t *testing.T) {
	if _, err := OpenLineSource(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWrappedHeightMatchesWidth(t *testing.T) {
	width := new(int)
	*width = 10
	fn := wrappedHeight(width)

	if got := fn(Line{Text: "short"}, 0); got != 1 {
		t.Fatalf("short line height = %d, want 1", got)
	}
	long := Line{Text: strings.Repeat("word ", 10)} // ~50 cells at width 10
	h := fn(long, 1)
	if h < 4 {
		t.Fatalf("long line height = %d, want wrapped rows", h)
	}

	// narrower width means more rows for the same text
	*width = 5
	if got := fn(long, 1); got <= h {
		t.Fatalf("narrower width did not increase height: %d <= %d", got, h)
	}

	*width = 0
	if got := fn(long, 1); got != 1 {
		t.Fatalf("degenerate width height = %d, want 1", got)
	}
	if got := fn(Line{Text: ""}, 2); got != 1 {
		t.Fatalf("empty line height = %d, want 1", got)
	}
}

func TestGutterWidth(t *testing.T) {
	if got := gutterWidth(nil); got != 4 {
		t.Fatalf("empty gutter = %d, want 4", got)
	}
	lines := []Line{{Num: 1}, {Num: 123456}}
	if got := gutterWidth(lines); got != 6 {
		t.Fatalf("gutter = %d, want 6", got)
	}
}
