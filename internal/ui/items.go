package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/lipgloss"
)

// LineSource feeds the pager one page of lines at a time, so a huge
// file never has to sit in memory before the first paint.
type LineSource struct {
	f    *os.File
	sc   *bufio.Scanner
	next int
	eof  bool

	// synthetic mode when no file is given
	synthetic int
}

// OpenLineSource opens path for paged reading.
func OpenLineSource(path string) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &LineSource{f: f, sc: sc, next: 1}, nil
}

// SyntheticSource yields n generated lines; the demo fallback when no
// file argument is given.
func SyntheticSource(n int) *LineSource {
	return &LineSource{next: 1, synthetic: n}
}

// NextPage reads up to n further lines.
func (s *LineSource) NextPage(n int) ([]Line, bool, error) {
	if s.eof {
		return nil, true, nil
	}
	lines := make([]Line, 0, n)

	if s.sc == nil {
		for len(lines) < n && s.next <= s.synthetic {
			lines = append(lines, Line{Num: s.next, Text: syntheticLine(s.next)})
			s.next++
		}
		s.eof = s.next > s.synthetic
		return lines, s.eof, nil
	}

	for len(lines) < n {
		if !s.sc.Scan() {
			s.eof = true
			if err := s.sc.Err(); err != nil {
				return lines, true, err
			}
			break
		}
		lines = append(lines, Line{Num: s.next, Text: s.sc.Text()})
		s.next++
	}
	return lines, s.eof, nil
}

// Close releases the underlying file.
func (s *LineSource) Close() error {
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}

func syntheticLine(n int) string {
	words := []string{
		"chunk stored", "ledger updated", "peer connected", "quota checked",
		"replica verified", "manifest flushed", "cache warmed", "shard rebalanced",
	}
	return fmt.Sprintf("%s at tier %d", words[n%len(words)], n%5)
}

// loadPageCmd fetches the next page off the update loop.
func loadPageCmd(src *LineSource, n int) tea.Cmd {
	return func() tea.Msg {
		lines, eof, err := src.NextPage(n)
		return pageMsg{lines: lines, eof: eof, err: err}
	}
}

// animTickCmd paces smooth-scroll frames.
func animTickCmd() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg { return scrollStepMsg{} })
}

// lineKey identifies a line for height caching. Line numbers are
// stable across filtering, so cached measurements survive query edits
// within one collection snapshot.
func lineKey(l Line) string { return strconv.Itoa(l.Num) }

// wrappedHeight measures how many terminal rows a line occupies at the
// current content width. The width cell is shared with the Model; a
// resize updates it and invalidates the engine's height cache.
func wrappedHeight(width *int) func(Line, int) int {
	return func(l Line, _ int) int {
		w := *width
		if w <= 0 {
			return 1
		}
		if l.Text == "" {
			return 1
		}
		return lipgloss.Height(lineStyle.Width(w).Render(l.Text))
	}
}
