package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(titleStyle.Render("vlist"))
	if label := m.eng.Label(); label != "" {
		b.WriteString("  " + labelStyle.Render(label))
	}
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.searchInput.View())
	} else if m.query != "" {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("filter: %q (%d matches) – esc via / to clear", m.query, m.eng.Len())))
	} else {
		b.WriteString(subtleStyle.Render("press / to search"))
	}
	b.WriteString("\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("↑/↓ move · pgup/pgdn page · g/G ends · enter activate · / search · q quit"))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// renderList materializes only the windowed items, clips the block to
// the viewport and attaches the scrollbar column. Nothing outside the
// window is ever rendered.
func (m Model) renderList() string {
	lh := m.listHeight
	if lh <= 0 {
		lh = 3
	}
	w := m.eng.Window()
	items := m.eng.VisibleItems()
	vp := m.eng.Viewport()
	sel := m.eng.Selection()
	gw := gutterWidth(m.lines)

	rows := make([]string, 0, lh)
	for i, ln := range items {
		rows = append(rows, m.renderLine(ln, w.Start+i == sel, gw)...)
	}

	// clip the rendered block to the live offset within the window
	skip := vp.Offset - w.OffsetY
	if skip < 0 {
		skip = 0
	}
	if skip > len(rows) {
		skip = len(rows)
	}
	rows = rows[skip:]
	if len(rows) > lh {
		rows = rows[:lh]
	}
	for len(rows) < lh {
		rows = append(rows, "")
	}

	bar := m.scrollbar(lh)
	var b strings.Builder
	for i, row := range rows {
		b.WriteString(bar[i])
		b.WriteString(" ")
		b.WriteString(row)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLine renders one item as its gutter-prefixed terminal rows.
// The row count matches what the engine's height function reports for
// the same width, so geometry and rendering stay in agreement.
func (m Model) renderLine(ln Line, selected bool, gw int) []string {
	content := lineStyle.Width(*m.contentWidth).Render(ln.Text)
	parts := strings.Split(content, "\n")
	if h := m.cfg.FixedHeight; h > 0 {
		for len(parts) < h {
			parts = append(parts, "")
		}
		parts = parts[:h]
	}
	rows := make([]string, len(parts))
	for i, p := range parts {
		if selected {
			p = selectedStyle.Render(p)
		}
		if i == 0 {
			rows[i] = gutterStyle.Render(fmt.Sprintf("%*d ", gw, ln.Num)) + p
		} else {
			rows[i] = strings.Repeat(" ", gw+1) + p
		}
	}
	return rows
}

// scrollbar derives the thumb geometry from total content height,
// offset and viewport size.
func (m Model) scrollbar(lh int) []string {
	total := m.eng.TotalHeight()
	bar := make([]string, lh)
	if total <= lh {
		for i := range bar {
			bar[i] = scrollbarBg.Render("│")
		}
		return bar
	}
	offset := m.eng.Viewport().Offset
	thumbLen := max(1, lh*lh/total)
	thumbStart := offset * lh / total
	if thumbStart+thumbLen > lh {
		thumbStart = lh - thumbLen
	}
	for i := range bar {
		if i >= thumbStart && i < thumbStart+thumbLen {
			bar[i] = scrollbarFg.Render("█")
		} else {
			bar[i] = scrollbarBg.Render("│")
		}
	}
	return bar
}

func (m Model) renderStatus() string {
	parts := make([]string, 0, 4)
	if m.loading {
		parts = append(parts, m.spin.View()+" loading")
	}
	if m.eng.IsScrolling() {
		parts = append(parts, "scrolling")
	}
	if sel := m.eng.Selection(); sel >= 0 {
		parts = append(parts, fmt.Sprintf("selected %d/%d", sel+1, m.eng.Len()))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	return subtleStyle.Render(strings.Join(parts, " · "))
}

// gutterWidth is the digit width of the highest loaded line number.
func gutterWidth(lines []Line) int {
	if len(lines) == 0 {
		return 4
	}
	w := len(fmt.Sprint(lines[len(lines)-1].Num))
	if w < 4 {
		w = 4
	}
	return w
}
