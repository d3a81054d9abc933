package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"vlist/internal/engine"
	"vlist/internal/infra/logx"
)

const wheelStep = 3

// layout constants: title + divider + search row above the list, help
// + status below it.
const (
	headerHeight = 3
	footerHeight = 2
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.eng.HandleScroll(m.eng.Viewport().Offset - wheelStep)
			case tea.MouseButtonWheelDown:
				m.eng.HandleScroll(m.eng.Viewport().Offset + wheelStep)
			}
		}
		return m.drain(nil)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.listHeight = msg.Height - headerHeight - footerHeight
		if m.listHeight < 3 {
			m.listHeight = 3
		}
		// gutter (line number + space) and the scrollbar column flank
		// the content
		cw := msg.Width - gutterWidth(m.lines) - 2
		if cw < 10 {
			cw = 10
		}
		*m.contentWidth = cw
		if m.cfg.FixedHeight == 0 {
			// wrapped heights depend on the width that just changed
			m.eng.InvalidateHeights()
		}
		m.resize.Emit(msg.Width, m.listHeight)
		return m.drain(nil)

	case pageMsg:
		m.loading = false
		m.eng.SetLoading(false)
		m.eof = msg.eof
		if msg.err != nil {
			logx.Errorf("page load failed: %v", msg.err)
			m.statusMsg = warnStyle.Render(fmt.Sprintf("read error: %v", msg.err))
			return m, nil
		}
		if len(msg.lines) > 0 {
			m.lines = append(m.lines, msg.lines...)
			m.applyFilter()
		}
		suffix := ""
		if m.eof {
			suffix = " (end of input)"
		}
		m.statusMsg = fmt.Sprintf("%d lines loaded%s", len(m.lines), suffix)
		return m.drain(nil)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scrollStepMsg:
		return m.stepAnim()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if m.searching {
		switch key {
		case "esc":
			m.searching = false
			m.query = ""
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.applyFilter()
			return m.drain(nil)
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			if m.eng.Len() > 0 {
				m.eng.ScrollToItem(0, engine.BehaviorSmooth)
			}
			return m.drain(nil)
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			if q := m.searchInput.Value(); q != m.query {
				m.query = q
				m.applyFilter()
			}
			return m.drain(cmd)
		}
	}

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case "/":
		m.searching = true
		return m, m.searchInput.Focus()
	case "up", "k":
		m.eng.HandleKey(engine.KeyUp)
	case "down", "j":
		m.eng.HandleKey(engine.KeyDown)
	case "pgup", "ctrl+u":
		m.eng.HandleKey(engine.KeyPageUp)
	case "pgdown", "ctrl+d":
		m.eng.HandleKey(engine.KeyPageDown)
	case "home", "g":
		m.eng.HandleKey(engine.KeyHome)
	case "end", "G":
		m.eng.HandleKey(engine.KeyEnd)
	case "enter", " ":
		m.eng.HandleKey(engine.KeyActivate)
	}
	return m.drain(nil)
}

// drain turns callbacks collected during this pass into state changes
// and commands.
func (m Model) drain(cmd tea.Cmd) (Model, tea.Cmd) {
	cmds := []tea.Cmd{cmd}

	for _, sc := range m.queue.commands {
		if sc.behavior == engine.BehaviorSmooth && m.listHeight > 0 {
			// last request wins: a fresh command replaces any
			// animation still in flight
			m.anim = &scrollAnim{target: sc.offset, steps: 8}
			cmds = append(cmds, animTickCmd())
		} else {
			m.anim = nil
			m.eng.HandleScroll(sc.offset)
		}
	}
	m.queue.commands = m.queue.commands[:0]

	if m.queue.loadMore && !m.loading && !m.eof && m.query == "" {
		m.loading = true
		m.eng.SetLoading(true)
		m.statusMsg = "loading more…"
		cmds = append(cmds, m.spin.Tick, loadPageCmd(m.src, m.cfg.PageSize))
	}
	if c := m.queue.clicked; c != nil {
		m.statusMsg = fmt.Sprintf("line %d activated", c.Num)
	}
	m.queue.reset()

	return m, tea.Batch(cmds...)
}

// stepAnim advances a smooth scroll one frame. The engine recomputes
// from the live offset each step; only the final frame lands on the
// target.
func (m Model) stepAnim() (Model, tea.Cmd) {
	if m.anim == nil {
		return m, nil
	}
	cur := m.eng.Viewport().Offset
	delta := m.anim.target - cur
	if delta == 0 || m.anim.steps <= 1 {
		m.eng.HandleScroll(m.anim.target)
		m.anim = nil
		return m.drain(nil)
	}
	step := delta / m.anim.steps
	if step == 0 {
		if delta > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	m.eng.HandleScroll(cur + step)
	m.anim.steps--
	return m.drain(animTickCmd())
}
