package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vlist/internal/config"
	"vlist/internal/engine"
)

// Line is one pager row: a line of the source file plus its number.
type Line struct {
	Num  int
	Text string
}

// pageMsg delivers the next chunk of lines from the source.
type pageMsg struct {
	lines []Line
	eof   bool
	err   error
}

// scrollStepMsg advances a smooth-scroll animation by one frame.
type scrollStepMsg struct{}

// scrollCommand is a pending scroll issued by the engine's
// scroll-to-item controller; the host owns carrying it out.
type scrollCommand struct {
	offset   int
	behavior engine.Behavior
}

// engineEvents collects callbacks the engine fired during the current
// Update pass. The Model drains it after every engine interaction and
// turns entries into bubbletea commands. Shared by pointer so it
// survives Model value copies.
type engineEvents struct {
	loadMore bool
	clicked  *Line
	commands []scrollCommand
}

func (q *engineEvents) reset() {
	q.loadMore = false
	q.clicked = nil
	q.commands = q.commands[:0]
}

// scrollAnim is an in-flight smooth scroll. Each frame feeds the live
// offset back through the engine's scroll path, so windows computed
// mid-flight are correct by construction.
type scrollAnim struct {
	target int
	steps  int
}

// Model is the bubbletea host around the windowing engine.
type Model struct {
	cfg config.Settings
	eng *engine.Engine[Line]

	// all loaded lines; the engine sees the filtered subset
	lines []Line
	src   *LineSource
	eof   bool

	queue        *engineEvents
	resize       *engine.ResizeFeed
	contentWidth *int // shared with the engine's height function

	width      int
	height     int
	listHeight int

	searching   bool
	searchInput textinput.Model
	query       string

	spin    spinner.Model
	loading bool

	anim      *scrollAnim
	statusMsg string
	quitting  bool

	filterCfg FilterConfig
}

// NewModel wires a pager over src using the given settings.
func NewModel(cfg config.Settings, src *LineSource) Model {
	queue := &engineEvents{}
	resize := engine.NewResizeFeed()
	contentWidth := new(int)
	*contentWidth = 80

	opts := []engine.Option[Line]{
		engine.WithBuffer[Line](cfg.Buffer),
		engine.WithThreshold[Line](cfg.Threshold),
		engine.WithDebounce[Line](debounceDuration(cfg)),
		engine.WithLabel[Line](cfg.Label),
		engine.WithKeyFunc[Line](lineKey),
		engine.WithResizeSource[Line](resize),
		engine.OnLoadMore[Line](func() { queue.loadMore = true }),
		engine.OnItemClick[Line](func(item Line, _ int) { queue.clicked = &item }),
		engine.OnScrollCommand[Line](func(offset int, b engine.Behavior) {
			queue.commands = append(queue.commands, scrollCommand{offset: offset, behavior: b})
		}),
	}
	if cfg.FixedHeight > 0 {
		opts = append(opts, engine.WithFixedHeight[Line](cfg.FixedHeight))
	} else {
		opts = append(opts, engine.WithHeightFunc[Line](wrappedHeight(contentWidth)))
	}

	si := textinput.New()
	si.Placeholder = "fuzzy search…"
	si.CharLimit = 200
	si.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = subtleStyle

	return Model{
		cfg:          cfg,
		eng:          engine.New(nil, opts...),
		src:          src,
		queue:        queue,
		resize:       resize,
		contentWidth: contentWidth,
		searchInput:  si,
		spin:         sp,
		loading:      true,
		statusMsg:    "loading…",
		filterCfg: FilterConfig{
			MinCoverage: 0.6,
			MaxSpread:   40,
			MaxResults:  10000,
		},
	}
}

// debounceDuration converts the configured debounce milliseconds; zero
// falls back to the engine default.
func debounceDuration(cfg config.Settings) time.Duration {
	return time.Duration(cfg.DebounceMs) * time.Millisecond
}

// Init starts the spinner and the first page load.
func (m Model) Init() tea.Cmd {
	m.eng.SetLoading(true)
	return tea.Batch(m.spin.Tick, loadPageCmd(m.src, m.cfg.PageSize))
}

// Engine exposes the underlying engine, mainly for tests.
func (m Model) Engine() *engine.Engine[Line] { return m.eng }

// Close tears the engine down (debounce timer, resize subscription).
func (m Model) Close() { m.eng.Close() }
