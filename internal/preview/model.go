package preview

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	livedsl "github.com/grindlemire/go-livedsl"
	"github.com/grindlemire/go-livedsl/internal/debug"
	"github.com/grindlemire/go-livedsl/internal/markup"
)

// DefaultCellWidth is the assumed width of one terminal cell in pixels.
const DefaultCellWidth = 8

// pollInterval is how often the source file is checked for changes.
const pollInterval = 500 * time.Millisecond

// Options configures a preview.
type Options struct {
	CellWidth int                 // pixels per terminal column; DefaultCellWidth when zero
	Policy    livedsl.StatePolicy // what edits do to state
}

// fileStamp identifies one version of the source file.
type fileStamp struct {
	modTime time.Time
	size    int64
}

type tickMsg time.Time

// sourceMsg carries a freshly read version of the file.
type sourceMsg struct {
	source string
	stamp  fileStamp
}

type readErrMsg struct{ err error }

// viewport is shared between model copies and the driver's ViewportFunc.
type viewport struct {
	pixels int
}

// Model is the bubbletea model of the preview.
type Model struct {
	path      string
	cellWidth int
	view      *viewport
	driver    *livedsl.Driver
	sink      *sink

	cols, rows int
	focus      int // index into the rendered buttons
	stamp      fileStamp
	readErr    error
}

// New loads the file at path and compiles it once.
func New(path string, opts Options) (Model, error) {
	cellWidth := opts.CellWidth
	if cellWidth == 0 {
		cellWidth = DefaultCellWidth
	}
	if cellWidth < 0 {
		return Model{}, fmt.Errorf("cell width must be positive, got %d", cellWidth)
	}

	m := Model{
		path:      path,
		cellWidth: cellWidth,
		view:      &viewport{pixels: livedsl.DefaultViewportWidth},
		sink:      &sink{},
	}

	d, err := livedsl.NewDriver(
		livedsl.WithFilename(path),
		livedsl.WithSink(m.sink),
		livedsl.WithStatePolicy(opts.Policy),
		livedsl.WithViewport(func() int { return m.view.pixels }),
	)
	if err != nil {
		return Model{}, err
	}
	m.driver = d

	msg := readSource(path)
	switch msg := msg.(type) {
	case readErrMsg:
		return Model{}, msg.err
	case sourceMsg:
		m.stamp = msg.stamp
		d.SetSource(msg.source)
	}
	return m, nil
}

// Run starts the preview and blocks until the user quits.
func Run(path string, opts Options) error {
	m, err := New(path, opts)
	if err != nil {
		return err
	}
	defer m.driver.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.view.pixels = msg.Width * m.cellWidth
		debug.Log("preview: resize to %d cols (%dpx)", msg.Width, m.view.pixels)
		m.driver.Resize()
		m.clampFocus()
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.poll(), tick())

	case sourceMsg:
		m.stamp = msg.stamp
		m.readErr = nil
		debug.Log("preview: reloading %s", m.path)
		m.driver.SetSource(msg.source)
		m.clampFocus()
		return m, nil

	case readErrMsg:
		m.readErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttons := m.buttons()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if len(buttons) > 0 {
			m.focus = (m.focus + 1) % len(buttons)
		}
	case "shift+tab":
		if len(buttons) > 0 {
			m.focus = (m.focus - 1 + len(buttons)) % len(buttons)
		}
	case "enter", " ":
		if m.focus < len(buttons) {
			m.driver.Activate(buttons[m.focus].Action)
			m.clampFocus()
		}
	case "r":
		return m, func() tea.Msg { return readSource(m.path) }
	}
	return m, nil
}

// buttons returns the clickable elements of the shown document.
func (m Model) buttons() []*markup.Element {
	if m.sink.result == nil {
		return nil
	}
	return m.sink.result.Document.Buttons()
}

// clampFocus keeps the focus index inside the current button list.
func (m *Model) clampFocus() {
	if n := len(m.buttons()); m.focus >= n {
		m.focus = max(n-1, 0)
	}
}

// poll returns a command that reloads the file if it changed on disk.
func (m Model) poll() tea.Cmd {
	path, stamp := m.path, m.stamp
	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return readErrMsg{err: err}
		}
		if info.ModTime().Equal(stamp.modTime) && info.Size() == stamp.size {
			return nil
		}
		return readSource(path)
	}
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// readSource reads the file and its stamp.
func readSource(path string) tea.Msg {
	info, err := os.Stat(path)
	if err != nil {
		return readErrMsg{err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return readErrMsg{err: fmt.Errorf("reading file: %w", err)}
	}
	return sourceMsg{
		source: string(data),
		stamp:  fileStamp{modTime: info.ModTime(), size: info.Size()},
	}
}
