package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	livedsl "github.com/grindlemire/go-livedsl"
)

const counterSource = `state count = 0
Column {
	Text("Count: {count}") size 18
	Button("+") click increment count
	Button("+5") click increment count step 5
	Text("wide only") when screen > 400
} border padding 8
`

func newTestModel(t *testing.T, source string, opts Options) Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.dsl")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	m, err := New(path, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.driver.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ResizeFiltersByWidth(t *testing.T) {
	type tc struct {
		cols     int
		wantWide bool
	}

	tests := map[string]tc{
		"narrow terminal hides wide text": {cols: 40, wantWide: false},
		"exactly 400px is not wider":      {cols: 50, wantWide: false},
		"wide terminal shows wide text":   {cols: 120, wantWide: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t, counterSource, Options{})
			m, _ = update(t, m, tea.WindowSizeMsg{Width: tt.cols, Height: 30})

			if m.view.pixels != tt.cols*DefaultCellWidth {
				t.Errorf("pixels = %d, want %d", m.view.pixels, tt.cols*DefaultCellWidth)
			}
			if got := m.sink.result.Width; got != tt.cols*DefaultCellWidth {
				t.Errorf("result width = %d, want %d", got, tt.cols*DefaultCellWidth)
			}
			if got := strings.Contains(m.View(), "wide only"); got != tt.wantWide {
				t.Errorf("wide text shown = %v, want %v\n%s", got, tt.wantWide, m.View())
			}
		})
	}
}

func TestModel_FocusAndActivate(t *testing.T) {
	m := newTestModel(t, counterSource, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m, _ = update(t, m, key("enter"))
	if got := m.sink.result.State["count"]; got != 1 {
		t.Fatalf("count after first button = %d, want 1", got)
	}

	m, _ = update(t, m, key("tab"))
	if m.focus != 1 {
		t.Fatalf("focus after tab = %d, want 1", m.focus)
	}
	m, _ = update(t, m, key(" "))
	if got := m.sink.result.State["count"]; got != 6 {
		t.Fatalf("count after +5 button = %d, want 6", got)
	}
	if !strings.Contains(m.View(), "Count: 6") {
		t.Errorf("view does not show the new count:\n%s", m.View())
	}

	m, _ = update(t, m, key("tab"))
	if m.focus != 0 {
		t.Errorf("focus should wrap to 0, got %d", m.focus)
	}
	m, _ = update(t, m, key("shift+tab"))
	if m.focus != 1 {
		t.Errorf("shift+tab should wrap to the last button, got %d", m.focus)
	}
}

func TestModel_BrokenEditKeepsLastRender(t *testing.T) {
	m := newTestModel(t, counterSource, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = update(t, m, key("enter"))

	m, _ = update(t, m, sourceMsg{source: "Column {\n\tText(\"oops\")\n"})

	if m.sink.diag == nil {
		t.Fatal("expected a diagnostic")
	}
	view := m.View()
	if !strings.Contains(view, "UnbalancedBraces") {
		t.Errorf("view does not show the error:\n%s", view)
	}
	if !strings.Contains(view, "Count: 1") {
		t.Errorf("view lost the last good render:\n%s", view)
	}

	// The stale buttons stay focusable but must not change state.
	m, _ = update(t, m, key("enter"))
	if got, _ := m.driver.Store().Get("count"); got != 1 {
		t.Errorf("click on a broken source changed count to %d", got)
	}

	m, _ = update(t, m, sourceMsg{source: counterSource})
	if m.sink.diag != nil {
		t.Errorf("diagnostic not cleared: %v", m.sink.diag)
	}
	if got := m.sink.result.State["count"]; got != 0 {
		t.Errorf("reset policy should reseed count, got %d", got)
	}
}

func TestModel_PreservePolicyKeepsState(t *testing.T) {
	m := newTestModel(t, counterSource, Options{Policy: livedsl.PreserveOnEdit})
	m, _ = update(t, m, key("enter"))
	m, _ = update(t, m, key("enter"))

	m, _ = update(t, m, sourceMsg{source: strings.Replace(counterSource, "Count:", "Total:", 1)})
	if !strings.Contains(m.View(), "Total: 2") {
		t.Errorf("preserved count not shown:\n%s", m.View())
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t, counterSource, Options{})
		_, cmd := update(t, m, key(k))
		if cmd == nil {
			t.Fatalf("%q: expected a quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: command did not quit", k)
		}
	}
}

func TestModel_PollDetectsChanges(t *testing.T) {
	m := newTestModel(t, counterSource, Options{})

	if msg := m.poll()(); msg != nil {
		t.Fatalf("unchanged file produced %T", msg)
	}

	edited := counterSource + "Text(\"footer\")\n"
	if err := os.WriteFile(m.path, []byte(edited), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	msg, ok := m.poll()().(sourceMsg)
	if !ok {
		t.Fatal("changed file did not produce a sourceMsg")
	}
	if msg.source != edited {
		t.Errorf("source = %q, want %q", msg.source, edited)
	}

	m, _ = update(t, m, msg)
	if !strings.Contains(m.View(), "footer") {
		t.Errorf("reloaded view missing new text:\n%s", m.View())
	}
}

func TestNew_Errors(t *testing.T) {
	type tc struct {
		path string
		opts Options
	}

	tests := map[string]tc{
		"missing file":        {path: filepath.Join(t.TempDir(), "nope.dsl")},
		"negative cell width": {path: filepath.Join(t.TempDir(), "nope.dsl"), opts: Options{CellWidth: -1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := New(tt.path, tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}
