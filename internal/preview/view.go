package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-livedsl/internal/markup"
)

// styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Bold(true)
	borderColor  = lipgloss.Color("8")
)

// headingSize is the font size from which text is drawn bold.
const headingSize = 18

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("livedsl preview"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %dpx", m.path, m.view.pixels)))
	sb.WriteString("\n\n")

	if m.sink.result != nil {
		r := &renderer{cellWidth: m.cellWidth, buttons: m.buttons()}
		if len(r.buttons) > 0 {
			r.focused = r.buttons[min(m.focus, len(r.buttons)-1)]
		}
		if root := m.sink.result.Document.Root; root != nil {
			sb.WriteString(r.element(root))
		} else {
			sb.WriteString(dimStyle.Render("(nothing visible at this width)"))
		}
		sb.WriteString("\n\n")
	}

	if d := m.sink.diag; d != nil {
		sb.WriteString(errorStyle.Render(d.Error()))
		sb.WriteString("\n")
		if m.sink.result != nil {
			sb.WriteString(dimStyle.Render("showing the last successful render"))
			sb.WriteString("\n")
		}
	}
	if m.readErr != nil {
		sb.WriteString(errorStyle.Render("read: " + m.readErr.Error()))
		sb.WriteString("\n")
	}
	if r := m.sink.result; r != nil {
		for _, w := range r.Warnings {
			sb.WriteString(hintStyle.Render(w.Error()))
			sb.WriteString("\n")
		}
		if line := stateLine(r.State); line != "" {
			sb.WriteString(dimStyle.Render(line))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(dimStyle.Render("tab/shift+tab focus · enter click · r reload · q quit"))
	return sb.String()
}

// stateLine lists the state values, e.g. "count=3 step=1".
func stateLine(state map[string]int) string {
	names := make([]string, 0, len(state))
	for name := range state {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, state[name])
	}
	return strings.Join(parts, " ")
}

// renderer draws a markup tree with lipgloss. Pixel values are converted
// to terminal cells; a cell is about twice as tall as it is wide.
type renderer struct {
	cellWidth int
	buttons   []*markup.Element
	focused   *markup.Element
}

func (r *renderer) element(e *markup.Element) string {
	var s string
	switch e.Tag {
	case "button":
		style := buttonStyle
		if e == r.focused {
			style = focusedStyle
		}
		s = style.Render(" " + e.Text + " ")
	case "div":
		children := make([]string, 0, len(e.Children))
		for _, c := range e.Children {
			children = append(children, r.element(c))
		}
		s = lipgloss.JoinVertical(lipgloss.Left, children...)
	default:
		s = e.Text
		if e.Style.FontSize != nil && *e.Style.FontSize >= headingSize {
			s = lipgloss.NewStyle().Bold(true).Render(s)
		}
	}
	return r.box(e.Style).Render(s)
}

// box maps padding and border onto a lipgloss style.
func (r *renderer) box(st markup.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if st.Padding != nil {
		h := *st.Padding / r.cellWidth
		v := *st.Padding / (2 * r.cellWidth)
		style = style.Padding(v, h)
	}
	if st.Border {
		style = style.Border(lipgloss.NormalBorder()).BorderForeground(borderColor)
	}
	return style
}
