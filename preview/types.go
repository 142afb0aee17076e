package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style describes the attributes active for one run of characters.
// Colors are lipgloss color strings: "0".."255" for palette colors,
// "#rrggbb" for truecolor, empty for the terminal default.
type Style struct {
	Fg        string
	Bg        string
	Bold      bool
	Faint     bool
	Italic    bool
	Underline bool
	Reverse   bool
}

// Segment is a run of characters sharing one style.
type Segment struct {
	Content string
	Style   Style
}

// Line is one preview line as a sequence of styled segments.
type Line []Segment

// Text is the render-ready preview value.
type Text struct {
	Lines []Line
}

// Plain wraps unstyled text, one Line per input line.
func Plain(s string) Text {
	var t Text
	for _, line := range strings.Split(s, "\n") {
		t.Lines = append(t.Lines, Line{{Content: line}})
	}
	return t
}

// Render produces the styled string for the rendering sink.
func (t Text) Render() string {
	lines := make([]string, len(t.Lines))
	for i, line := range t.Lines {
		var b strings.Builder
		for _, seg := range line {
			b.WriteString(seg.Style.apply().Render(seg.Content))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (s Style) apply() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(lipgloss.Color(s.Fg))
	}
	if s.Bg != "" {
		st = st.Background(lipgloss.Color(s.Bg))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}
