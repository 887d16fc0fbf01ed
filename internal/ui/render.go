package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/unix-emulator/cli/internal/session"
)

const (
	DefaultTitle = "Welcome to the Unix Emulator"
	Separator    = "------------------------------"
	UnknownDir   = "Unknown Directory"

	cursorGlyph = "█"
	tabStop     = 8
)

// Screen describes the drawing surface. A zero Width disables clipping and a
// zero Height shows every transcript row.
type Screen struct {
	Title  string
	Width  int
	Height int
}

// Row is one screen line of plain text and the style it is drawn with.
type Row struct {
	Text  string
	Style lipgloss.Style
}

// Frame is a complete screen: title, separator, transcript rows and the
// live prompt directly beneath them.
type Frame struct {
	Rows      []Row
	PromptRow int
}

// PromptLine formats the prompt shown for cwd with the given input.
func PromptLine(cwd, input string) string {
	return "> " + cwd + " " + input
}

// Render lays out a full frame from the current session state. It keeps no
// memory between calls.
func Render(s Screen, entries []session.Entry, input, cwd string) Frame {
	title := s.Title
	if title == "" {
		title = DefaultTitle
	}
	if cwd == "" {
		cwd = UnknownDir
	}

	var body []Row
	for _, e := range entries {
		style := entryStyle(e.Kind)
		for _, line := range entryLines(e.Text) {
			body = append(body, Row{Text: s.clip(line, 0), Style: style})
		}
	}
	body = s.fit(body)

	var f Frame
	f.add(s.clip(sanitize(title), 0), TitleStyle)
	f.add(s.clip(Separator, 0), PlainStyle)
	f.Rows = append(f.Rows, body...)

	// the prompt leaves a cell for the cursor
	prompt := s.clip(sanitize(PromptLine(cwd, input)), 1)
	f.PromptRow = len(f.Rows)
	f.add(prompt, PromptStyle)
	return f
}

// fit drops the oldest transcript rows so the title, separator and prompt
// stay on screen.
func (s Screen) fit(body []Row) []Row {
	if s.Height <= 0 {
		return body
	}
	room := max(s.Height-3, 0)
	if len(body) <= room {
		return body
	}
	return body[len(body)-room:]
}

// String draws the frame with styles applied and the cursor on the prompt
// row.
func (f Frame) String() string {
	var b strings.Builder
	for i, row := range f.Rows {
		if i > 0 {
			b.WriteString("\n")
		}
		if row.Text != "" {
			b.WriteString(row.Style.Render(row.Text))
		}
		if i == f.PromptRow {
			b.WriteString(cursorGlyph)
		}
	}
	return b.String()
}

func (f *Frame) add(text string, style lipgloss.Style) {
	f.Rows = append(f.Rows, Row{Text: text, Style: style})
}

// clip truncates text to the screen width minus reserve cells.
func (s Screen) clip(text string, reserve int) string {
	if s.Width <= 0 {
		return text
	}
	width := s.Width - reserve
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "")
}

func entryStyle(kind session.EntryKind) lipgloss.Style {
	switch kind {
	case session.EntryPrompt:
		return PromptStyle
	case session.EntrySuccess:
		return SuccessStyle
	case session.EntryError:
		return ErrorStyle
	default:
		return PlainStyle
	}
}

// entryLines splits an entry into display lines. A single trailing newline
// is not shown; an empty entry still takes one row.
func entryLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = sanitize(line)
	}
	return lines
}

// sanitize makes a line safe to draw: escape sequences are removed, tabs are
// expanded and remaining control characters are replaced.
func sanitize(line string) string {
	line = ansi.Strip(line)
	if !strings.ContainsFunc(line, unicode.IsControl) {
		return line
	}

	var b strings.Builder
	col := 0
	for _, r := range line {
		switch {
		case r == '\t':
			n := tabStop - col%tabStop
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case r == '\r':
		case unicode.IsControl(r):
			b.WriteRune('?')
			col++
		default:
			b.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return b.String()
}
