package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unix-emulator/cli/internal/session"
)

func rowTexts(f Frame) []string {
	out := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = r.Text
	}
	return out
}

func promptWidth(f Frame) int {
	return ansi.StringWidth(f.Rows[f.PromptRow].Text)
}

func TestRenderEmptySession(t *testing.T) {
	f := Render(Screen{}, nil, "", "/home/user")

	assert.Equal(t, []string{DefaultTitle, Separator, "> /home/user "}, rowTexts(f))
	assert.Equal(t, 2, f.PromptRow)
	assert.Equal(t, len("> /home/user "), promptWidth(f))
}

func TestRenderPromptSitsBelowTranscript(t *testing.T) {
	for n := 0; n <= 20; n += 5 {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			entries := make([]session.Entry, n)
			for i := range entries {
				entries[i] = session.Entry{Text: fmt.Sprintf("entry %d", i)}
			}

			f := Render(Screen{Width: 80, Height: 24}, entries, "ls", "/tmp")

			require.Equal(t, 2+n, f.PromptRow)
			assert.Equal(t, "> /tmp ls", f.Rows[f.PromptRow].Text)
			if n > 0 {
				assert.Equal(t, "entry 0", f.Rows[2].Text)
				assert.Equal(t, fmt.Sprintf("entry %d", n-1), f.Rows[1+n].Text)
			}
		})
	}
}

func TestRenderMultiLineEntries(t *testing.T) {
	entries := []session.Entry{
		{Text: "> /tmp ls", Kind: session.EntryPrompt},
		{Text: "a.txt\nb.txt\nc"},
		{Text: "> /tmp cat notes.txt", Kind: session.EntryPrompt},
		{Text: "hello world\n"},
		{Text: ""},
	}

	f := Render(Screen{}, entries, "", "/tmp")

	assert.Equal(t, []string{
		DefaultTitle, Separator,
		"> /tmp ls", "a.txt", "b.txt", "c",
		"> /tmp cat notes.txt", "hello world",
		"",
		"> /tmp ",
	}, rowTexts(f))
	assert.Equal(t, 9, f.PromptRow)
}

func TestRenderUsesCustomTitleAndUnknownDir(t *testing.T) {
	f := Render(Screen{Title: "my shell"}, nil, "x", "")
	assert.Equal(t, "my shell", f.Rows[0].Text)
	assert.Equal(t, "> "+UnknownDir+" x", f.Rows[2].Text)
}

func TestRenderClipsToWidth(t *testing.T) {
	entries := []session.Entry{{Text: strings.Repeat("x", 100)}, {Text: "日本語テキスト"}}

	f := Render(Screen{Width: 10}, entries, strings.Repeat("y", 50), "/very/long/path")

	for i, row := range f.Rows {
		limit := 10
		if i == f.PromptRow {
			limit = 9
		}
		assert.LessOrEqual(t, ansi.StringWidth(row.Text), limit, "row %d", i)
	}
	assert.Equal(t, "日本語テキ", f.Rows[3].Text)
	assert.Equal(t, 9, promptWidth(f))
}

func TestRenderTinyScreensDoNotPanic(t *testing.T) {
	entries := []session.Entry{{Text: "wide 日本"}, {Text: "\x1b[31mred\x1b[0m"}}
	for _, w := range []int{1, 2, 3} {
		assert.NotPanics(t, func() {
			f := Render(Screen{Width: w, Height: 1}, entries, "日", "/")
			_ = f.String()
		})
	}
	f := Render(Screen{Width: 1}, nil, "abc", "/")
	assert.Equal(t, "", f.Rows[f.PromptRow].Text)
	assert.Equal(t, 0, promptWidth(f))
}

func TestRenderSanitizesControlSequences(t *testing.T) {
	entries := []session.Entry{
		{Text: "\x1b[31mred\x1b[0m text"},
		{Text: "a\tb"},
		{Text: "bell\x07 and cr\r"},
	}

	f := Render(Screen{}, entries, "q\x01", "/")

	assert.Equal(t, "red text", f.Rows[2].Text)
	assert.Equal(t, "a       b", f.Rows[3].Text)
	assert.Equal(t, "bell? and cr", f.Rows[4].Text)
	assert.Equal(t, "> / q?", f.Rows[5].Text)
}

func TestRenderIsPure(t *testing.T) {
	entries := []session.Entry{{Text: "one"}, {Text: "two", Kind: session.EntryError}}
	a := Render(Screen{Width: 40}, entries, "in", "/a")
	b := Render(Screen{Width: 40}, entries, "in", "/a")
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "one", entries[0].Text)
}

func TestFrameStringPlacesCursorOnPrompt(t *testing.T) {
	f := Render(Screen{}, []session.Entry{{Text: "done"}}, "pwd", "/srv")

	lines := strings.Split(ansi.Strip(f.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, DefaultTitle, lines[0])
	assert.Equal(t, Separator, lines[1])
	assert.Equal(t, "done", lines[2])
	assert.Equal(t, "> /srv pwd"+cursorGlyph, lines[3])
}

func TestPromptLine(t *testing.T) {
	assert.Equal(t, "> /home/user touch a", PromptLine("/home/user", "touch a"))
	assert.Equal(t, "> / ", PromptLine("/", ""))
}

func TestRenderDropsOldestRowsToFitHeight(t *testing.T) {
	entries := []session.Entry{
		{Text: "> / cat long.txt", Kind: session.EntryPrompt},
		{Text: strings.Repeat("line\n", 39) + "last\n"},
	}

	f := Render(Screen{Width: 80, Height: 10}, entries, "", "/")

	require.Len(t, f.Rows, 10)
	assert.Equal(t, DefaultTitle, f.Rows[0].Text)
	assert.Equal(t, Separator, f.Rows[1].Text)
	assert.Equal(t, 9, f.PromptRow)
	assert.Equal(t, "last", f.Rows[8].Text)
	assert.Equal(t, "> / ", f.Rows[9].Text)
}

func TestRenderHeightBelowChromeKeepsPrompt(t *testing.T) {
	entries := []session.Entry{{Text: "a"}, {Text: "b"}}

	f := Render(Screen{Height: 2}, entries, "x", "/")

	assert.Equal(t, []string{DefaultTitle, Separator, "> / x"}, rowTexts(f))
	assert.Equal(t, 2, f.PromptRow)
}

func TestRenderHeightLeavesShortTranscriptAlone(t *testing.T) {
	entries := []session.Entry{{Text: "one"}, {Text: "two"}}

	f := Render(Screen{Height: 24}, entries, "", "/")

	assert.Equal(t, []string{DefaultTitle, Separator, "one", "two", "> / "}, rowTexts(f))
}
