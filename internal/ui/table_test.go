package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	columns := []Column{{Header: "Command", Width: 8}, {Header: "Description", Width: 12}}
	rows := [][]string{
		{"ls", "List the current directory"},
		{"cd <dir>"},
	}

	lines := strings.Split(strings.TrimSuffix(ansi.Strip(RenderTable(columns, rows)), "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "Command   Description ", lines[0])
	assert.Equal(t, strings.Repeat("─", 8)+"  "+strings.Repeat("─", 12), lines[1])
	assert.Equal(t, "ls        List the cur", lines[2])
	assert.Equal(t, "cd <dir>              ", lines[3])
}

func TestPadUsesDisplayWidth(t *testing.T) {
	assert.Equal(t, "日本  ", pad("日本", 6))
	assert.Equal(t, "日本", pad("日本語", 5)[:len("日本")])
	assert.Equal(t, 5, ansi.StringWidth(pad("日本語", 5)))
}
