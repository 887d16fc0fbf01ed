package main

import (
	"fmt"
	"io"

	"github.com/unix-emulator/cli/internal/shell"
	"github.com/unix-emulator/cli/internal/ui"
)

func printUsage(w io.Writer) {
	heading := ui.TitleStyle.Render
	label := ui.PromptStyle.Render
	dim := ui.DimStyle.Render

	fmt.Fprintln(w, heading("unixemu")+dim(" - interactive Unix command emulator"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Usage:"))
	fmt.Fprintln(w, "  unixemu [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Opens a full-screen shell that runs a small set of file and directory")
	fmt.Fprintln(w, "  commands against the real filesystem. Press Esc or type 'exit' to leave.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Flags:"))
	fmt.Fprintln(w, "  "+label("-h, --help")+"    Show this help message")
	fmt.Fprintln(w, "  "+label("--version")+"     Print the version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Environment:"))
	fmt.Fprintln(w, "  "+label("UNIXEMU_CONFIG_DIR")+"     Config directory (default ~/.config/unixemu)")
	fmt.Fprintln(w, "  "+label("UNIXEMU_MAX_LINES")+"      Transcript capacity in entries (default 20)")
	fmt.Fprintln(w, "  "+label("UNIXEMU_TITLE")+"          Title shown on the first row")
	fmt.Fprintln(w, "  "+label("UNIXEMU_START_IN_HOME")+"  Start in the home directory (default true)")
	fmt.Fprintln(w, "  "+label("UNIXEMU_LOG_LEVEL")+"      debug, info, warn or error (default warn)")
	fmt.Fprintln(w, "  "+label("UNIXEMU_LOG_FILE")+"       Write logs here instead of stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Commands (interactive):"))
	fmt.Fprintln(w)

	columns := []ui.Column{
		{Header: "Command", Width: 24},
		{Header: "Description", Width: 44},
	}
	help := shell.Commands()
	rows := make([][]string, len(help))
	for i, h := range help {
		rows[i] = []string{h.Usage, h.Description}
	}
	fmt.Fprint(w, ui.RenderTable(columns, rows))
}
