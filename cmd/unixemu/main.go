package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/unix-emulator/cli/internal/config"
	"github.com/unix-emulator/cli/internal/fsops"
	"github.com/unix-emulator/cli/internal/logging"
	"github.com/unix-emulator/cli/internal/ui"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const farewell = "Exiting Unix Emulator. Goodbye!"

var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			printUsage(stdout)
			return 0
		case "--version":
			fmt.Fprintln(stdout, "unixemu "+version)
			return 0
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return 1
	}

	logCfg := logging.Config{Level: cfg.Log.Level, File: cfg.Log.File}
	log, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintln(stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return 1
	}
	defer log.Sync() //nolint:errcheck

	if !stdinIsTerminal() {
		fmt.Fprintln(stderr, "unixemu needs an interactive terminal on stdin")
		fmt.Fprintln(stderr, "Run 'unixemu --help' for usage information")
		return 1
	}

	if cfg.StartInHome {
		enterHome(log)
	}

	m := initialModel(modelConfig{
		fs:       fsops.New(),
		maxLines: cfg.MaxLines,
		title:    cfg.Title,
		log:      logging.Interactive(logCfg, log),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("terminal session failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, ui.NoticeStyle.Render(farewell))
	return 0
}

// enterHome moves the process into the user's home directory. Failing to do
// so leaves the session in the launch directory.
func enterHome(log *zap.Logger) {
	home, err := os.UserHomeDir()
	if err == nil {
		err = os.Chdir(home)
	}
	if err != nil {
		log.Warn("could not change to home directory", zap.Error(err))
		return
	}
	log.Debug("starting in home directory", zap.String("dir", home))
}
