package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/unix-emulator/cli/internal/session"
	"github.com/unix-emulator/cli/internal/shell"
	"github.com/unix-emulator/cli/internal/ui"
)

type model struct {
	input      session.InputBuffer
	transcript *session.Transcript
	dispatcher *shell.Dispatcher
	getwd      func() (string, error)
	log        *zap.Logger

	title    string
	width    int
	height   int
	quitting bool
}

type modelConfig struct {
	fs       shell.Filesystem
	maxLines int
	title    string
	log      *zap.Logger
}

func initialModel(cfg modelConfig) model {
	log := cfg.log
	if log == nil {
		log = zap.NewNop()
	}
	return model{
		transcript: session.NewTranscript(cfg.maxLines),
		dispatcher: shell.NewDispatcher(cfg.fs, log),
		getwd:      cfg.fs.Getwd,
		log:        log,
		title:      cfg.title,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes:
		m.input.Append(msg.Runes)
	case tea.KeySpace:
		m.input.Insert(' ')
	case tea.KeyBackspace:
		m.input.DeleteLast()
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// submit runs the buffered line. The prompt entry records the directory the
// command was typed in, so it is read before dispatch. exit leaves the
// transcript untouched.
func (m model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	inv, ok := shell.Parse(raw)
	if !ok {
		return m, nil
	}
	m.input.Reset()

	if inv.Command == shell.CommandExit {
		m.quitting = true
		return m, tea.Quit
	}

	m.transcript.Append(session.Entry{
		Text: ui.PromptLine(m.cwd(), raw),
		Kind: session.EntryPrompt,
	})

	res := m.dispatcher.Dispatch(raw)
	switch res.Action {
	case shell.ActionExit:
		m.quitting = true
		return m, tea.Quit
	case shell.ActionClear:
		m.transcript.Clear()
	case shell.ActionPrint:
		m.transcript.Append(session.Entry{Text: res.Text, Kind: entryKind(res.Kind)})
	}
	return m, nil
}

func (m model) cwd() string {
	dir, err := m.getwd()
	if err != nil {
		m.log.Debug("working directory unavailable", zap.Error(err))
		return ui.UnknownDir
	}
	return dir
}

func entryKind(k shell.ResultKind) session.EntryKind {
	switch k {
	case shell.ResultSuccess:
		return session.EntrySuccess
	case shell.ResultError:
		return session.EntryError
	}
	return session.EntryOutput
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	screen := ui.Screen{Title: m.title, Width: m.width, Height: m.height}
	return ui.Render(screen, m.transcript.Entries(), m.input.Value(), m.cwd()).String()
}
