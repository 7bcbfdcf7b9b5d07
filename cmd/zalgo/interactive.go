package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/zalgo-codec/codec"
	"github.com/wippyai/zalgo-codec/files"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// noteTTL is how long a notification stays on screen.
const noteTTL = 3 * time.Second

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type operation int

const (
	opEncode operation = iota
	opDecode
	opWrap
	opUnwrap
)

func (o operation) String() string {
	switch o {
	case opEncode:
		return "encoded"
	case opDecode:
		return "decoded"
	case opWrap:
		return "wrapped"
	case opUnwrap:
		return "unwrapped"
	}
	return "unknown"
}

type modelState int

const (
	stateEdit modelState = iota
	stateSavePath
)

type notification struct {
	text  string
	id    int
	isErr bool
}

type expireMsg struct {
	id int
}

type interactiveModel struct {
	err       error
	result    string
	notes     []notification
	input     textinput.Model
	path      textinput.Model
	nextNote  int
	lastOp    operation
	state     modelState
	overwrite bool
}

func newInteractiveModel(savePath string, overwrite bool) *interactiveModel {
	in := textinput.New()
	in.Placeholder = "text to encode, or an encoded cluster to decode"
	in.Prompt = "> "
	in.Width = 60
	in.Focus()

	p := textinput.New()
	p.Prompt = "save to: "
	p.Placeholder = "path"
	p.Width = 50
	p.SetValue(savePath)

	return &interactiveModel{
		input:     in,
		path:      p,
		overwrite: overwrite,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == stateSavePath {
				m.state = stateEdit
				m.path.Blur()
				m.input.Focus()
				return m, nil
			}
			return m, tea.Quit

		case "ctrl+e":
			m.apply(opEncode)
			return m, nil
		case "ctrl+d":
			m.apply(opDecode)
			return m, nil
		case "ctrl+w":
			m.apply(opWrap)
			return m, nil
		case "ctrl+u":
			m.apply(opUnwrap)
			return m, nil

		case "ctrl+y":
			return m, m.copyResult()

		case "ctrl+s":
			if m.result == "" {
				return m, m.notify("nothing to save", true)
			}
			m.state = stateSavePath
			m.input.Blur()
			m.path.Focus()
			return m, nil

		case "enter":
			if m.state == stateSavePath {
				return m, m.save()
			}
			m.apply(opEncode)
			return m, nil
		}

	case expireMsg:
		for i, n := range m.notes {
			if n.id == msg.id {
				m.notes = append(m.notes[:i], m.notes[i+1:]...)
				break
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.state == stateSavePath {
		m.path, cmd = m.path.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *interactiveModel) apply(op operation) {
	text := m.input.Value()
	var (
		out string
		err error
	)
	switch op {
	case opEncode:
		out, err = codec.Encode(text)
	case opDecode:
		out, err = codec.Decode(text)
	case opWrap:
		out, err = codec.WrapPython(text)
	case opUnwrap:
		out, err = codec.UnwrapPython(text)
	}

	m.lastOp = op
	if err != nil {
		m.err = err
		m.result = ""
		return
	}
	m.err = nil
	m.result = out
}

func (m *interactiveModel) copyResult() tea.Cmd {
	if m.result == "" {
		return m.notify("nothing to copy", true)
	}
	if err := copyToClipboard(m.result); err != nil {
		return m.notify(fmt.Sprintf("copy failed: %v", err), true)
	}
	return m.notify("copied to clipboard", false)
}

func (m *interactiveModel) save() tea.Cmd {
	path := strings.TrimSpace(m.path.Value())
	if path == "" {
		return m.notify("enter a path first", true)
	}
	if err := files.WriteFile(path, []byte(m.result), m.overwrite); err != nil {
		return m.notify(err.Error(), true)
	}
	m.state = stateEdit
	m.path.Blur()
	m.input.Focus()
	return m.notify("saved to "+path, false)
}

// notify shows text and schedules its removal.
func (m *interactiveModel) notify(text string, isErr bool) tea.Cmd {
	m.nextNote++
	id := m.nextNote
	m.notes = append(m.notes, notification{id: id, text: text, isErr: isErr})
	return tea.Tick(noteTTL, func(time.Time) tea.Msg {
		return expireMsg{id: id}
	})
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Zalgo Codec"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.result != "":
		b.WriteString(labelStyle.Render(m.lastOp.String() + ":"))
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")

	if m.state == stateSavePath {
		b.WriteString(m.path.View())
		b.WriteString("\n\n")
	}

	for _, n := range m.notes {
		if n.isErr {
			b.WriteString(noteStyle.Render(errorStyle.Render(n.text)))
		} else {
			b.WriteString(noteStyle.Render(n.text))
		}
		b.WriteString("\n")
	}

	if m.state == stateSavePath {
		b.WriteString(helpStyle.Render("enter save \u2022 esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("enter/ctrl+e encode \u2022 ctrl+d decode \u2022 ctrl+w wrap \u2022 ctrl+u unwrap \u2022 ctrl+y copy \u2022 ctrl+s save \u2022 esc quit"))
	}
	return b.String()
}

func runInteractive(savePath string, overwrite bool) error {
	p := tea.NewProgram(newInteractiveModel(savePath, overwrite), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
