// ============================================================================
// DahDit - Morse Language Interpreter
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive DahDit REPL
// Author:      JangHwanPark
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JangHwanPark/DahDit/foundation/dahdit"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/morse"
	"github.com/JangHwanPark/DahDit/pkg/core/version"
)

// SourceName is the file name diagnostics carry for REPL input
const SourceName = "<repl>"

// Mode selects how input lines are read
type Mode int

const (
	// ModePlain encodes the line to Morse before evaluating it
	ModePlain Mode = iota
	// ModeMorse evaluates the line as written
	ModeMorse
)

func (m Mode) String() string {
	if m == ModeMorse {
		return "morse"
	}
	return "plain"
}

// EntryKind classifies transcript lines
type EntryKind int

const (
	EntryInput EntryKind = iota
	EntryMorse
	EntryOutput
	EntryDiagnostic
	EntryInfo
)

// Entry is one line of the transcript
type Entry struct {
	Kind EntryKind
	Text string
}

// Config holds REPL configuration
type Config struct {
	Interpreter dahdit.Options
	Mode        Mode
	MaxHistory  int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Mode:       ModePlain,
		MaxHistory: 100,
	}
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	quitting bool
	mode     Mode

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Interpreter state; output is a pointer so copies of the model share it
	session *dahdit.Session
	output  *bytes.Buffer

	transcript   []Entry
	history      []string
	historyIndex int
	maxHistory   int
}

// New creates a REPL model with a fresh session
func New(cfg Config) Model {
	output := &bytes.Buffer{}
	opts := cfg.Interpreter
	opts.Output = output
	opts.Sink = nil

	input := textinput.New()
	input.Prompt = "» "
	input.Placeholder = "PRINT 2 + 3;"
	input.PromptStyle = PromptStyle
	input.Focus()

	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultConfig().MaxHistory
	}

	return Model{
		mode:       cfg.Mode,
		input:      input,
		session:    dahdit.NewSession(opts),
		output:     output,
		maxHistory: cfg.MaxHistory,
		transcript: []Entry{
			{Kind: EntryInfo, Text: "DahDit " + version.Interpreter + ". Type :help for commands."},
		},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title panel
		footerHeight := 5 // Input panel + status bar
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 8
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()
		if m.submit(line) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyTab:
		m.toggleMode()
		return m, nil

	case tea.KeyUp:
		m.recall(-1)
		return m, nil

	case tea.KeyDown:
		m.recall(1)
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one entered line. It returns true when the REPL should exit.
func (m *Model) submit(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	m.remember(trimmed)
	m.append(EntryInput, trimmed)

	if strings.HasPrefix(trimmed, ":") {
		return m.command(trimmed)
	}

	source := trimmed
	if m.mode == ModePlain {
		encoded, err := morse.EncodeText(trimmed)
		if err != nil {
			m.append(EntryDiagnostic, err.Error())
			m.updateViewportContent()
			return false
		}
		source = encoded
		m.append(EntryMorse, encoded)
	}

	m.evaluate(source)
	m.updateViewportContent()
	return false
}

func (m *Model) evaluate(source string) {
	m.output.Reset()
	stats := m.session.Eval(SourceName, strings.NewReader(source+"\n"))

	for _, line := range strings.Split(strings.TrimRight(m.output.String(), "\n"), "\n") {
		if line != "" {
			m.append(EntryOutput, line)
		}
	}
	for _, d := range stats.Diagnostics {
		m.append(EntryDiagnostic, d.String())
	}
}

// command runs a colon command
func (m *Model) command(line string) bool {
	name := strings.Fields(line)[0]
	switch name {
	case ":quit", ":q":
		return true

	case ":vars":
		symbols := m.session.Symbols()
		names := symbols.Names()
		if len(names) == 0 {
			m.append(EntryInfo, "no variables defined")
			break
		}
		for _, n := range names {
			value, _ := symbols.Get(n)
			m.append(EntryInfo, fmt.Sprintf("%s = %d", n, value))
		}
		m.append(EntryInfo, fmt.Sprintf("%d of %d slots used", symbols.Len(), symbols.Cap()))

	case ":reset":
		m.session.Reset()
		m.append(EntryInfo, "symbol table cleared")

	case ":mode":
		m.toggleMode()

	case ":clear":
		m.transcript = nil

	case ":help":
		m.append(EntryInfo, ":vars   list variables")
		m.append(EntryInfo, ":reset  forget all variables")
		m.append(EntryInfo, ":mode   switch between plain and morse input (tab)")
		m.append(EntryInfo, ":clear  clear the transcript")
		m.append(EntryInfo, ":quit   leave the REPL")

	default:
		m.append(EntryDiagnostic, fmt.Sprintf("unknown command %s (try :help)", name))
	}

	m.updateViewportContent()
	return false
}

func (m *Model) toggleMode() {
	if m.mode == ModePlain {
		m.mode = ModeMorse
	} else {
		m.mode = ModePlain
	}
	m.append(EntryInfo, "input mode: "+m.mode.String())
	m.updateViewportContent()
}

// remember adds a line to the input history
func (m *Model) remember(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
		if len(m.history) > m.maxHistory {
			m.history = m.history[len(m.history)-m.maxHistory:]
		}
	}
	m.historyIndex = len(m.history)
}

// recall moves through the input history; delta is -1 for older lines
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	index := m.historyIndex + delta
	if index < 0 {
		index = 0
	}
	if index >= len(m.history) {
		m.historyIndex = len(m.history)
		m.input.SetValue("")
		return
	}
	m.historyIndex = index
	m.input.SetValue(m.history[index])
	m.input.CursorEnd()
}

func (m *Model) append(kind EntryKind, text string) {
	m.transcript = append(m.transcript, Entry{Kind: kind, Text: text})
}

// Transcript returns a copy of the transcript
func (m Model) Transcript() []Entry {
	return append([]Entry(nil), m.transcript...)
}

// Mode returns the current input mode
func (m Model) Mode() Mode {
	return m.mode
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting DahDit REPL..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(TranscriptPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(InputPanelStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

// renderHeader renders the title panel
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		ModeStyle.Render("["+m.mode.String()+"]"),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderStatusBar renders variable usage and key hints
func (m Model) renderStatusBar() string {
	symbols := m.session.Symbols()
	left := HelpDescStyle.Render(fmt.Sprintf("vars %d/%d", symbols.Len(), symbols.Cap()))
	hints := strings.Join([]string{
		RenderKeyHint("enter", "eval"),
		RenderKeyHint("tab", "mode"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("esc", "quit"),
	}, "  ")
	return StatusBarStyle.Width(m.width - 2).Render(left + "   " + hints)
}

// updateViewportContent re-renders the transcript into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for _, e := range m.transcript {
		content.WriteString(renderEntry(e))
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

func renderEntry(e Entry) string {
	switch e.Kind {
	case EntryInput:
		return PromptStyle.Render("» ") + InputStyle.Render(e.Text)
	case EntryMorse:
		return "  " + MorseStyle.Render(e.Text)
	case EntryOutput:
		return OutputStyle.Render(e.Text)
	case EntryDiagnostic:
		return DiagnosticStyle.Render(e.Text)
	default:
		return InfoStyle.Render(e.Text)
	}
}

// Run starts the REPL
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
