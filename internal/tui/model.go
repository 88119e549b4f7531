package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"filedrop/internal/app"
	"filedrop/internal/log"
	"filedrop/internal/picker"
	"filedrop/internal/tui/common"
	"filedrop/internal/tui/components"
	"filedrop/internal/tui/messages"
	"filedrop/internal/tui/views"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	dialogTitle = "Open file"
	maxHints    = 8
)

// Lister reports the completion candidates shown under the path field.
type Lister interface {
	Candidates(input string) ([]string, error)
}

type Model struct {
	controller *app.Controller
	lister     Lister
	picker     picker.Picker

	input    textinput.Model
	viewer   textarea.Model
	status   *components.StatusBar
	focus    common.Focus
	hint     string
	showHelp bool
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// New builds the terminal frontend. lister and p may be nil, which disables
// the hint line and the file dialog.
func New(controller *app.Controller, lister Lister, p picker.Picker) *Model {
	input := textinput.New()
	input.Prompt = "Path: "
	input.Placeholder = "type a path, Tab completes"
	input.Focus()

	viewer := textarea.New()
	viewer.CharLimit = 0
	viewer.MaxHeight = 0
	viewer.ShowLineNumbers = true
	viewer.Placeholder = "file contents appear here"
	viewer.SetWidth(80)
	viewer.SetHeight(20)
	viewer.Blur()

	return &Model{
		controller: controller,
		lister:     lister,
		picker:     p,
		input:      input,
		viewer:     viewer,
		status:     components.NewStatusBar(),
		focus:      common.FocusPath,
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case messages.PickedMsg:
		return m, m.handlePicked(msg)
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}

	// cursor blink and spinner ticks
	var inputCmd, viewerCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewer, viewerCmd = m.viewer.Update(msg)
	return m, tea.Batch(m.status.Update(msg), inputCmd, viewerCmd)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.Paste {
		if path, ok := pastedFile(string(msg.Runes)); ok {
			m.frame([]string{path})
			return nil
		}
	}

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+o":
		return m.openDialog()
	case "esc":
		m.toggleFocus()
		return nil
	case "f1":
		m.showHelp = !m.showHelp
		return nil
	}

	if m.focus == common.FocusViewer {
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		m.controller.SetContents(m.viewer.Value())
		return cmd
	}

	sel := m.controller.Selector()
	switch msg.String() {
	case "tab":
		sel.Tab()
		m.frame(nil)
		return nil
	case "enter":
		sel.Enter()
		m.frame(nil)
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	sel.Edit(m.input.Value())
	m.frame(nil)
	return cmd
}

// openDialog runs the native picker off the event loop.
func (m *Model) openDialog() tea.Cmd {
	if m.picker == nil {
		m.status.SetError("no file dialog available")
		return nil
	}
	if m.status.Loading() {
		return nil
	}
	m.status.SetText("waiting for file dialog")
	tick := m.status.SetLoading(true)

	p := m.picker
	pick := func() tea.Msg {
		path, err := p.PickFile(dialogTitle)
		return messages.PickedMsg{Path: path, Err: err}
	}
	return tea.Batch(tick, pick)
}

func (m *Model) handlePicked(msg messages.PickedMsg) tea.Cmd {
	m.status.SetLoading(false)
	m.status.SetText("")

	switch {
	case msg.Err == nil:
		m.controller.Selector().SetPickedPath(msg.Path)
		m.frame(nil)
	case errors.Is(msg.Err, picker.ErrCancelled):
		log.Debug("file dialog cancelled")
	default:
		log.LogWithError(msg.Err).Warn("file dialog failed")
		m.status.SetError(msg.Err.Error())
	}
	return nil
}

// frame runs one controller update and mirrors its state into the widgets.
func (m *Model) frame(dropped []string) {
	res := m.controller.Update(dropped)

	path := m.controller.Selector().Path()
	if m.input.Value() != path {
		m.input.SetValue(path)
		m.input.CursorEnd()
	}

	if res.Loaded {
		m.viewer.SetValue(m.controller.Contents())
		m.status.SetText(m.controller.Document().Summary())
	}

	m.updateHint()
}

func (m *Model) updateHint() {
	m.hint = ""
	if m.lister == nil {
		return
	}

	sel := m.controller.Selector()
	base := sel.CycleBase()
	if base == "" {
		base = sel.Path()
	}
	if base == "" {
		return
	}

	candidates, err := m.lister.Candidates(base)
	if err != nil || len(candidates) < 2 {
		return
	}

	names := make([]string, 0, maxHints)
	for i, c := range candidates {
		if i == maxHints {
			names = append(names, "…")
			break
		}
		names = append(names, filepath.Base(c))
	}
	m.hint = strings.Join(names, "  ")
}

func (m *Model) toggleFocus() {
	if m.focus == common.FocusPath {
		m.focus = common.FocusViewer
		m.input.Blur()
		m.viewer.Focus()
		return
	}
	m.focus = common.FocusPath
	m.viewer.Blur()
	m.input.Focus()
}

func (m *Model) resize(width, height int) {
	// borders, padding and prompt
	m.input.Width = max(width-len(m.input.Prompt)-6, 10)
	m.viewer.SetWidth(max(width-4, 20))
	// title, path box, hint, status, key line
	m.viewer.SetHeight(max(height-12, 3))
}

// pastedFile reports whether text names an existing regular file. Terminals
// paste dropped files as a path, sometimes quoted or as a file:// URI.
func pastedFile(text string) (string, bool) {
	path := strings.Trim(strings.TrimSpace(text), `'"`)
	path = strings.TrimPrefix(path, "file://")
	if path == "" || strings.ContainsRune(path, '\n') {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}

// Getters used by the views.

func (m *Model) Focus() common.Focus {
	return m.focus
}

func (m *Model) PathView() string {
	return m.input.View()
}

func (m *Model) ViewerView() string {
	return m.viewer.View()
}

func (m *Model) Hint() string {
	return m.hint
}

func (m *Model) StatusView() string {
	return m.status.View()
}

func (m *Model) ShowHelp() bool {
	return m.showHelp
}
