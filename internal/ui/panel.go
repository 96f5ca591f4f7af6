package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unitykit-labs/unitykit/internal/folders"
)

// Action is a panel button.
type Action int

const (
	ActionNone Action = iota
	ActionCreateFolders
	ActionDownloadGitignore
	ActionInitGit
	ActionDownloadScripts
	ActionAddPackages
	ActionResolvePackages
)

// Actions returns the buttons in display order.
func Actions() []Action {
	return []Action{
		ActionCreateFolders,
		ActionDownloadGitignore,
		ActionInitGit,
		ActionDownloadScripts,
		ActionAddPackages,
		ActionResolvePackages,
	}
}

// String returns the button label.
func (a Action) String() string {
	switch a {
	case ActionCreateFolders:
		return "Create Default Folders"
	case ActionDownloadGitignore:
		return "Download .gitignore"
	case ActionInitGit:
		return "Initialize Git Repository"
	case ActionDownloadScripts:
		return "Download Scripts"
	case ActionAddPackages:
		return "Add Necessary Packages"
	case ActionResolvePackages:
		return "Resolve Packages"
	default:
		return "none"
	}
}

// PanelState is what the user has entered so far. It survives between panel
// sessions so toggles and the URL are kept after a workflow runs.
type PanelState struct {
	Folders   folders.Selection
	RemoteURL string
}

// PanelResult is how a panel session ended.
type PanelResult struct {
	// Action is the pressed button, or ActionNone when the user quit.
	Action Action
	State  PanelState
}

var (
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headingStyle    = lipgloss.NewStyle().Bold(true)
	focusStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	buttonStyle     = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	activeButton    = buttonStyle.BorderForeground(lipgloss.Color("5")).Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Focus positions: the category toggles come first, then the URL field, then
// the buttons.
const urlField = 7

type panelModel struct {
	title    string
	status   string
	sel      folders.Selection
	input    textinput.Model
	cursor   int
	action   Action
	quitting bool
}

// NewPanelModel returns the bubbletea model for the scaffolding panel.
// status is shown under the title, typically the outcome of the last action.
func NewPanelModel(title, status string, state PanelState) tea.Model {
	sel := make(folders.Selection, len(folders.Categories()))
	if state.Folders == nil {
		sel = folders.All()
	} else {
		for _, c := range folders.Categories() {
			sel[c] = state.Folders[c]
		}
	}

	ti := textinput.New()
	ti.Placeholder = "https://github.com/org/repo.git"
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.Width = 48
	ti.SetValue(state.RemoteURL)

	return panelModel{title: title, status: status, sel: sel, input: ti}
}

func (m panelModel) items() int {
	return len(folders.Categories()) + 1 + len(Actions())
}

func (m panelModel) state() PanelState {
	return PanelState{Folders: m.sel, RemoteURL: strings.TrimSpace(m.input.Value())}
}

func (m panelModel) Init() tea.Cmd {
	return nil
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "shift+tab":
		return m.move(-1)
	case "down", "tab":
		return m.move(1)
	}

	if m.cursor == urlField {
		if key.String() == "enter" {
			return m.move(1)
		}
		return m.updateInput(msg)
	}

	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "k":
		return m.move(-1)
	case "j":
		return m.move(1)
	case "a":
		all := len(m.sel.Enabled()) != len(folders.Categories())
		for _, c := range folders.Categories() {
			m.sel[c] = all
		}
	case " ", "enter", "x":
		if m.cursor < urlField {
			c := folders.Categories()[m.cursor]
			m.sel[c] = !m.sel[c]
			return m, nil
		}
		if key.String() == "x" {
			return m, nil
		}
		m.action = Actions()[m.cursor-urlField-1]
		return m, tea.Quit
	}
	return m, nil
}

func (m panelModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m panelModel) move(delta int) (tea.Model, tea.Cmd) {
	n := m.items()
	m.cursor = (m.cursor + delta + n) % n
	if m.cursor == urlField {
		cmd := m.input.Focus()
		return m, cmd
	}
	m.input.Blur()
	return m, nil
}

func (m panelModel) View() string {
	if m.quitting || m.action != ActionNone {
		return ""
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(m.title) + "\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("Select Folders to Create") + "\n")
	for i, c := range folders.Categories() {
		box := "[ ]"
		if m.sel[c] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, c)
		b.WriteString(m.pointer(i) + m.highlight(i, line) + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("Remote Repository URL") + "\n")
	b.WriteString(m.pointer(urlField) + m.input.View() + "\n\n")

	for i, a := range Actions() {
		style := buttonStyle
		if m.cursor == urlField+1+i {
			style = activeButton
		}
		b.WriteString(style.Render(a.String()) + "\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move • space toggle • a all/none • enter run • q quit") + "\n")
	return b.String()
}

func (m panelModel) pointer(i int) string {
	if m.cursor == i {
		return focusStyle.Render("> ")
	}
	return "  "
}

func (m panelModel) highlight(i int, s string) string {
	if m.cursor == i {
		return focusStyle.Render(s)
	}
	return s
}

// Result extracts the outcome from a model returned by a finished program.
func Result(model tea.Model) PanelResult {
	m, ok := model.(panelModel)
	if !ok {
		return PanelResult{}
	}
	return PanelResult{Action: m.action, State: m.state()}
}

// RunPanel shows the panel until the user presses a button or quits.
func RunPanel(title, status string, state PanelState, opts ...tea.ProgramOption) (PanelResult, error) {
	final, err := tea.NewProgram(NewPanelModel(title, status, state), opts...).Run()
	if err != nil {
		return PanelResult{State: state}, fmt.Errorf("running panel: %w", err)
	}
	return Result(final), nil
}
