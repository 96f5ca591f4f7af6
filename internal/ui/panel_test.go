package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitykit-labs/unitykit/internal/folders"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = runes(" ")
)

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPanel_DefaultsToAllFolders(t *testing.T) {
	m := NewPanelModel("Unity Tools", "", PanelState{})
	res := Result(m)
	assert.Equal(t, ActionNone, res.Action)
	assert.Len(t, res.State.Folders.Enabled(), len(folders.Categories()))
	assert.Empty(t, res.State.RemoteURL)
}

func TestPanel_ToggleCategory(t *testing.T) {
	m := NewPanelModel("Unity Tools", "", PanelState{})

	// Music is the third toggle.
	m, cmd := send(t, m, keyDown, keyDown, keySpace)
	assert.Nil(t, cmd)

	sel := Result(m).State.Folders
	assert.False(t, sel[folders.Music])
	assert.True(t, sel[folders.Scripts])
	assert.True(t, sel[folders.Editor])
}

func TestPanel_ToggleAll(t *testing.T) {
	m := NewPanelModel("Unity Tools", "", PanelState{})

	m, _ = send(t, m, runes("a"))
	assert.Empty(t, Result(m).State.Folders.Enabled())

	m, _ = send(t, m, runes("a"))
	assert.Len(t, Result(m).State.Folders.Enabled(), len(folders.Categories()))
}

func TestPanel_DoesNotMutateInputState(t *testing.T) {
	in := PanelState{Folders: folders.All()}
	m := NewPanelModel("Unity Tools", "", in)
	send(t, m, keySpace)
	assert.True(t, in.Folders[folders.Scripts])
}

func TestPanel_TypeRemoteURL(t *testing.T) {
	m := NewPanelModel("Unity Tools", "", PanelState{})

	// The URL field sits right after the toggles.
	for range folders.Categories() {
		m, _ = send(t, m, keyDown)
	}
	m, _ = send(t, m, runes("https://example.com/r.git"))

	assert.Equal(t, "https://example.com/r.git", Result(m).State.RemoteURL)

	// "q" inside the field is text, not quit.
	m, cmd := send(t, m, runes("q"))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "https://example.com/r.gitq", Result(m).State.RemoteURL)
}

func TestPanel_PressButtons(t *testing.T) {
	for i, action := range Actions() {
		t.Run(action.String(), func(t *testing.T) {
			m := NewPanelModel("Unity Tools", "", PanelState{RemoteURL: "git@example.com:r.git"})

			steps := len(folders.Categories()) + 1 + i
			for j := 0; j < steps; j++ {
				m, _ = send(t, m, keyDown)
			}
			m, cmd := send(t, m, keyEnter)
			require.True(t, isQuit(cmd))

			res := Result(m)
			assert.Equal(t, action, res.Action)
			assert.Equal(t, "git@example.com:r.git", res.State.RemoteURL)
			assert.Empty(t, m.View())
		})
	}
}

func TestPanel_WrapsAround(t *testing.T) {
	m := NewPanelModel("Unity Tools", "", PanelState{})
	m, cmd := send(t, m, keyUp, keyEnter)
	require.True(t, isQuit(cmd))
	assert.Equal(t, ActionResolvePackages, Result(m).Action)
}

func TestPanel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := NewPanelModel("Unity Tools", "", PanelState{})
		m, cmd := send(t, m, msg)
		assert.True(t, isQuit(cmd), msg.String())
		assert.Equal(t, ActionNone, Result(m).Action)
	}
}

func TestPanel_View(t *testing.T) {
	m := NewPanelModel("Unity Tools", "Selected folders created.", PanelState{})
	view := m.View()

	assert.Contains(t, view, "Unity Tools")
	assert.Contains(t, view, "Selected folders created.")
	assert.Contains(t, view, "Scripts")
	assert.Contains(t, view, "Remote Repository URL")
	for _, a := range Actions() {
		assert.Contains(t, view, a.String())
	}
}
