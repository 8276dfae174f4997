package ui

import (
	"fmt"

	"github.com/calebmor/varmenu/internal/logging/events"
	"github.com/calebmor/varmenu/internal/picker"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Type == tea.KeyCtrlC {
		m.Destroy()
		return tea.Quit
	}
	if m.picker.IsOpen() {
		return m.handleMenuKey(key)
	}
	switch key.Type {
	case tea.KeyTab:
		m.toggleZone()
		return nil
	case tea.KeyCtrlO:
		m.startAddressForm()
		return nil
	case tea.KeyEsc:
		m.Destroy()
		return tea.Quit
	}
	if m.zone == zoneTrigger {
		return m.handleTriggerKey(key)
	}
	return m.handleEditorKey(key)
}

// handleMenuKey covers the open-menu state. Unbound keys are ignored so the
// menu never leaks keystrokes into the buffer underneath.
func (m *Model) handleMenuKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		m.closeMenu()
	case tea.KeyEnter:
		m.commitFocused()
	case tea.KeyUp:
		m.picker.FocusPrev()
	case tea.KeyDown:
		m.picker.FocusNext()
	case tea.KeyHome:
		m.picker.FocusFirst()
	case tea.KeyEnd:
		m.picker.FocusLast()
	}
	return nil
}

func (m *Model) handleTriggerKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter, tea.KeySpace, tea.KeyDown:
		m.openMenu()
	case tea.KeyRunes:
		if string(key.Runes) == "q" {
			m.Destroy()
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) handleEditorKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyRunes:
		m.editor.InsertText(string(key.Runes))
	case tea.KeySpace:
		m.editor.InsertRune(' ')
	case tea.KeyBackspace:
		m.editor.Backspace()
	case tea.KeyLeft:
		m.editor.MoveLeft()
	case tea.KeyRight:
		m.editor.MoveRight()
	case tea.KeyHome:
		m.editor.MoveHome()
	case tea.KeyEnd:
		m.editor.MoveEnd()
	}
	return nil
}

func (m *Model) toggleZone() {
	if m.zone == zoneEditor {
		m.focusTrigger()
	} else {
		m.focusEditor()
	}
}

func (m *Model) focusEditor() {
	m.zone = zoneEditor
	m.editor.Focus()
	events.UI.FocusZone("editor")
}

func (m *Model) focusTrigger() {
	m.zone = zoneTrigger
	m.editor.Blur()
	events.UI.FocusZone("trigger")
}

func (m *Model) openMenu() {
	m.errMsg = ""
	m.menuOffset = 0
	m.picker.Open()
}

func (m *Model) closeMenu() {
	m.picker.Close()
	m.focusTrigger()
}

// commitFocused applies the focused item. With an empty menu the commit
// degrades to a no-op and the menu stays open.
func (m *Model) commitFocused() {
	item, ok := m.picker.Focused()
	if !ok {
		return
	}
	_, applied := m.picker.Commit()
	if applied && m.verbose {
		m.setInfo(fmt.Sprintf("Inserted %s", item.Address))
	}
	if m.picker.CommitFocusBuffer() {
		m.focusEditor()
	} else {
		m.focusTrigger()
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.mode == ModeAddressForm {
		return nil
	}
	if m.picker.IsOpen() {
		if index, ok := m.menuItemAt(mouse.Y); ok {
			m.picker.FocusAt(index)
			m.commitFocused()
			return nil
		}
		// Header rows are part of the menu surface; presses on them do
		// nothing. A press anywhere else, the trigger included, dismisses
		// the menu.
		if m.withinMenu(mouse.Y) {
			return nil
		}
		if mouse.Y == m.triggerLine {
			m.closeMenu()
		} else {
			m.picker.PointerOutside()
			m.focusTrigger()
		}
		return nil
	}
	switch mouse.Y {
	case m.triggerLine:
		m.focusTrigger()
		m.openMenu()
	case m.editorLine:
		m.focusEditor()
	}
	return nil
}

func (m *Model) withinMenu(y int) bool {
	return m.menuTop >= 0 && y >= m.menuTop && y < m.menuTop+len(m.menuRowItem)
}

// menuItemAt maps a screen row to a display index. Header rows and rows
// scrolled out of the viewport report no item.
func (m *Model) menuItemAt(y int) (int, bool) {
	if m.menuTop < 0 || y < m.menuTop {
		return 0, false
	}
	offset := y - m.menuTop
	if offset >= len(m.menuRowItem) {
		return 0, false
	}
	index := m.menuRowItem[offset]
	if index < 0 {
		return 0, false
	}
	return index, true
}

func (m *Model) startAddressForm() {
	if m.picker.IsOpen() {
		m.closeMenu()
	}
	m.form = picker.NewAddressForm(m.picker.Addresses())
	m.mode = ModeAddressForm
	m.editor.Blur()
}

func (m *Model) dismissAddressForm() {
	m.form = nil
	m.mode = ModeEdit
	m.focusEditor()
}

// handleAddressForm routes messages while the address prompt owns input.
// Window resizes still fall through to the regular handlers.
func (m *Model) handleAddressForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeEdit
		return false, nil
	}
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		return false, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		m.Destroy()
		return true, tea.Quit
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		m.dismissAddressForm()
		return true, cmd
	}
	if done {
		address := m.form.Value()
		m.dismissAddressForm()
		if m.picker.Insert(address) && m.verbose {
			m.setInfo(fmt.Sprintf("Inserted %s", address))
		}
	}
	return true, cmd
}
