package ui

import (
	"github.com/calebmor/varmenu/internal/catalog"
	"github.com/calebmor/varmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

type catalogEventMsg struct {
	event catalog.Event
}

// waitForCatalogEvent blocks on the watcher channel and resolves to nil once
// the watcher shuts down, which ends the listen loop.
func waitForCatalogEvent(w *catalog.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-w.Events()
		if !ok {
			return nil
		}
		return catalogEventMsg{event: event}
	}
}

func (m *Model) handleCatalogEventMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(catalogEventMsg)
	if !ok {
		return nil
	}
	if update.event.Err != nil {
		m.errMsg = update.event.Err.Error()
		events.Catalog.WatchError(update.event.Err)
	} else {
		m.applyCatalog(update.event.Catalog)
	}
	if m.watcher != nil {
		return waitForCatalogEvent(m.watcher)
	}
	return nil
}

// applyCatalog swaps in a replacement catalog. An open menu is forced closed
// by the picker, so focus is handed back to the trigger; an in-flight address
// prompt is dismissed because its address set is stale.
func (m *Model) applyCatalog(cat catalog.Catalog) {
	wasOpen := m.picker.IsOpen()
	m.picker.UpdateCatalog(cat)
	m.menuOffset = 0
	m.errMsg = ""
	if wasOpen {
		m.focusTrigger()
	}
	if m.mode == ModeAddressForm {
		m.form = nil
		m.mode = ModeEdit
		m.focusEditor()
	}
	if m.verbose {
		m.setInfo("Catalog reloaded.")
	}
}
