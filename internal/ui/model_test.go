package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebmor/varmenu/internal/catalog"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		{Key: "greeting", Node: catalog.Node{Title: "Greeting"}},
		{Key: "user", Node: catalog.Node{Title: "User", Children: []catalog.Entry{
			{Key: "first_name", Node: catalog.Node{Title: "First Name"}},
			{Key: "last_name", Node: catalog.Node{Title: "Last Name"}},
		}}},
	}
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := NewModel(testCatalog(), nil, opts)
	if err != nil {
		t.Fatalf("NewModel returned error: %v", err)
	}
	return m
}

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	return NewHarness(newTestModel(t, opts))
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t, Options{InitialText: "Dear ,"})
	if m.zone != zoneEditor {
		t.Fatalf("editor should hold initial focus")
	}
	if m.picker.IsOpen() {
		t.Fatalf("menu should start closed")
	}
	if m.editor.Value() != "Dear ," {
		t.Fatalf("unexpected initial text: %q", m.editor.Value())
	}
	if !m.editor.Focused() {
		t.Fatalf("editor should be focused at start")
	}
}

func TestInitWithoutWatcher(t *testing.T) {
	m := newTestModel(t, Options{})
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("no watcher means no init command")
	}
}

func TestWindowSizeTracksTerminal(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := h.Model()
	if m.width != 120 || m.height != 40 {
		t.Fatalf("resize not applied: %dx%d", m.width, m.height)
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	h := newTestHarness(t, Options{Width: 80, Height: 24})
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := h.Model()
	if m.width != 80 || m.height != 24 {
		t.Fatalf("fixed dimensions must survive resizes: %dx%d", m.width, m.height)
	}
}

func TestDestroyIdempotent(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Destroy()
	m.Destroy()
	if !m.picker.Destroyed() {
		t.Fatalf("destroy should tear down the picker")
	}
}

func TestCatalogEventReplacesCatalog(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyTab})
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.picker.IsOpen() {
		t.Fatalf("menu should be open before the event")
	}

	fresh := catalog.Catalog{{Key: "fresh", Node: catalog.Node{Title: "Fresh"}}}
	h.Send(catalogEventMsg{event: catalog.Event{Catalog: fresh}})

	m = h.Model()
	if m.picker.IsOpen() {
		t.Fatalf("catalog replacement must force the menu closed")
	}
	if m.zone != zoneTrigger {
		t.Fatalf("focus should return to the trigger after a forced close")
	}
	if got := m.picker.Addresses(); len(got) != 1 || got[0] != "fresh" {
		t.Fatalf("catalog not replaced: %v", got)
	}
}

func TestCatalogEventError(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Send(catalogEventMsg{event: catalog.Event{Err: errFake}})
	if h.Model().errMsg == "" {
		t.Fatalf("watch errors should surface in the status line")
	}
}

type fakeErr struct{}

func (fakeErr) Error() string { return "poll failed" }

var errFake = fakeErr{}

func TestCatalogEventDismissesAddressForm(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.mode != ModeAddressForm {
		t.Fatalf("ctrl+o should open the address prompt")
	}
	h.Send(catalogEventMsg{event: catalog.Event{Catalog: testCatalog()}})
	if h.Model().mode != ModeEdit {
		t.Fatalf("stale address prompt must be dismissed on catalog replacement")
	}
}
