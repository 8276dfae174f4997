// Package picker owns the keyboard-navigable selection state machine: which
// catalog items are selectable, which one holds focus, and how a choice is
// committed into the host buffer.
package picker

import (
	"fmt"

	"github.com/calebmor/varmenu/internal/buffer"
	"github.com/calebmor/varmenu/internal/catalog"
	"github.com/calebmor/varmenu/internal/insert"
	"github.com/calebmor/varmenu/internal/logging/events"
	"github.com/calebmor/varmenu/internal/token"
)

// State is the menu state. There is no terminal state; the component is torn
// down externally via Destroy.
type State int

const (
	Closed State = iota
	Open
)

const defaultLabel = "Insert variable"

// Config describes a picker instance. Surface is required; everything else
// has a default.
type Config struct {
	Catalog        catalog.Catalog
	IncludeParents bool
	Token          token.Policy
	Surface        buffer.Surface
	Label          string
	// CommitFocusBuffer sends focus back to the buffer instead of the
	// trigger after a successful commit. Trigger is the default.
	CommitFocusBuffer bool
}

// Picker manages the open/closed state, the focused item, and commit
// delegation. All methods run synchronously within one input event; a single
// instance owns one trigger, one menu, and one catalog snapshot.
type Picker struct {
	surface           buffer.Surface
	policy            token.Policy
	label             string
	includeParents    bool
	commitFocusBuffer bool

	state     State
	items     []catalog.Item // flatten order
	display   []catalog.Item // layout order, navigation moves over this
	rows      []Row
	focus     int // index into display, -1 when nothing is focused
	destroyed bool
}

// New builds a picker for the supplied catalog. A missing buffer surface is a
// configuration error: construction fails and nothing is initialised.
func New(cfg Config) (*Picker, error) {
	if cfg.Surface == nil {
		return nil, fmt.Errorf("picker: buffer surface is required")
	}
	policy := cfg.Token
	if policy == nil {
		policy = token.Default()
	}
	label := cfg.Label
	if label == "" {
		label = defaultLabel
	}
	p := &Picker{
		surface:           cfg.Surface,
		policy:            policy,
		label:             label,
		includeParents:    cfg.IncludeParents,
		commitFocusBuffer: cfg.CommitFocusBuffer,
		state:             Closed,
		focus:             -1,
	}
	p.setCatalog(cfg.Catalog)
	return p, nil
}

func (p *Picker) setCatalog(cat catalog.Catalog) {
	p.items = catalog.Flatten(cat, p.includeParents)
	p.display, p.rows = layoutRows(p.items)
	p.focus = -1
}

// State returns the current machine state.
func (p *Picker) State() State {
	return p.state
}

// IsOpen reports whether the menu is open.
func (p *Picker) IsOpen() bool {
	return p.state == Open
}

// Label returns the trigger label.
func (p *Picker) Label() string {
	return p.label
}

// CommitFocusBuffer reports where focus should land after a commit.
func (p *Picker) CommitFocusBuffer() bool {
	return p.commitFocusBuffer
}

// ItemCount returns the number of selectable items.
func (p *Picker) ItemCount() int {
	return len(p.display)
}

// Rows returns the display rows for the open menu. Rendering is a pure
// function of the rows and the focus index; nothing here survives a catalog
// replacement.
func (p *Picker) Rows() []Row {
	return p.rows
}

// FocusIndex returns the focused display index, or -1.
func (p *Picker) FocusIndex() int {
	return p.focus
}

// Focused returns the focused item.
func (p *Picker) Focused() (catalog.Item, bool) {
	if p.state != Open || p.focus < 0 || p.focus >= len(p.display) {
		return catalog.Item{}, false
	}
	return p.display[p.focus], true
}

// Open transitions Closed→Open and focuses the first item, if any.
func (p *Picker) Open() {
	if p.destroyed || p.state == Open {
		return
	}
	p.state = Open
	p.focus = -1
	if len(p.display) > 0 {
		p.focus = 0
	}
	events.UI.MenuOpen(len(p.display))
}

// Close transitions Open→Closed. Focus return to the trigger is the
// caller's (host's) side of the contract.
func (p *Picker) Close() {
	p.close("close")
}

func (p *Picker) close(reason string) {
	if p.state != Open {
		return
	}
	p.state = Closed
	p.focus = -1
	events.UI.MenuClose(reason)
}

// PointerOutside handles a pointer activation outside both the trigger and
// the menu surface.
func (p *Picker) PointerOutside() {
	p.close("outside")
}

// FocusNext moves focus to the next item with circular wraparound.
func (p *Picker) FocusNext() {
	p.moveFocus(1)
}

// FocusPrev moves focus to the previous item with circular wraparound.
func (p *Picker) FocusPrev() {
	p.moveFocus(-1)
}

func (p *Picker) moveFocus(delta int) {
	if p.state != Open || len(p.display) == 0 {
		return
	}
	n := len(p.display)
	p.focus = ((p.focus+delta)%n + n) % n
	events.UI.MenuCursor(p.focus, p.display[p.focus].Address)
}

// FocusFirst jumps focus to the first item.
func (p *Picker) FocusFirst() {
	p.focusAt(0)
}

// FocusLast jumps focus to the last item.
func (p *Picker) FocusLast() {
	p.focusAt(len(p.display) - 1)
}

// FocusAt focuses the item at the given display index.
func (p *Picker) FocusAt(index int) {
	p.focusAt(index)
}

func (p *Picker) focusAt(index int) {
	if p.state != Open || len(p.display) == 0 {
		return
	}
	if index < 0 || index >= len(p.display) {
		return
	}
	p.focus = index
	events.UI.MenuCursor(p.focus, p.display[p.focus].Address)
}

// Commit formats the focused item's address and applies the insertion plan.
// A commit always closes the menu, whether or not the insertion could be
// applied. With no focused item it degrades to a no-op and the menu stays
// open.
func (p *Picker) Commit() (insert.Plan, bool) {
	item, ok := p.Focused()
	if !ok {
		return insert.Plan{}, false
	}
	plan, applied := p.apply(item.Address)
	p.close("commit")
	return plan, applied
}

// Insert is the programmatic commit: it bypasses menu interaction entirely
// but reuses the formatter and insertion planner.
func (p *Picker) Insert(address string) bool {
	if p.destroyed {
		return false
	}
	_, applied := p.apply(address)
	return applied
}

func (p *Picker) apply(address string) (insert.Plan, bool) {
	formatted := p.policy.Format(address)
	plan, applied := insert.Apply(p.surface, formatted)
	if applied {
		events.Insert.Planned(address, plan.Text, plan.CursorAfter)
	}
	events.UI.MenuCommit(address, applied)
	return plan, applied
}

// Addresses returns the selectable addresses in flatten order.
func (p *Picker) Addresses() []string {
	return catalog.Addresses(p.items)
}

// UpdateCatalog replaces the catalog wholesale. All previously produced
// items and any in-progress focus are invalidated, so an open menu is forced
// closed rather than re-pointed at a stale list.
func (p *Picker) UpdateCatalog(cat catalog.Catalog) {
	if p.destroyed {
		return
	}
	wasOpen := p.state == Open
	p.setCatalog(cat)
	if wasOpen {
		p.close("catalog-replaced")
	}
	events.Catalog.Replaced(len(p.items), wasOpen)
}

// Destroy releases the picker's references. Safe to call more than once.
func (p *Picker) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.state = Closed
	p.focus = -1
	p.items = nil
	p.display = nil
	p.rows = nil
	p.surface = nil
}

// Destroyed reports whether Destroy has run.
func (p *Picker) Destroyed() bool {
	return p.destroyed
}
