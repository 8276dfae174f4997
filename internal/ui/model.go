package ui

import (
	"reflect"
	"time"

	"github.com/calebmor/varmenu/internal/buffer"
	"github.com/calebmor/varmenu/internal/catalog"
	"github.com/calebmor/varmenu/internal/picker"
	"github.com/calebmor/varmenu/internal/theme"
	"github.com/calebmor/varmenu/internal/token"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects which input surface owns incoming key messages.
type Mode int

const (
	ModeEdit Mode = iota
	ModeAddressForm
)

type focusZone int

const (
	zoneEditor focusZone = iota
	zoneTrigger
)

const headerTitle = "template variables"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the presentation and policy settings for the UI.
type Options struct {
	InitialText       string
	Token             token.Policy
	IncludeParents    bool
	Width             int
	Height            int
	ShowFooter        bool
	Verbose           bool
	CommitFocusBuffer bool
}

// Model implements the Bubble Tea model for the variable picker.
type Model struct {
	editor *buffer.Editor
	picker *picker.Picker
	form   *picker.AddressForm
	mode   Mode
	zone   focusZone

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	watcher  *catalog.Watcher
	handlers map[reflect.Type]msgHandler

	// View regions recorded during render so mouse presses can be mapped
	// back to what they landed on.
	editorLine  int
	triggerLine int
	menuTop     int
	menuRowItem []int
	menuOffset  int
}

// NewModel initialises the UI with the catalog and configuration.
func NewModel(cat catalog.Catalog, watcher *catalog.Watcher, opts Options) (*Model, error) {
	editor := buffer.NewEditor(opts.InitialText)
	pk, err := picker.New(picker.Config{
		Catalog:           cat,
		IncludeParents:    opts.IncludeParents,
		Token:             opts.Token,
		Surface:           editor,
		CommitFocusBuffer: opts.CommitFocusBuffer,
	})
	if err != nil {
		return nil, err
	}
	m := &Model{
		editor:      editor,
		picker:      pk,
		mode:        ModeEdit,
		zone:        zoneEditor,
		showFooter:  opts.ShowFooter,
		verbose:     opts.Verbose,
		watcher:     watcher,
		editorLine:  -1,
		triggerLine: -1,
		menuTop:     -1,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForCatalogEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == ModeAddressForm {
		if handled, cmd := m.handleAddressForm(msg); handled {
			return m, cmd
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(catalogEventMsg{}):   m.handleCatalogEventMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Destroy releases the picker and detaches the watcher reference. Safe to
// call more than once.
func (m *Model) Destroy() {
	if m.picker != nil {
		m.picker.Destroy()
	}
	m.watcher = nil
	m.form = nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
