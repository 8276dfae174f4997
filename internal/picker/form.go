package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AddressForm prompts for a catalog address to insert programmatically,
// validated against the currently available address set.
type AddressForm struct {
	input textinput.Model
	valid map[string]struct{}
	err   string
}

// NewAddressForm builds the form over the supplied addresses.
func NewAddressForm(addresses []string) *AddressForm {
	ti := textinput.New()
	ti.Placeholder = "section.field"
	ti.CharLimit = 128
	ti.Focus()
	valid := make(map[string]struct{}, len(addresses))
	for _, addr := range addresses {
		valid[addr] = struct{}{}
	}
	return &AddressForm{input: ti, valid: valid}
}

func (f *AddressForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *AddressForm) InputView() string { return f.input.View() }
func (f *AddressForm) Error() string     { return f.err }
func (f *AddressForm) Title() string     { return "Insert by address" }
func (f *AddressForm) Help() string      { return "Press Enter to insert. Esc to cancel." }

// Update routes a message to the form. The booleans report completion and
// cancellation respectively; on completion Value holds a known address.
func (f *AddressForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = ""
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" {
				return nil, false, true
			}
			if _, ok := f.valid[value]; !ok {
				f.err = fmt.Sprintf("unknown address %q", value)
				return nil, false, false
			}
			f.err = ""
			return nil, true, false
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd, false, false
}
