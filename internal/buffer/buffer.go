// Package buffer defines the narrow text-buffer surface the picker core
// consumes, plus an in-memory editor used by the terminal front end and the
// tests. All indices are rune offsets.
package buffer

// Selection describes a caret (Length 0) or selection range in the host
// buffer.
type Selection struct {
	Index  int
	Length int
}

// Surface is the host text-buffer interface. Mutations are committed
// immediately; there is no transaction or rollback.
type Surface interface {
	// Selection returns the current caret/selection, or ok=false when the
	// buffer has no focus.
	Selection() (Selection, bool)
	// Text returns a read-only slice of the buffer contents.
	Text(index, length int) string
	Delete(index, length int)
	Insert(index int, text string)
	SetSelection(index, length int)
	// Focus requests input focus on the buffer.
	Focus()
}

// Editor is a rune-slice Surface implementation with the editing helpers the
// terminal front end needs. Out-of-range arguments clamp rather than panic.
type Editor struct {
	runes   []rune
	sel     Selection
	focused bool
}

// NewEditor creates an editor holding text with the caret at the end.
func NewEditor(text string) *Editor {
	runes := []rune(text)
	return &Editor{
		runes:   runes,
		sel:     Selection{Index: len(runes)},
		focused: true,
	}
}

// Selection implements Surface. The selection is unavailable while the
// editor is blurred.
func (e *Editor) Selection() (Selection, bool) {
	if !e.focused {
		return Selection{}, false
	}
	return e.sel, true
}

// Text implements Surface.
func (e *Editor) Text(index, length int) string {
	start, end := e.clampRange(index, length)
	return string(e.runes[start:end])
}

// Delete implements Surface. The caret collapses to the start of the deleted
// range.
func (e *Editor) Delete(index, length int) {
	start, end := e.clampRange(index, length)
	if start == end {
		return
	}
	e.runes = append(e.runes[:start], e.runes[end:]...)
	e.sel = Selection{Index: start}
}

// Insert implements Surface.
func (e *Editor) Insert(index int, text string) {
	if text == "" {
		return
	}
	at := clamp(index, 0, len(e.runes))
	insert := []rune(text)
	updated := make([]rune, 0, len(e.runes)+len(insert))
	updated = append(updated, e.runes[:at]...)
	updated = append(updated, insert...)
	updated = append(updated, e.runes[at:]...)
	e.runes = updated
	if e.sel.Index >= at {
		e.sel.Index += len(insert)
	}
}

// SetSelection implements Surface.
func (e *Editor) SetSelection(index, length int) {
	start, end := e.clampRange(index, length)
	e.sel = Selection{Index: start, Length: end - start}
}

// Focus implements Surface.
func (e *Editor) Focus() {
	e.focused = true
}

// Blur releases input focus; Selection reports unavailable until Focus is
// called again.
func (e *Editor) Blur() {
	e.focused = false
}

// Focused reports whether the editor holds input focus.
func (e *Editor) Focused() bool {
	return e.focused
}

// Value returns the full buffer contents.
func (e *Editor) Value() string {
	return string(e.runes)
}

// Len returns the buffer length in runes.
func (e *Editor) Len() int {
	return len(e.runes)
}

// CursorIndex returns the caret position (start of the selection).
func (e *Editor) CursorIndex() int {
	return e.sel.Index
}

// InsertRune types a rune at the caret, replacing any active selection.
func (e *Editor) InsertRune(r rune) {
	e.replaceSelection(string(r))
}

// InsertText types text at the caret, replacing any active selection.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}
	e.replaceSelection(text)
}

func (e *Editor) replaceSelection(text string) {
	if e.sel.Length > 0 {
		e.Delete(e.sel.Index, e.sel.Length)
	}
	at := e.sel.Index
	e.Insert(at, text)
	e.sel = Selection{Index: at + len([]rune(text))}
}

// Backspace deletes the active selection, or the rune before the caret.
func (e *Editor) Backspace() {
	if e.sel.Length > 0 {
		e.Delete(e.sel.Index, e.sel.Length)
		return
	}
	if e.sel.Index == 0 {
		return
	}
	e.Delete(e.sel.Index-1, 1)
}

// MoveLeft moves the caret one rune left, collapsing any selection.
func (e *Editor) MoveLeft() {
	if e.sel.Length > 0 {
		e.sel = Selection{Index: e.sel.Index}
		return
	}
	if e.sel.Index > 0 {
		e.sel.Index--
	}
}

// MoveRight moves the caret one rune right, collapsing any selection.
func (e *Editor) MoveRight() {
	if e.sel.Length > 0 {
		e.sel = Selection{Index: e.sel.Index + e.sel.Length}
		return
	}
	if e.sel.Index < len(e.runes) {
		e.sel.Index++
	}
}

// MoveHome moves the caret to the start of the buffer.
func (e *Editor) MoveHome() {
	e.sel = Selection{}
}

// MoveEnd moves the caret to the end of the buffer.
func (e *Editor) MoveEnd() {
	e.sel = Selection{Index: len(e.runes)}
}

func (e *Editor) clampRange(index, length int) (int, int) {
	start := clamp(index, 0, len(e.runes))
	if length < 0 {
		length = 0
	}
	end := clamp(start+length, start, len(e.runes))
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
