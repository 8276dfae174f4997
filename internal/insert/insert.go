// Package insert computes and applies buffer mutations for a formatted
// token: where the text lands, what spacing it needs, and where the caret
// ends up.
package insert

import (
	"github.com/calebmor/varmenu/internal/buffer"
	"github.com/calebmor/varmenu/internal/logging/events"
)

// Plan is the outcome of an applied insertion.
type Plan struct {
	Text        string
	CursorAfter int
}

// PlanText applies the adjacency spacing heuristic: a leading space when the
// preceding character would visually glue to the token, a trailing space when
// the following character would. The character classes are deliberately
// simple (ASCII word characters plus the adjacent brace) and must stay that
// way for output compatibility.
func PlanText(formatted, preceding, following string) string {
	text := formatted
	if matchesClass(preceding, '}') {
		text = " " + text
	}
	if matchesClass(following, '{') {
		text += " "
	}
	return text
}

// matchesClass reports whether s starts with an ASCII word character or the
// given brace.
func matchesClass(s string, brace rune) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	case r == brace:
		return true
	}
	return false
}

// Apply inserts formatted text at the host selection. When the host reports
// no active selection it makes one focus-and-retry recovery attempt and then
// gives up without mutating anything; insertion while the document has no
// focus must never crash the host. The selected range is deleted first, then
// the spaced text is inserted and the selection collapses after it.
func Apply(s buffer.Surface, formatted string) (Plan, bool) {
	sel, ok := s.Selection()
	if !ok {
		s.Focus()
		sel, ok = s.Selection()
		if !ok {
			events.Insert.NoSelection()
			return Plan{}, false
		}
		events.Insert.Recovered(sel.Index)
	}

	if sel.Length > 0 {
		s.Delete(sel.Index, sel.Length)
	}

	preceding := ""
	if sel.Index > 0 {
		preceding = s.Text(sel.Index-1, 1)
	}
	following := s.Text(sel.Index, 1)

	text := PlanText(formatted, preceding, following)
	s.Insert(sel.Index, text)
	cursor := sel.Index + len([]rune(text))
	s.SetSelection(cursor, 0)
	return Plan{Text: text, CursorAfter: cursor}, true
}
