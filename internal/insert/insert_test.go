package insert

import (
	"testing"

	"github.com/calebmor/varmenu/internal/buffer"
)

func TestPlanTextSpacing(t *testing.T) {
	cases := []struct {
		name      string
		preceding string
		following string
		want      string
	}{
		{"isolated", "", "", "{{user.name}}"},
		{"after space", " ", "", "{{user.name}}"},
		{"after punctuation", ",", "", "{{user.name}}"},
		{"after word char", "o", "", " {{user.name}}"},
		{"after digit", "7", "", " {{user.name}}"},
		{"after underscore", "_", "", " {{user.name}}"},
		{"after closing brace", "}", "", " {{user.name}}"},
		{"after opening brace", "{", "", "{{user.name}}"},
		{"before word char", "", "w", "{{user.name}} "},
		{"before opening brace", "", "{", "{{user.name}} "},
		{"before closing brace", "", "}", "{{user.name}}"},
		{"both sides", "o", "w", " {{user.name}} "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlanText("{{user.name}}", tc.preceding, tc.following); got != tc.want {
				t.Fatalf("PlanText(%q, %q) = %q, want %q", tc.preceding, tc.following, got, tc.want)
			}
		})
	}
}

func TestApplyAtCaret(t *testing.T) {
	e := buffer.NewEditor("Dear ,")
	e.SetSelection(5, 0)
	plan, applied := Apply(e, "{{user.first_name}}")
	if !applied {
		t.Fatalf("expected insertion to apply")
	}
	if e.Value() != "Dear {{user.first_name}}," {
		t.Fatalf("unexpected buffer: %q", e.Value())
	}
	if plan.Text != "{{user.first_name}}" {
		t.Fatalf("no spacing expected, got %q", plan.Text)
	}
	sel, _ := e.Selection()
	if sel.Index != plan.CursorAfter || sel.Length != 0 {
		t.Fatalf("caret should collapse after the token, plan=%+v sel=%+v", plan, sel)
	}
}

func TestApplyAddsLeadingSpace(t *testing.T) {
	e := buffer.NewEditor("Hello")
	plan, applied := Apply(e, "{{user.name}}")
	if !applied {
		t.Fatalf("expected insertion to apply")
	}
	if e.Value() != "Hello {{user.name}}" {
		t.Fatalf("unexpected buffer: %q", e.Value())
	}
	if plan.CursorAfter != len([]rune("Hello {{user.name}}")) {
		t.Fatalf("unexpected cursor: %d", plan.CursorAfter)
	}
}

func TestApplyAddsTrailingSpace(t *testing.T) {
	e := buffer.NewEditor("world")
	e.SetSelection(0, 0)
	_, applied := Apply(e, "{{greeting}}")
	if !applied {
		t.Fatalf("expected insertion to apply")
	}
	if e.Value() != "{{greeting}} world" {
		t.Fatalf("unexpected buffer: %q", e.Value())
	}
}

func TestApplyReplacesSelection(t *testing.T) {
	e := buffer.NewEditor("Dear name,")
	e.SetSelection(5, 4)
	plan, applied := Apply(e, "{{user.first_name}}")
	if !applied {
		t.Fatalf("expected insertion to apply")
	}
	if e.Value() != "Dear {{user.first_name}}," {
		t.Fatalf("unexpected buffer: %q", e.Value())
	}
	if plan.CursorAfter != 5+len([]rune("{{user.first_name}}")) {
		t.Fatalf("unexpected cursor: %d", plan.CursorAfter)
	}
}

func TestApplyRecoversAfterFocus(t *testing.T) {
	e := buffer.NewEditor("note: ")
	e.Blur()
	_, applied := Apply(e, "{{user.name}}")
	if !applied {
		t.Fatalf("focus-and-retry recovery should succeed against a focusable buffer")
	}
	if e.Value() != "note: {{user.name}}" {
		t.Fatalf("unexpected buffer: %q", e.Value())
	}
}

// deadSurface never yields a selection, even after Focus.
type deadSurface struct {
	focusCalls int
	mutated    bool
}

func (d *deadSurface) Selection() (buffer.Selection, bool) { return buffer.Selection{}, false }
func (d *deadSurface) Text(index, length int) string       { return "" }
func (d *deadSurface) Delete(index, length int)            { d.mutated = true }
func (d *deadSurface) Insert(index int, text string)       { d.mutated = true }
func (d *deadSurface) SetSelection(index, length int)      { d.mutated = true }
func (d *deadSurface) Focus()                              { d.focusCalls++ }

func TestApplyGivesUpAfterOneRetry(t *testing.T) {
	dead := &deadSurface{}
	plan, applied := Apply(dead, "{{user.name}}")
	if applied {
		t.Fatalf("expected no-op against a surface with no selection")
	}
	if dead.focusCalls != 1 {
		t.Fatalf("expected exactly one recovery attempt, got %d", dead.focusCalls)
	}
	if dead.mutated {
		t.Fatalf("failed insertion must not mutate the buffer")
	}
	if plan != (Plan{}) {
		t.Fatalf("failed insertion should yield an empty plan, got %+v", plan)
	}
}

func TestApplyRuneIndices(t *testing.T) {
	e := buffer.NewEditor("héllo ")
	plan, applied := Apply(e, "{{user.name}}")
	if !applied {
		t.Fatalf("expected insertion to apply")
	}
	if e.Value() != "héllo {{user.name}}" {
		t.Fatalf("unexpected buffer: %q", e.Value())
	}
	if plan.CursorAfter != len([]rune(e.Value())) {
		t.Fatalf("cursor must be a rune offset, got %d", plan.CursorAfter)
	}
}
