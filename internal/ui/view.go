package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/calebmor/varmenu/internal/picker"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeAddressForm && m.form != nil {
		return m.viewAddressForm()
	}
	return m.viewMain()
}

func (m *Model) viewMain() string {
	m.editorLine = -1
	m.triggerLine = -1
	m.menuTop = -1
	m.menuRowItem = nil

	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: headerTitle, style: styles.Header})
	lines = append(lines, styledLine{})

	m.editorLine = len(lines)
	lines = append(lines, m.editorViewLine())
	lines = append(lines, styledLine{})

	m.triggerLine = len(lines)
	lines = append(lines, m.triggerViewLine())

	if m.picker.IsOpen() {
		m.menuTop = len(lines)
		lines = append(lines, m.menuViewLines()...)
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerHint(), style: styles.Footer})
	}

	// Reserve one row for the bottom status line.
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{statusLine}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) viewAddressForm() string {
	m.editorLine = -1
	m.triggerLine = -1
	m.menuTop = -1
	m.menuRowItem = nil

	lines := make([]styledLine, 0, 8)
	lines = append(lines, styledLine{text: headerTitle, style: styles.Header})
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.form.Title(), style: styles.Header})
	lines = append(lines, styledLine{text: m.form.InputView(), raw: true})
	if errText := m.form.Error(); errText != "" {
		lines = append(lines, styledLine{text: errText, style: styles.Error})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.form.Help(), style: styles.Info})
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// editorViewLine renders the buffer with an inverse-video cursor cell while
// the editor holds focus.
func (m *Model) editorViewLine() styledLine {
	const prompt = "> "
	value := []rune(m.editor.Value())
	if m.zone != zoneEditor {
		return styledLine{text: prompt + string(value), style: styles.Editor}
	}
	cur := m.editor.CursorIndex()
	if cur > len(value) {
		cur = len(value)
	}
	head := styles.Editor.Render(prompt + string(value[:cur]))
	cell := " "
	tail := ""
	if cur < len(value) {
		cell = string(value[cur])
		tail = styles.Editor.Render(string(value[cur+1:]))
	}
	return styledLine{text: head + styles.EditorCursor.Render(cell) + tail, raw: true}
}

func (m *Model) triggerViewLine() styledLine {
	label := fmt.Sprintf("[ %s ▾ ]", m.picker.Label())
	style := styles.Trigger
	if m.zone == zoneTrigger || m.picker.IsOpen() {
		style = styles.TriggerFocused
	}
	return styledLine{text: label, style: style}
}

func (m *Model) menuViewLines() []styledLine {
	rows := m.picker.Rows()
	if len(rows) == 0 {
		m.menuRowItem = []int{-1}
		return []styledLine{{text: "(no variables)", style: styles.Info}}
	}
	visible := m.visibleMenuRows(rows)
	lines := make([]styledLine, 0, len(visible))
	m.menuRowItem = make([]int, 0, len(visible))
	for _, row := range visible {
		m.menuRowItem = append(m.menuRowItem, row.ItemIndex)
		if row.Header {
			lines = append(lines, styledLine{text: "  " + row.Title, style: styles.GroupHeader})
			continue
		}
		lines = append(lines, m.buildItemLine(row))
	}
	return lines
}

// visibleMenuRows windows the menu rows so the focused row is always on
// screen, nudging the viewport offset as little as possible.
func (m *Model) visibleMenuRows(rows []picker.Row) []picker.Row {
	maxRows := m.maxVisibleMenuRows()
	if maxRows <= 0 || len(rows) <= maxRows {
		m.menuOffset = 0
		return rows
	}
	if focusRow := m.focusedRowIndex(rows); focusRow >= 0 {
		if focusRow < m.menuOffset {
			m.menuOffset = focusRow
		}
		if focusRow >= m.menuOffset+maxRows {
			m.menuOffset = focusRow - maxRows + 1
		}
	}
	if m.menuOffset > len(rows)-maxRows {
		m.menuOffset = len(rows) - maxRows
	}
	if m.menuOffset < 0 {
		m.menuOffset = 0
	}
	return rows[m.menuOffset : m.menuOffset+maxRows]
}

func (m *Model) focusedRowIndex(rows []picker.Row) int {
	focus := m.picker.FocusIndex()
	if focus < 0 {
		return -1
	}
	for i, row := range rows {
		if !row.Header && row.ItemIndex == focus {
			return i
		}
	}
	return -1
}

func (m *Model) maxVisibleMenuRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 6 // header, two blanks, editor, trigger, status row
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// buildItemLine constructs a single styledLine for a menu item. The text is
// padded so the focused item's background spans the full width.
func (m *Model) buildItemLine(row picker.Row) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if row.ItemIndex == m.picker.FocusIndex() {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	text := indicator + " " + row.Item.Title
	if row.Item.Description != "" {
		text += "  " + row.Item.Description
	}
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) footerHint() string {
	if m.picker.IsOpen() {
		return "↑/↓ move  enter insert  home/end jump  esc close"
	}
	if m.zone == zoneTrigger {
		return "enter open  tab buffer  ctrl+o address  esc quit"
	}
	return "tab trigger  ctrl+o address  esc quit"
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
