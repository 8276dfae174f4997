package picker

import "github.com/calebmor/varmenu/internal/catalog"

// Row is one display line of the open menu: a group header or an item.
// ItemIndex is the display index of the item (-1 for headers).
type Row struct {
	Header    bool
	Title     string
	Item      catalog.Item
	ItemIndex int
}

// layoutRows orders flattened items for display: ungrouped items first, then
// each group in first-discovery order with its items contiguous beneath a
// header row. Within a section items keep the order their leaves were
// discovered in. The returned display slice is the navigation order.
func layoutRows(items []catalog.Item) ([]catalog.Item, []Row) {
	ungrouped := make([]catalog.Item, 0, len(items))
	groupOrder := make([]string, 0)
	groupTitles := make(map[string]string)
	grouped := make(map[string][]catalog.Item)

	for _, item := range items {
		if item.Group == nil {
			ungrouped = append(ungrouped, item)
			continue
		}
		addr := item.Group.Address
		if _, seen := grouped[addr]; !seen {
			groupOrder = append(groupOrder, addr)
			groupTitles[addr] = item.Group.Title
		}
		grouped[addr] = append(grouped[addr], item)
	}

	display := make([]catalog.Item, 0, len(items))
	rows := make([]Row, 0, len(items)+len(groupOrder))

	appendItem := func(item catalog.Item) {
		rows = append(rows, Row{Item: item, ItemIndex: len(display)})
		display = append(display, item)
	}

	for _, item := range ungrouped {
		appendItem(item)
	}
	for _, addr := range groupOrder {
		rows = append(rows, Row{Header: true, Title: groupTitles[addr], ItemIndex: -1})
		for _, item := range grouped[addr] {
			appendItem(item)
		}
	}
	return display, rows
}
