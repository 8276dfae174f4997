package catalog

import "strings"

// Group identifies the nearest enclosing internal ancestor of an item. It is
// used purely for menu layout.
type Group struct {
	Address string
	Title   string
}

// Item is a flattened, selectable representation of a catalog node. Items are
// immutable once produced; a catalog replacement invalidates them wholesale.
type Item struct {
	Address     string
	Title       string
	Description string
	Group       *Group
}

// Flatten walks the catalog depth-first in declaration order and returns the
// addressable items. Leaves are always emitted; internal nodes are emitted
// only when includeParents is set, immediately before their descendants, and
// carry the group passed down from their own parent. The input is never
// mutated, so identical input always yields identical output.
func Flatten(cat Catalog, includeParents bool) []Item {
	items := make([]Item, 0, len(cat))
	var walk func(prefix string, entries []Entry, group *Group)
	walk = func(prefix string, entries []Entry, group *Group) {
		for _, entry := range entries {
			address := entry.Key
			if prefix != "" {
				address = prefix + "." + entry.Key
			}
			node := entry.Node
			if node.Leaf() {
				items = append(items, Item{
					Address:     address,
					Title:       node.Title,
					Description: node.Description,
					Group:       group,
				})
				continue
			}
			if includeParents {
				items = append(items, Item{
					Address:     address,
					Title:       node.Title,
					Description: node.Description,
					Group:       group,
				})
			}
			walk(address, node.Children, &Group{Address: address, Title: node.Title})
		}
	}
	walk("", cat, nil)
	return items
}

// Addresses projects items to their address strings in flatten order.
func Addresses(items []Item) []string {
	addresses := make([]string, len(items))
	for i, item := range items {
		addresses[i] = item.Address
	}
	return addresses
}

// SplitAddress returns the key sequence of a dot-joined address.
func SplitAddress(address string) []string {
	if address == "" {
		return nil
	}
	return strings.Split(address, ".")
}
