package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Node is a single entry in the hierarchical variable catalog. A node with no
// children is a leaf; any other node is internal and acts as the group for
// the entries beneath it.
type Node struct {
	Title       string
	Description string
	Children    []Entry
}

// Entry pairs a mapping key with its node. Catalogs keep entries as slices
// rather than maps so the declaration order of the source document survives
// all the way to the rendered menu.
type Entry struct {
	Key  string
	Node Node
}

// Catalog is a forest of named variable trees in declaration order.
type Catalog []Entry

// Leaf reports whether the node has no children.
func (n Node) Leaf() bool {
	return len(n.Children) == 0
}

// Load reads and parses a catalog file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

// ParseYAML decodes a catalog document. The document is walked as a yaml.Node
// tree instead of being unmarshalled into maps so that mapping key order is
// preserved.
func ParseYAML(data []byte) (Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Catalog{}, nil
		}
		root = resolveAlias(root.Content[0])
	}
	if root.Kind == 0 || root.IsZero() {
		return Catalog{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalog root must be a mapping, got %s", kindName(root.Kind))
	}
	return parseForest(root)
}

func parseForest(mapping *yaml.Node) (Catalog, error) {
	cat := make(Catalog, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		node, err := parseNode(resolveAlias(mapping.Content[i+1]), key)
		if err != nil {
			return nil, err
		}
		cat = append(cat, Entry{Key: key, Node: node})
	}
	return cat, nil
}

func parseNode(value *yaml.Node, key string) (Node, error) {
	if value.Kind != yaml.MappingNode {
		return Node{}, fmt.Errorf("entry %q must be a mapping, got %s", key, kindName(value.Kind))
	}
	var node Node
	for i := 0; i+1 < len(value.Content); i += 2 {
		field := value.Content[i].Value
		fieldValue := resolveAlias(value.Content[i+1])
		switch field {
		case "title":
			node.Title = fieldValue.Value
		case "description":
			node.Description = fieldValue.Value
		case "children":
			// A non-mapping or empty children value is tolerated: the node
			// simply stays a leaf.
			if fieldValue.Kind != yaml.MappingNode {
				continue
			}
			children, err := parseForest(fieldValue)
			if err != nil {
				return Node{}, err
			}
			node.Children = children
		}
	}
	if node.Title == "" {
		return Node{}, fmt.Errorf("entry %q is missing a title", key)
	}
	return node, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
