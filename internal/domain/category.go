package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Keys used by the wire shape of the category tree and map
const (
	ItemsKey         = "items"
	NamesKey         = "names"
	SubcategoriesKey = "subcategories"
)

// Keyed is implemented by nested structures that can be traversed one key at a time
type Keyed interface {
	Lookup(key string) (any, bool)
}

// CategoryNode is one node of the category tree. Children are keyed by
// label; Items holds the dishes filed at exactly this depth.
type CategoryNode struct {
	Children map[string]*CategoryNode
	Order    []string // child labels in first-seen order
	Items    []MenuItem
}

// NewCategoryNode creates an empty node
func NewCategoryNode() *CategoryNode {
	return &CategoryNode{Children: make(map[string]*CategoryNode)}
}

// Child returns the child for label, if any
func (n *CategoryNode) Child(label string) (*CategoryNode, bool) {
	if n == nil {
		return nil, false
	}
	child, ok := n.Children[label]
	return child, ok
}

// ChildOrCreate returns the child for label, creating it when absent
func (n *CategoryNode) ChildOrCreate(label string) *CategoryNode {
	if n.Children == nil {
		n.Children = make(map[string]*CategoryNode)
	}
	if child, ok := n.Children[label]; ok {
		return child
	}
	child := NewCategoryNode()
	n.Children[label] = child
	n.Order = append(n.Order, label)
	return child
}

// IsLeaf reports whether the node has no subcategories
func (n *CategoryNode) IsLeaf() bool {
	return n == nil || len(n.Children) == 0
}

// Lookup resolves a child label first, then the items list.
func (n *CategoryNode) Lookup(key string) (any, bool) {
	if n == nil {
		return nil, false
	}
	if child, ok := n.Children[key]; ok {
		return child, true
	}
	if key == ItemsKey && n.Items != nil {
		return n.Items, true
	}
	return nil, false
}

// ChildLabels returns child labels in first-seen order, followed by any
// children missing from Order in sorted order.
func (n *CategoryNode) ChildLabels() []string {
	if n == nil {
		return nil
	}
	labels := make([]string, 0, len(n.Children))
	seen := make(map[string]bool, len(n.Children))
	for _, label := range n.Order {
		if _, ok := n.Children[label]; ok && !seen[label] {
			labels = append(labels, label)
			seen[label] = true
		}
	}
	var extra []string
	for label := range n.Children {
		if !seen[label] {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	return append(labels, extra...)
}

// MarshalJSON writes the node as an object of child labels plus an
// optional "items" array, keeping child order.
func (n *CategoryNode) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeKey := func(key string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		return nil
	}

	for _, label := range n.ChildLabels() {
		if err := writeKey(label); err != nil {
			return nil, err
		}
		child, err := n.Children[label].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(child)
	}

	if n.Items != nil {
		if err := writeKey(ItemsKey); err != nil {
			return nil, err
		}
		items, err := json.Marshal(n.Items)
		if err != nil {
			return nil, err
		}
		buf.Write(items)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the wire shape written by MarshalJSON. Key order is
// preserved so item resolution stays deterministic.
func (n *CategoryNode) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: category node must be an object", ErrInvalidInput)
	}

	n.Children = make(map[string]*CategoryNode)
	n.Order = nil
	n.Items = nil

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: category key must be a string", ErrInvalidInput)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		trimmed := bytes.TrimSpace(raw)

		if key == ItemsKey && len(trimmed) > 0 && trimmed[0] == '[' {
			var items []MenuItem
			if err := json.Unmarshal(trimmed, &items); err != nil {
				return fmt.Errorf("%w: items: %v", ErrInvalidInput, err)
			}
			n.Items = items
			continue
		}
		if bytes.Equal(trimmed, []byte("null")) {
			continue
		}

		child := &CategoryNode{}
		if err := json.Unmarshal(trimmed, child); err != nil {
			return err
		}
		if _, exists := n.Children[key]; !exists {
			n.Order = append(n.Order, key)
		}
		n.Children[key] = child
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// CategoryMap mirrors the category tree with labels only
type CategoryMap struct {
	Names         []string         `json:"names"`
	Subcategories SubcategoryIndex `json:"subcategories"`
}

// SubcategoryIndex maps a label to its sub-map
type SubcategoryIndex map[string]*CategoryMap

// NewCategoryMap creates an empty map node
func NewCategoryMap() *CategoryMap {
	return &CategoryMap{
		Names:         []string{},
		Subcategories: make(SubcategoryIndex),
	}
}

// Lookup exposes "names" and "subcategories"
func (m *CategoryMap) Lookup(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	switch key {
	case NamesKey:
		return m.Names, true
	case SubcategoriesKey:
		return m.Subcategories, true
	}
	return nil, false
}

// Lookup returns the sub-map for label
func (s SubcategoryIndex) Lookup(key string) (any, bool) {
	child, ok := s[key]
	if !ok || child == nil {
		return nil, false
	}
	return child, true
}

// ChildLabels returns Names followed by any subcategory keys missing from
// Names, sorted.
func (m *CategoryMap) ChildLabels() []string {
	if m == nil {
		return nil
	}
	labels := make([]string, 0, len(m.Subcategories))
	seen := make(map[string]bool, len(m.Subcategories))
	for _, label := range m.Names {
		if _, ok := m.Subcategories[label]; ok && !seen[label] {
			labels = append(labels, label)
			seen[label] = true
		}
	}
	var extra []string
	for label := range m.Subcategories {
		if !seen[label] {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	return append(labels, extra...)
}

// HasName reports whether label is one of this node's names
func (m *CategoryMap) HasName(label string) bool {
	if m == nil {
		return false
	}
	for _, name := range m.Names {
		if name == label {
			return true
		}
	}
	return false
}

// FullMap bundles the tree and map built from one menu
type FullMap struct {
	Categories  *CategoryNode `json:"categories"`
	CategoryMap *CategoryMap  `json:"categoryMap"`
}
