package usecase

import "github.com/dishdecider/backend/internal/domain"

// ResolveDishes walks each path into the tree and collects the dishes found
// there. A path that leaves the tree contributes nothing. Results keep path
// order and are not de-duplicated across paths.
func ResolveDishes(tree *domain.CategoryNode, paths []domain.SelectionPath) []domain.MenuItem {
	items := []domain.MenuItem{}
	if tree == nil {
		return items
	}
	for _, p := range paths {
		v, ok := SafeGet(tree, p)
		if !ok {
			continue
		}
		node, ok := v.(*domain.CategoryNode)
		if !ok {
			continue
		}
		items = append(items, firstItems(node)...)
	}
	return items
}

// firstItems returns the node's own items, or else the first non-empty
// items list below it, depth-first in child order.
func firstItems(node *domain.CategoryNode) []domain.MenuItem {
	if node == nil {
		return nil
	}
	if len(node.Items) > 0 {
		return node.Items
	}
	for _, label := range node.ChildLabels() {
		if items := firstItems(node.Children[label]); len(items) > 0 {
			return items
		}
	}
	return nil
}
