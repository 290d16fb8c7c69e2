package usecase

import "github.com/dishdecider/backend/internal/domain"

// BuildTree files every item under its category levels and builds the
// matching label-only map in the same pass.
//
// Each item is appended to the items list of the node reached by its
// non-empty levels; an item with no levels lands on the root. Child
// names keep first-seen order.
func BuildTree(items []domain.MenuItem) (*domain.CategoryNode, *domain.CategoryMap) {
	root := domain.NewCategoryNode()
	rootMap := domain.NewCategoryMap()

	for _, item := range items {
		node := root
		mapNode := rootMap

		for _, label := range item.Levels() {
			node = node.ChildOrCreate(label)

			if !mapNode.HasName(label) {
				mapNode.Names = append(mapNode.Names, label)
			}
			child, ok := mapNode.Subcategories[label]
			if !ok {
				child = domain.NewCategoryMap()
				mapNode.Subcategories[label] = child
			}
			mapNode = child
		}

		node.Items = append(node.Items, item)
	}

	return root, rootMap
}
