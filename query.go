package rtree

// All returns every stored item. Returns nil for an empty tree.
func (t *Tree) All() []*Item {
	var items []*Item
	addAllItems(t.root, &items)
	return items
}

func addAllItems(root *node, items *[]*Item) {
	nodesToSearch := make([]*node, 1)
	nodesToSearch[0] = root
	for len(nodesToSearch) > 0 {
		n := popNode(&nodesToSearch)
		*items = append(*items, n.items...)
		nodesToSearch = append(nodesToSearch, n.children...)
	}
}

// Search returns every stored item whose bounding rectangle intersects
// r. Intersection is inclusive of touching edges.
func (t *Tree) Search(r Rect) []*Item {
	area := r.toVmath().Normalize()
	if !area.Intersects(t.root.bounds) {
		return nil
	}

	var items []*Item

	nodesToSearch := make([]*node, 1)
	nodesToSearch[0] = t.root
	for len(nodesToSearch) > 0 {
		n := popNode(&nodesToSearch)

		for _, child := range n.children {
			if area.Intersects(child.bounds) {
				nodesToSearch = append(nodesToSearch, child)
			}
		}
		for _, item := range n.items {
			if area.Intersects(item.bounds()) {
				items = append(items, item)
			}
		}
	}
	return items
}

// Collides reports whether any stored item intersects r, short-
// circuiting on the first hit.
func (t *Tree) Collides(r Rect) bool {
	area := r.toVmath().Normalize()
	if !area.Intersects(t.root.bounds) {
		return false
	}

	nodesToSearch := make([]*node, 1)
	nodesToSearch[0] = t.root
	for len(nodesToSearch) > 0 {
		n := popNode(&nodesToSearch)

		for _, item := range n.items {
			if area.Intersects(item.bounds()) {
				return true
			}
		}
		for _, child := range n.children {
			if area.Intersects(child.bounds) {
				nodesToSearch = append(nodesToSearch, child)
			}
		}
	}
	return false
}

// IterateItems calls fn for every stored item until fn returns true
// (abort). Iteration order is undefined.
func (t *Tree) IterateItems(fn func(item *Item) bool) {
	nodesToSearch := make([]*node, 1)
	nodesToSearch[0] = t.root
	for len(nodesToSearch) > 0 {
		n := popNode(&nodesToSearch)

		for _, item := range n.items {
			if fn(item) {
				return
			}
		}
		nodesToSearch = append(nodesToSearch, n.children...)
	}
}

// Height returns the tree's current height (1 for an empty or
// single-level tree).
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height
}

// Bounds returns the bounding rectangle of everything stored in the
// tree. An empty tree returns an infinitely-small/inverted sentinel
// rectangle.
func (t *Tree) Bounds() Rect {
	return fromVmath(t.root.bounds)
}

// Len returns the total number of stored items.
func (t *Tree) Len() int {
	cnt := 0
	nodesToSearch := make([]*node, 1)
	nodesToSearch[0] = t.root
	for len(nodesToSearch) > 0 {
		n := popNode(&nodesToSearch)
		nodesToSearch = append(nodesToSearch, n.children...)
		cnt += len(n.items)
	}
	return cnt
}
