package rtree

import "github.com/maja42/vmath"

// Tree is a two-dimensional R-tree. The zero value is not usable; call
// New. A Tree owns its entire node arena; item payloads are borrowed
// for as long as they remain stored.
type Tree struct {
	maxEntries, minEntries int
	root                   *node
}

// New creates an empty Tree. maxEntries is the branching factor M;
// values <= 0 default to 9, and the effective value is clamped to at
// least 4 so the split heuristics stay well-defined.
func New(maxEntries int) *Tree {
	if maxEntries <= 0 {
		maxEntries = 9
	}
	maxEntries = vmath.Maxi(4, maxEntries)

	t := &Tree{
		maxEntries: maxEntries,
		minEntries: vmath.Maxi(2, int(vmath.Ceil(float32(maxEntries)*0.4))),
	}
	t.Clear()
	return t
}

// Clear resets the tree to empty, releasing all node storage.
func (t *Tree) Clear() *Tree {
	t.root = newNode()
	return t
}

// Destroy releases all engine-owned storage. Calling any method on t
// afterwards is undefined (the root is nil, so it will panic cheaply
// on the first dereference rather than silently misbehave).
func (t *Tree) Destroy() {
	t.root = nil
}

// Insert adds a single item. Bounding rectangles from the root to the
// new leaf are expanded as needed, and a split may cascade upward.
func (t *Tree) Insert(item *Item) *Tree {
	bbox := item.bounds()
	level := t.root.height - 1

	leafNode, insertPath := t.chooseSubtree(bbox, t.root, level)
	leafNode.items = append(leafNode.items, item)
	extend(&leafNode.bounds, bbox)

	t.adjustParentBBoxes(insertPath, bbox, level)
	t.splitNodes(insertPath, level)
	return t
}

// Load bulk-loads items via STR packing if the batch is large enough
// to justify it (batch size >= minEntries); otherwise it falls back to
// inserting items one-by-one. The freshly built subtree is then merged
// into the existing tree, growing it rather than discarding prior
// contents.
func (t *Tree) Load(items []*Item) *Tree {
	if len(items) < t.minEntries {
		for _, item := range items {
			t.Insert(item)
		}
		return t
	}

	newTree := t.build(items, 0, len(items)-1, 0)
	t.reinsertSubtree(newTree)
	return t
}

// LoadHybrid is Load's flat-buffer entry point: flat holds 4*len(items)
// coordinates laid out [minX0,minY0,maxX0,maxY0, minX1, ...], parallel
// to items. The bulk loader reads sort keys directly from flat by
// index, never through items, so the host never pays for per-item
// attribute lookups across its own boundary.
func (t *Tree) LoadHybrid(flat []float32, items []*Item) *Tree {
	if len(flat) != 4*len(items) {
		panic("rtree: LoadHybrid: flat must have length 4*len(items)")
	}

	if len(items) < t.minEntries {
		for _, item := range items {
			t.Insert(item)
		}
		return t
	}

	newTree := t.buildHybrid(flat, items, 0, len(items)-1, 0)
	t.reinsertSubtree(newTree)
	return t
}

// Remove locates the leaf containing an item identical (by pointer) to
// item and removes it, triggering condensation. It is a silent no-op
// if no such item exists.
func (t *Tree) Remove(item *Item) *Tree {
	bbox := item.bounds()

	var path []*node
	var childIndexes []int
	var parent *node
	var childIdx int

	goingUp := false

	nod := t.root
	for nod != nil || len(path) > 0 {
		if nod == nil {
			nod = popNode(&path)
			parent = t.root
			if len(path) > 1 {
				parent = path[len(path)-1]
			}
			childIdx = popInt(&childIndexes)
			goingUp = true
		}

		if nod.leaf {
			if removeChildItem(nod, item) {
				t.condense(append(path, nod))
				return t
			}
		}

		contained := nod.bounds.ContainsRectf(bbox)
		if !goingUp && !nod.leaf && contained {
			path = append(path, nod)
			childIndexes = append(childIndexes, childIdx)
			childIdx = 0
			parent = nod
			nod = nod.children[0]
		} else if parent != nil {
			nod = nil
			childIdx++
			if childIdx < len(parent.children) {
				nod = parent.children[childIdx]
			}
			goingUp = false
		} else {
			nod = nil
		}
	}
	return t
}

// insertNode inserts a subtree (not a single item) at the given level,
// used by bulk-load merging (Load/LoadHybrid) and by condense's
// height-aware reinsertion.
func (t *Tree) insertNode(n *node, level int) {
	bbox := n.bounds

	leafNode, insertPath := t.chooseSubtree(bbox, t.root, level)
	leafNode.children = append(leafNode.children, n)
	extend(&leafNode.bounds, bbox)

	t.adjustParentBBoxes(insertPath, bbox, level)
	t.splitNodes(insertPath, level)
}

// removeChildItem removes a child item from its direct parent by
// pointer identity. Returns true if found and removed.
func removeChildItem(parent *node, child *Item) bool {
	for idx, item := range parent.items {
		if item == child {
			parent.items = append(parent.items[:idx], parent.items[idx+1:]...)
			return true
		}
	}
	return false
}

// removeChildNode removes a child node from its direct parent.
func removeChildNode(parent, child *node) {
	for idx, n := range parent.children {
		if n == child {
			parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
			return
		}
	}
}
