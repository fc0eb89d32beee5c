package rtree

import (
	"sort"

	"github.com/maja42/vmath"
)

// chooseSubtree finds the node best suited for a new entry with the
// given bbox, descending at most to the given level (level == -1 runs
// to the leaves). Returns the found node and the path taken to reach
// it; the path starts at root and ends with the found node itself.
func (t *Tree) chooseSubtree(bbox vmath.Rectf, root *node, level int) (*node, []*node) {
	path := make([]*node, 0)

	subNode := root
	for {
		path = append(path, subNode)

		if subNode.leaf || len(path)-1 == level {
			break
		}

		minArea := vmath.Infinity
		minEnlargement := vmath.Infinity
		var nextSubNode *node

		for _, child := range subNode.children {
			area := child.bounds.Area()
			enlargement := enlargedArea(bbox, child.bounds) - area

			if enlargement < minEnlargement {
				minEnlargement = enlargement
				minArea = vmath.Min(minArea, area)
				nextSubNode = child
				continue
			}
			if enlargement == minEnlargement {
				if area < minArea {
					minArea = area
					nextSubNode = child
				}
			}
		}
		subNode = nextSubNode
	}
	return subNode, path
}

// splitNodes splits every overflowing node along the insertion path,
// walking from level up to the root.
func (t *Tree) splitNodes(insertPath []*node, level int) {
	for level >= 0 {
		entries := len(insertPath[level].children) + len(insertPath[level].items)
		if entries <= t.maxEntries {
			break
		}
		t.split(insertPath, level)
		level--
	}
}

// split divides the overflowing node at insertPath[level] into two
// siblings and links the new sibling into the parent, growing
// the tree's height by one if level is the root.
func (t *Tree) split(insertPath []*node, level int) {
	n := insertPath[level]
	min := t.minEntries
	max := len(n.children) + len(n.items)

	t.chooseSplitAxis(n, min, max)
	splitIndex := t.chooseSplitIndex(n, min, max)

	newN := newNode()
	newN.height = n.height
	newN.leaf = n.leaf

	if n.leaf {
		newN.items = append(newN.items, n.items[splitIndex:]...)
		n.items = n.items[:splitIndex]
	} else {
		newN.children = append(newN.children, n.children[splitIndex:]...)
		n.children = n.children[:splitIndex]
	}

	calcBBox(n)
	calcBBox(newN)

	if level > 0 {
		insertPath[level-1].children = append(insertPath[level-1].children, newN)
	} else {
		t.splitRoot(n, newN)
	}
}

// splitRoot replaces the current root with a fresh interior node
// parenting a and b, growing the tree's height by one.
func (t *Tree) splitRoot(a, b *node) {
	newHeight := t.root.height + 1
	root := newNode()
	root.children = []*node{a, b}
	root.height = newHeight
	root.leaf = false
	calcBBox(root)
	t.root = root
}

// chooseSplitIndex finds the index at which n's children (already
// sorted along the chosen axis) should be split, minimising overlap
// area first and total area second.
func (t *Tree) chooseSplitIndex(n *node, min, count int) int {
	minOverlap := vmath.Infinity
	minArea := vmath.Infinity

	idx := count - min
	for i := min; i <= count-min; i++ {
		bbox1 := calcSubBBox(n, 0, i)
		bbox2 := calcSubBBox(n, i, count)

		overlap := intersectionArea(bbox1, bbox2)
		area := bbox1.Area() + bbox2.Area()

		if overlap < minOverlap {
			minOverlap = overlap
			minArea = vmath.Min(area, minArea)
			idx = i
		} else if overlap == minOverlap {
			if area < minArea {
				minArea = area
				idx = i
			}
		}
	}
	return idx
}

// chooseSplitAxis sorts n's entries by whichever axis yields the
// smaller total margin across all candidate distributions.
func (t *Tree) chooseSplitAxis(n *node, min, max int) {
	var sortMinX, sortMinY sort.Interface
	if n.leaf {
		sortMinX = itemsByMinX(n.items)
		sortMinY = itemsByMinY(n.items)
	} else {
		sortMinX = nodesByMinX(n.children)
		sortMinY = nodesByMinY(n.children)
	}

	sort.Sort(sortMinX)
	xMargin := t.allDistMargin(n, min, max)
	sort.Sort(sortMinY)
	yMargin := t.allDistMargin(n, min, max)

	// if the total margin is smaller along x, re-sort by minX (we're
	// currently sorted by minY from computing yMargin above).
	if xMargin < yMargin {
		sort.Sort(sortMinX)
	}
}

// allDistMargin sums the margin of every candidate distribution where
// the first group holds k in [min, max-min] entries.
func (t *Tree) allDistMargin(n *node, min, max int) float32 {
	leftBBox := calcSubBBox(n, 0, min)
	rightBBox := calcSubBBox(n, max-min, max)

	margin := bboxMargin(leftBBox) + bboxMargin(rightBBox)

	for i := min; i < max-min; i++ {
		if n.leaf {
			extend(&leftBBox, n.items[i].bounds())
		} else {
			extend(&leftBBox, n.children[i].bounds)
		}
		margin += bboxMargin(leftBBox)
	}

	for i := max - min - 1; i >= min; i-- {
		if n.leaf {
			extend(&rightBBox, n.items[i].bounds())
		} else {
			extend(&rightBBox, n.children[i].bounds)
		}
		margin += bboxMargin(rightBBox)
	}
	return margin
}

// adjustParentBBoxes extends every bounds on the insertion path to
// cover bbox.
func (t *Tree) adjustParentBBoxes(insertPath []*node, bbox vmath.Rectf, level int) {
	for i := level; i >= 0; i-- {
		extend(&insertPath[i].bounds, bbox)
	}
}
