package rtree

import "github.com/maja42/vmath"

// node is an R-tree element that contains sub-elements: either child
// nodes (leaf == false) or items (leaf == true), but never both.
type node struct {
	children []*node
	items    []*Item

	height int
	leaf   bool
	bounds vmath.Rectf
}

func newNode() *node {
	return &node{
		height: 1,
		leaf:   true,
		bounds: noBounds,
	}
}

// sorting adapters, used by the split axis heuristic and the STR bulk loader.

type nodesByMinX []*node
type nodesByMinY []*node

type itemsByMinX []*Item
type itemsByMinY []*Item

func (a nodesByMinX) Len() int           { return len(a) }
func (a nodesByMinX) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a nodesByMinX) Less(i, j int) bool { return a[i].bounds.Min[0] < a[j].bounds.Min[0] }

func (a nodesByMinY) Len() int           { return len(a) }
func (a nodesByMinY) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a nodesByMinY) Less(i, j int) bool { return a[i].bounds.Min[1] < a[j].bounds.Min[1] }

func (a itemsByMinX) Len() int           { return len(a) }
func (a itemsByMinX) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a itemsByMinX) Less(i, j int) bool { return a[i].MinX < a[j].MinX }

func (a itemsByMinY) Len() int           { return len(a) }
func (a itemsByMinY) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a itemsByMinY) Less(i, j int) bool { return a[i].MinY < a[j].MinY }

// popNode removes and returns the last slice entry.
func popNode(nodes *[]*node) *node {
	length := len(*nodes)
	n := (*nodes)[length-1]
	*nodes = (*nodes)[:length-1]
	return n
}

// popInt removes and returns the last slice entry.
func popInt(ints *[]int) int {
	length := len(*ints)
	i := (*ints)[length-1]
	*ints = (*ints)[:length-1]
	return i
}

// calcBBox recomputes a node's bounds from its current children/items.
func calcBBox(n *node) {
	n.bounds = calcSubBBox(n, 0, len(n.children)+len(n.items))
}

// calcSubBBox computes the union bounds of entries in the range [start:end).
func calcSubBBox(n *node, start, end int) vmath.Rectf {
	bbox := noBounds
	if n.leaf {
		for _, item := range n.items[start:end] {
			extend(&bbox, item.bounds())
		}
	} else {
		for _, child := range n.children[start:end] {
			extend(&bbox, child.bounds)
		}
	}
	return bbox
}
