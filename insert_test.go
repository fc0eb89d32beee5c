package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertSplitsWhenNodeOverflows(t *testing.T) {
	tr := New(4)
	assert.Equal(t, 1, tr.root.height)

	for i := 0; i < 4; i++ {
		x := float32(i)
		tr.Insert(rectItem(x, x, x+1, x+1))
	}
	assert.True(t, tr.root.leaf)
	assert.Len(t, tr.root.items, 4)

	tr.Insert(rectItem(100, 100, 101, 101))
	assert.False(t, tr.root.leaf)
	assert.Greater(t, len(tr.root.children), 1)
}

func TestChooseSubtreePrefersLeastEnlargement(t *testing.T) {
	tr := New(9)
	near := rectItem(0, 0, 10, 10)
	far := rectItem(1000, 1000, 1010, 1010)
	tr.Insert(near)
	tr.Insert(far)

	// Force both into distinct children by splitting the root by hand
	// via enough inserts around each cluster, then confirm a new item
	// close to "near" lands in the same subtree as "near".
	for i := 0; i < 20; i++ {
		x := float32(i)
		tr.Insert(rectItem(x, x, x+1, x+1))
	}
	probe := rectItem(2, 2, 3, 3)
	bbox := probe.bounds()
	leaf, _ := tr.chooseSubtree(bbox, tr.root, tr.root.height-1)
	assert.True(t, leaf.bounds.Intersects(near.bounds()))
}

func TestSplitKeepsAllItemsReachable(t *testing.T) {
	tr := New(4)
	var items []*Item
	for i := 0; i < 40; i++ {
		x := float32(i) * 3
		it := rectItem(x, x, x+1, x+1)
		items = append(items, it)
		tr.Insert(it)
	}
	assert.ElementsMatch(t, items, tr.All())
}

func TestAdjustParentBBoxesExpandsAncestors(t *testing.T) {
	tr := New(4)
	for i := 0; i < 30; i++ {
		x := float32(i)
		tr.Insert(rectItem(x, x, x+1, x+1))
	}
	outlier := rectItem(-500, -500, -499, -499)
	tr.Insert(outlier)

	b := tr.Bounds()
	assert.LessOrEqual(t, b.MinX, float32(-500))
	assert.LessOrEqual(t, b.MinY, float32(-500))
}
