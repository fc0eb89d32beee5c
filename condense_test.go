package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondenseMaintainsMinimumFill(t *testing.T) {
	tr := New(5)
	var items []*Item
	for i := 0; i < 600; i++ {
		it := randomItem()
		items = append(items, it)
		tr.Insert(it)
	}

	// remove most items, forcing repeated condensation
	for i := 0; i < 580; i++ {
		tr.Remove(items[i])
	}
	assertFillBounds(t, tr)
	assertTightBounds(t, tr.root)
	assert.Equal(t, 20, tr.Len())
}

func TestCondenseShrinksRootWithSingleChild(t *testing.T) {
	tr := New(4)
	var items []*Item
	for i := 0; i < 50; i++ {
		it := randomItem()
		items = append(items, it)
		tr.Insert(it)
	}
	for _, it := range items[:49] {
		tr.Remove(it)
	}
	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.root.leaf, "root should collapse back down to a single leaf")
}

func TestRemoveEveryItemLeavesEmptyRoot(t *testing.T) {
	tr, items := newPrePopulatedTree(1000)
	for _, it := range items {
		tr.Remove(it)
	}
	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.root.leaf)
	assert.Equal(t, 1, tr.root.height)
}

func TestReinsertedDescendantsRemainSearchable(t *testing.T) {
	tr := New(4)
	var items []*Item
	for i := 0; i < 200; i++ {
		x := float32(i)
		it := rectItem(x, x, x+1, x+1)
		items = append(items, it)
		tr.Insert(it)
	}

	// remove a scattered subset to trigger underflow/reinsertion without
	// emptying the tree
	var removed []*Item
	for i := 0; i < len(items); i += 3 {
		tr.Remove(items[i])
		removed = append(removed, items[i])
	}

	remaining := tr.All()
	assert.Len(t, remaining, len(items)-len(removed))
	for _, r := range removed {
		assert.NotContains(t, remaining, r)
	}
	assertFillBounds(t, tr)
}
