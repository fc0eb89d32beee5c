package rtree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONFromJSONRoundTrip(t *testing.T) {
	tr, items := newPrePopulatedTree(800)

	rec := tr.ToJSON()
	blob, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded NodeRecord
	require.NoError(t, json.Unmarshal(blob, &decoded))

	restored := New(9)
	require.NoError(t, restored.FromJSON(&decoded))

	assert.Equal(t, tr.Height(), restored.Height())
	assert.Equal(t, len(items), restored.Len())

	got := restored.All()
	// encoding/json decodes a numeric Data back into an any as float64.
	wantData := make(map[any]bool, len(items))
	for _, it := range items {
		wantData[float64(it.Data.(int))] = true
	}
	for _, it := range got {
		assert.True(t, wantData[it.Data], "unexpected item survived round trip: %+v", it)
	}
}

func TestToJSONLeafRecordCarriesItems(t *testing.T) {
	tr := New(4)
	tr.Insert(rectItem(0, 0, 1, 1))
	rec := tr.ToJSON()
	assert.True(t, rec.Leaf)
	assert.Len(t, rec.Items, 1)
	assert.Nil(t, rec.Children)
}

func TestFromJSONRejectsLeafHeightMismatch(t *testing.T) {
	rec := &NodeRecord{Height: 2, Leaf: true}
	tr := New(4)
	err := tr.FromJSON(rec)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestFromJSONRejectsMixedChildKinds(t *testing.T) {
	rec := &NodeRecord{
		Height: 1,
		Leaf:   true,
		Items:  []*Item{rectItem(0, 0, 1, 1)},
	}
	// manually attach a node child onto a leaf record, which cannot
	// happen via round-tripping but can happen from a hand-built record
	rec.Children = []*NodeRecord{{Height: 1, Leaf: true}}

	tr := New(4)
	err := tr.FromJSON(rec)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestFromJSONRejectsChildHeightMismatch(t *testing.T) {
	rec := &NodeRecord{
		Height: 2,
		Leaf:   false,
		Children: []*NodeRecord{
			{Height: 2, Leaf: false}, // should be height 1
		},
	}
	tr := New(4)
	err := tr.FromJSON(rec)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestFromJSONLeavesTreeUnchangedOnError(t *testing.T) {
	tr := New(4)
	tr.Insert(rectItem(0, 0, 1, 1))
	before := tr.Len()

	err := tr.FromJSON(&NodeRecord{Height: 0})
	assert.Error(t, err)
	assert.Equal(t, before, tr.Len())
}

func TestFromJSONNilRecord(t *testing.T) {
	tr := New(4)
	err := tr.FromJSON(nil)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
