package rtree

import (
	"encoding/json"
	"fmt"

	"github.com/maja42/vmath"
)

// NodeRecord is the recursive wire shape produced by ToJSON and
// consumed by FromJSON: a node's cached bounds, its height, the
// leaf flag, and its children - a sequence of Items at a leaf
// (Height == 1), or a sequence of NodeRecords otherwise. Both shapes
// serialise under the same JSON field ("children"), discriminated by
// Leaf, so NodeRecord carries its own MarshalJSON/UnmarshalJSON.
type NodeRecord struct {
	MinX, MinY, MaxX, MaxY float32
	Height                 int
	Leaf                   bool
	Children               []*NodeRecord // set when !Leaf
	Items                  []*Item       // set when Leaf
}

type nodeRecordWire struct {
	MinX     float32         `json:"minX"`
	MinY     float32         `json:"minY"`
	MaxX     float32         `json:"maxX"`
	MaxY     float32         `json:"maxY"`
	Height   int             `json:"height"`
	Leaf     bool            `json:"leaf"`
	Children json.RawMessage `json:"children"`
}

// MarshalJSON implements json.Marshaler.
func (n *NodeRecord) MarshalJSON() ([]byte, error) {
	var childrenJSON []byte
	var err error
	if n.Leaf {
		childrenJSON, err = json.Marshal(n.Items)
	} else {
		childrenJSON, err = json.Marshal(n.Children)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(nodeRecordWire{
		MinX: n.MinX, MinY: n.MinY, MaxX: n.MaxX, MaxY: n.MaxY,
		Height: n.Height, Leaf: n.Leaf, Children: childrenJSON,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NodeRecord) UnmarshalJSON(data []byte) error {
	var wire nodeRecordWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	n.MinX, n.MinY, n.MaxX, n.MaxY = wire.MinX, wire.MinY, wire.MaxX, wire.MaxY
	n.Height = wire.Height
	n.Leaf = wire.Leaf

	if wire.Leaf {
		n.Children = nil
		if len(wire.Children) == 0 {
			return nil
		}
		if err := json.Unmarshal(wire.Children, &n.Items); err != nil {
			return fmt.Errorf("children: %w", ErrMalformedRecord)
		}
		return nil
	}

	n.Items = nil
	if len(wire.Children) == 0 {
		return nil
	}
	if err := json.Unmarshal(wire.Children, &n.Children); err != nil {
		return fmt.Errorf("children: %w", ErrMalformedRecord)
	}
	return nil
}

// ToJSON serialises the tree's shape exactly, recursively. It never
// fails: a live tree's node arena always satisfies the wire shape.
func (t *Tree) ToJSON() *NodeRecord {
	return nodeToRecord(t.root)
}

func nodeToRecord(n *node) *NodeRecord {
	rec := &NodeRecord{
		MinX: n.bounds.Min[0], MinY: n.bounds.Min[1],
		MaxX: n.bounds.Max[0], MaxY: n.bounds.Max[1],
		Height: n.height,
		Leaf:   n.leaf,
	}
	if n.leaf {
		rec.Items = append([]*Item(nil), n.items...)
	} else {
		rec.Children = make([]*NodeRecord, len(n.children))
		for i, c := range n.children {
			rec.Children[i] = nodeToRecord(c)
		}
	}
	return rec
}

// FromJSON replaces t's contents with the tree described by rec. On
// error, t is left in its pre-call state: validation happens into
// a scratch node tree, which is only swapped in once the whole record
// has been confirmed well-formed. t's configured maxEntries/minEntries
// are unaffected - the wire format carries shape only, not branching
// factor.
func (t *Tree) FromJSON(rec *NodeRecord) error {
	if rec == nil {
		return shapeErrorf("root", "record is nil")
	}
	root, err := recordToNode(rec, "root")
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

func recordToNode(rec *NodeRecord, path string) (*node, error) {
	if rec.Height < 1 {
		return nil, shapeErrorf(path, "height must be >= 1")
	}
	if rec.Leaf != (rec.Height == 1) {
		return nil, shapeErrorf(path, "leaf must equal (height == 1)")
	}

	n := &node{
		height: rec.Height,
		leaf:   rec.Leaf,
		bounds: vmath.Rectf{
			Min: vmath.Vec2f{rec.MinX, rec.MinY},
			Max: vmath.Vec2f{rec.MaxX, rec.MaxY},
		},
	}

	if rec.Leaf {
		if len(rec.Children) > 0 {
			return nil, shapeErrorf(path, "leaf record must not carry node children")
		}
		n.items = append([]*Item(nil), rec.Items...)
		return n, nil
	}

	if len(rec.Items) > 0 {
		return nil, shapeErrorf(path, "interior record must not carry item children")
	}
	n.children = make([]*node, len(rec.Children))
	for i, childRec := range rec.Children {
		childPath := fmt.Sprintf("%s/children[%d]", path, i)
		if childRec == nil {
			return nil, shapeErrorf(childPath, "nil child record")
		}
		if childRec.Height != rec.Height-1 {
			return nil, shapeErrorf(childPath, "child height must be parent height - 1")
		}
		child, err := recordToNode(childRec, childPath)
		if err != nil {
			return nil, err
		}
		n.children[i] = child
	}
	return n, nil
}
