package rtree

import (
	"github.com/maja42/vmath"
	"github.com/maja42/vmath/math32"
)

// Rect is an axis-aligned rectangle expressed in the host's coordinate
// system. minX <= maxX and minY <= maxY is expected but not enforced;
// a malformed rectangle is stored as-is and queries behave consistently
// with whatever is stored (see ErrMalformedRecord for the one place
// shape actually gets validated).
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Item is the opaque unit the engine stores. Data is never interpreted;
// Search/All return the stored *Item pointers verbatim, and Remove
// matches by *Item pointer identity.
type Item struct {
	MinX, MinY, MaxX, MaxY float32
	Data                   any
}

// Rect returns the item's bounding rectangle.
func (it *Item) Rect() Rect {
	return Rect{it.MinX, it.MinY, it.MaxX, it.MaxY}
}

func (r Rect) toVmath() vmath.Rectf {
	return vmath.Rectf{
		Min: vmath.Vec2f{r.MinX, r.MinY},
		Max: vmath.Vec2f{r.MaxX, r.MaxY},
	}
}

func fromVmath(b vmath.Rectf) Rect {
	return Rect{
		MinX: b.Min[0], MinY: b.Min[1],
		MaxX: b.Max[0], MaxY: b.Max[1],
	}
}

func (it *Item) bounds() vmath.Rectf {
	return vmath.Rectf{
		Min: vmath.Vec2f{it.MinX, it.MinY},
		Max: vmath.Vec2f{it.MaxX, it.MaxY},
	}
}

// noBounds is the identity element for union: merging it with any R
// returns R unchanged.
var noBounds = vmath.Rectf{
	Min: vmath.Vec2f{math32.Infinity, math32.Infinity},
	Max: vmath.Vec2f{math32.NegInfinity, math32.NegInfinity},
}

// extend expands a in-place to cover b.
func extend(a *vmath.Rectf, b vmath.Rectf) {
	*a = a.Merge(b)
}

// enlargedArea is the area of bbox after it is expanded to also cover newChild.
func enlargedArea(bbox, newChild vmath.Rectf) float32 {
	width := vmath.Max(newChild.Max[0], bbox.Max[0]) - vmath.Min(newChild.Min[0], bbox.Min[0])
	height := vmath.Max(newChild.Max[1], bbox.Max[1]) - vmath.Min(newChild.Min[1], bbox.Min[1])
	return width * height
}

// intersectionArea returns the area of the overlap between a and b, or
// 0 if they don't overlap. This is the true geometric intersection used
// by the split-index heuristic - not to be confused with the
// enlarged/union area computed by enlargedArea.
func intersectionArea(a, b vmath.Rectf) float32 {
	minX := vmath.Max(a.Min[0], b.Min[0])
	minY := vmath.Max(a.Min[1], b.Min[1])
	maxX := vmath.Min(a.Max[0], b.Max[0])
	maxY := vmath.Min(a.Max[1], b.Max[1])
	if maxX <= minX || maxY <= minY {
		return 0
	}
	return (maxX - minX) * (maxY - minY)
}

// bboxMargin is half the rectangle's perimeter (sum of width and height).
func bboxMargin(bbox vmath.Rectf) float32 {
	return (bbox.Max[0] - bbox.Min[0]) + (bbox.Max[1] - bbox.Min[1])
}
