// Command rtreedemo scatters random rectangles into a Tree and reports
// a few queries against it. It exists to exercise the host-facing API
// end to end, not as a benchmark or a serious tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spatialkit/rtree"
)

func main() {
	count := flag.Int("n", 1000, "number of rectangles to insert")
	maxEntries := flag.Int("max-entries", 9, "tree branching factor M")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	queryRect := flag.Float64("query-size", 5, "side length of the demo query square")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	items := make([]*rtree.Item, *count)
	for i := range items {
		x := rng.Float32() * 1000
		y := rng.Float32() * 1000
		w := rng.Float32()*9 + 1
		h := rng.Float32()*9 + 1
		items[i] = &rtree.Item{
			MinX: x, MinY: y, MaxX: x + w, MaxY: y + h,
			Data: uuid.New().String(),
		}
	}

	t := rtree.New(*maxEntries)
	t.Load(items)
	log.Printf("loaded %d items, height=%d, len=%d", *count, t.Height(), t.Len())

	q := rtree.Rect{MinX: 0, MinY: 0, MaxX: float32(*queryRect), MaxY: float32(*queryRect)}
	hits := t.Search(q)
	log.Printf("search %+v matched %d items", q, len(hits))
	fmt.Printf("collides: %v\n", t.Collides(q))

	rec := t.ToJSON()
	blob, err := json.Marshal(rec)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}

	var roundTripped rtree.NodeRecord
	if err := json.Unmarshal(blob, &roundTripped); err != nil {
		log.Fatalf("unmarshal: %v", err)
	}

	t2 := rtree.New(*maxEntries)
	if err := t2.FromJSON(&roundTripped); err != nil {
		log.Fatalf("FromJSON: %v", err)
	}
	log.Printf("round-tripped tree: height=%d, len=%d, %d bytes", t2.Height(), t2.Len(), len(blob))
}
