package navigation

import (
	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/terrain"
)

// --- Min-heap for Dijkstra ---

type heapEntry struct {
	idx  int // Flat grid index (y*width + x)
	dist int // Weighted distance from reference
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].dist <= (*h)[i].dist {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].dist < (*h)[left].dist {
			smallest = right
		}
		if (*h)[i].dist <= (*h)[smallest].dist {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// buildDijkstra runs weighted Dijkstra outward from ref
// Entering a cell costs its profile weight (at least 1); cells a seeker cannot enter stay at Sentinel.
// Occupied cells count as passable since agents move after the field is built
func buildDijkstra(g *terrain.Grid, ref terrain.Point, p *Profile) *CostField {
	f := &CostField{Ref: ref, Mode: ModeDijkstra, Sentinel: parameter.CostFieldUnreachable}
	for y := range f.Values {
		for x := range f.Values[y] {
			f.Values[y][x] = f.Sentinel
		}
	}
	if !g.IsInterior(ref) {
		return f
	}

	w := terrain.Width
	passable := func(c terrain.Point) bool {
		if !g.IsInterior(c) {
			return false
		}
		t := g.At(c)
		return t.IsOccupant() || p.Passable.Has(t)
	}

	f.Values[ref.Y][ref.X] = 0
	heap := make(minHeap, 0, terrain.Height*terrain.Width/4)
	heap.push(heapEntry{idx: ref.Y*w + ref.X, dist: 0})

	for len(heap) > 0 {
		entry := heap.pop()
		cur := terrain.Point{X: entry.idx % w, Y: entry.idx / w}

		if entry.dist > f.Values[cur.Y][cur.X] {
			continue // Stale entry
		}

		for _, d := range terrain.Neighbors {
			n := cur.Add(d)
			if !passable(n) {
				continue
			}

			step := p.Weight(g.At(n))
			if step < 1 {
				step = 1
			}
			newDist := entry.dist + step
			if newDist < f.Values[n.Y][n.X] {
				f.Values[n.Y][n.X] = newDist
				heap.push(heapEntry{idx: n.Y*w + n.X, dist: newDist})
			}
		}
	}
	return f
}
