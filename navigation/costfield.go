package navigation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/terrain"
)

// Mode selects the field construction algorithm
type Mode uint8

const (
	ModeSweep    Mode = iota // Four quadrant sweeps, values wrap modulo 100
	ModeDijkstra             // Unwrapped weighted shortest path
)

var ErrUnknownMode = errors.New("unknown navigation mode")

func (m Mode) String() string {
	switch m {
	case ModeSweep:
		return "sweep"
	case ModeDijkstra:
		return "dijkstra"
	}
	return "unknown"
}

// ParseMode maps a config name to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sweep":
		return ModeSweep, nil
	case "dijkstra":
		return ModeDijkstra, nil
	}
	return ModeSweep, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// CostField holds one distance-like value per cell relative to Ref
type CostField struct {
	Values   [terrain.Height][terrain.Width]int
	Ref      terrain.Point
	Mode     Mode
	Sentinel int // Border and unreachable value, above every reachable value
}

// At returns the value at p, Sentinel when out of bounds
func (f *CostField) At(p terrain.Point) int {
	if p.X < 0 || p.X >= terrain.Width || p.Y < 0 || p.Y >= terrain.Height {
		return f.Sentinel
	}
	return f.Values[p.Y][p.X]
}

// MarkVisited stamps a cell a seeker just left so it is not immediately revisited
// Dijkstra fields descend monotonically and need no stamp
func (f *CostField) MarkVisited(p terrain.Point) {
	if f.Mode != ModeSweep {
		return
	}
	if p.X <= 0 || p.X >= terrain.Width-1 || p.Y <= 0 || p.Y >= terrain.Height-1 {
		return
	}
	f.Values[p.Y][p.X] = parameter.CostFieldVisited
}

// Max returns the largest non-sentinel value
func (f *CostField) Max() int {
	best := 0
	for y := range f.Values {
		for _, v := range f.Values[y] {
			if v != f.Sentinel && v > best {
				best = v
			}
		}
	}
	return best
}

// String renders the field as fixed-width rows
func (f *CostField) String() string {
	var b strings.Builder
	width := 3
	if f.Mode == ModeDijkstra {
		width = 5
	}
	for y := range f.Values {
		for _, v := range f.Values[y] {
			if v == f.Sentinel {
				b.WriteString(strings.Repeat(" ", width-1) + "-")
				continue
			}
			fmt.Fprintf(&b, "%*d", width, v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Builder constructs cost fields in one mode
type Builder struct {
	Mode Mode
}

// Build computes the field rooted at ref for the given profile
func (b Builder) Build(g *terrain.Grid, ref terrain.Point, p *Profile) *CostField {
	if b.Mode == ModeDijkstra {
		return buildDijkstra(g, ref, p)
	}
	return buildSweep(g, ref, p)
}

// quadrant pairs the outer ray leaving the reference with the inner sweep run from each ray cell
type quadrant struct {
	outer, inner terrain.Point
}

// Quadrants in sweep order: north, west, south, east
// Together they cover every cell except the reference exactly once
var quadrants = [4]quadrant{
	{outer: terrain.Point{X: 0, Y: -1}, inner: terrain.Point{X: -1, Y: 0}},
	{outer: terrain.Point{X: -1, Y: 0}, inner: terrain.Point{X: 0, Y: 1}},
	{outer: terrain.Point{X: 0, Y: 1}, inner: terrain.Point{X: 1, Y: 0}},
	{outer: terrain.Point{X: 1, Y: 0}, inner: terrain.Point{X: 0, Y: -1}},
}

func buildSweep(g *terrain.Grid, ref terrain.Point, p *Profile) *CostField {
	f := &CostField{Ref: ref, Mode: ModeSweep, Sentinel: parameter.CostFieldBorder}
	mod := parameter.CostFieldModulus

	for _, q := range quadrants {
		sum := 0
		for o := ref.Add(q.outer); g.InBounds(o); o = o.Add(q.outer) {
			sum += p.Weight(g.At(o))
			f.Values[o.Y][o.X] = sum % mod

			// Inner run starts on the ray cell itself, counting its weight a second time
			run := sum
			for c := o; g.InBounds(c); c = c.Add(q.inner) {
				run += p.Weight(g.At(c))
				f.Values[c.Y][c.X] = run % mod
			}
		}
	}

	if g.InBounds(ref) {
		f.Values[ref.Y][ref.X] = 0
	}
	stampBorder(f)
	return f
}

func stampBorder(f *CostField) {
	for x := 0; x < terrain.Width; x++ {
		f.Values[0][x] = f.Sentinel
		f.Values[terrain.Height-1][x] = f.Sentinel
	}
	for y := 0; y < terrain.Height; y++ {
		f.Values[y][0] = f.Sentinel
		f.Values[y][terrain.Width-1] = f.Sentinel
	}
}
