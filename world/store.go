package world

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/terrain"
)

// Size is the number of map slots along each world axis
const Size = parameter.WorldSize

var ErrOutOfWorld = errors.New("coordinate outside world")

// Coord addresses one map slot, Row grows southward and Col eastward
type Coord struct {
	Row, Col int
}

// Center returns the starting slot
func Center() Coord {
	return Coord{Row: Size / 2, Col: Size / 2}
}

// Valid reports whether c lies inside the world
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Step returns the slot across the given edge
func (c Coord) Step(s terrain.Side) Coord {
	switch s {
	case terrain.North:
		return Coord{c.Row - 1, c.Col}
	case terrain.South:
		return Coord{c.Row + 1, c.Col}
	case terrain.East:
		return Coord{c.Row, c.Col + 1}
	case terrain.West:
		return Coord{c.Row, c.Col - 1}
	}
	return c
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Map is one generated slot
type Map struct {
	Coord Coord
	Grid  *terrain.Grid
	ID    string // Stable identity, keys navigation caches
}

// Store holds generated maps sparsely
type Store struct {
	passes int
	maps   map[Coord]*Map
	mu     sync.RWMutex
}

// NewStore creates an empty world; passes is forwarded to terrain generation
func NewStore(passes int) *Store {
	return &Store{
		passes: passes,
		maps:   make(map[Coord]*Map),
	}
}

// Get returns the map at c if generated
func (s *Store) Get(c Coord) (*Map, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.maps[c]
	return m, ok
}

// Len returns the number of generated maps
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.maps)
}

// Generate returns the map at c, creating it on first access
// Existing neighbors donate their facing gate offsets; world edges are sealed
func (s *Store) Generate(c Coord, rng *rand.Rand) (*Map, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrOutOfWorld, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.maps[c]; ok {
		return m, nil
	}

	cfg := terrain.Config{
		Rand:         rng,
		GrowthPasses: s.passes,
	}
	for _, side := range terrain.Sides {
		n := c.Step(side)
		if !n.Valid() {
			cfg.Sealed[side] = true
			continue
		}
		if adj, ok := s.maps[n]; ok {
			cfg.Neighbors[side] = adj.Grid
		}
	}

	g, err := terrain.Generate(cfg)
	if err != nil {
		return nil, fmt.Errorf("world %s: %w", c, err)
	}

	m := &Map{Coord: c, Grid: g, ID: c.String()}
	s.maps[c] = m
	return m, nil
}
