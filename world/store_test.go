package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trainers/terrain"
)

func TestGenerateCachesMap(t *testing.T) {
	s := NewStore(0)
	rng := rand.New(rand.NewSource(1))

	a, err := s.Generate(Center(), rng)
	require.NoError(t, err)
	b, err := s.Generate(Center(), rng)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "200,200", a.ID)
}

func TestGenerateStitchesNeighbors(t *testing.T) {
	s := NewStore(0)
	rng := rand.New(rand.NewSource(2))

	home, err := s.Generate(Center(), rng)
	require.NoError(t, err)

	north, err := s.Generate(Center().Step(terrain.North), rng)
	require.NoError(t, err)
	assert.Equal(t, home.Grid.Gates[terrain.North].Pos.X, north.Grid.Gates[terrain.South].Pos.X)

	east, err := s.Generate(Center().Step(terrain.East), rng)
	require.NoError(t, err)
	assert.Equal(t, home.Grid.Gates[terrain.East].Pos.Y, east.Grid.Gates[terrain.West].Pos.Y)
}

func TestGenerateSealsCorner(t *testing.T) {
	s := NewStore(0)
	m, err := s.Generate(Coord{0, 0}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.False(t, m.Grid.Gates[terrain.North].Open)
	assert.False(t, m.Grid.Gates[terrain.West].Open)
	assert.True(t, m.Grid.Gates[terrain.South].Open)
	assert.True(t, m.Grid.Gates[terrain.East].Open)
}

func TestGenerateOutOfWorld(t *testing.T) {
	s := NewStore(0)
	_, err := s.Generate(Coord{-1, 5}, rand.New(rand.NewSource(4)))
	assert.ErrorIs(t, err, ErrOutOfWorld)

	_, ok := s.Get(Coord{-1, 5})
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}
