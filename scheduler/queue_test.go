package scheduler

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trainers/agent"
)

func TestPopEmpty(t *testing.T) {
	q := NewQueue(0)
	a, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, agent.Agent{}, a)

	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestPopOrdersByCost(t *testing.T) {
	q := NewQueue(4)
	rng := rand.New(rand.NewSource(7))

	costs := make([]int, 200)
	for i := range costs {
		costs[i] = rng.Intn(500)
		q.Push(agent.Agent{ID: i, Cost: costs[i]})
	}
	require.Equal(t, 200, q.Len())

	sort.Ints(costs)
	for i, want := range costs {
		a, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, a.Cost, "pop %d", i)
	}
	assert.Zero(t, q.Len())
}

func TestPopTiesFIFO(t *testing.T) {
	q := NewQueue(0)
	q.Push(agent.Agent{ID: 3, Cost: 10})
	q.Push(agent.Agent{ID: 1, Cost: 10})
	q.Push(agent.Agent{ID: 2, Cost: 5})
	q.Push(agent.Agent{ID: 0, Cost: 10})

	var ids []int
	for q.Len() > 0 {
		a, _ := q.Pop()
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{2, 3, 1, 0}, ids)
}

func TestPushDuringDrain(t *testing.T) {
	q := NewQueue(0)
	q.Push(agent.Agent{ID: 0, Cost: 0})
	q.Push(agent.Agent{ID: 1, Cost: 20})

	a, _ := q.Pop()
	a.Cost += 30
	q.Push(a)

	next, _ := q.Pop()
	assert.Equal(t, 1, next.ID)
	last, _ := q.Pop()
	assert.Equal(t, 0, last.ID)
	assert.Equal(t, 30, last.Cost)
}

func TestRefill(t *testing.T) {
	table := agent.NewTable([]agent.Role{agent.RolePlayer, agent.RoleHiker, agent.RoleRival})
	q := NewQueue(table.Len())

	q.Refill(table)
	require.Equal(t, 3, q.Len())

	// Equal costs come back in ID order
	for want := 0; want < 3; want++ {
		a, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, a.ID)
	}

	h, _ := table.Get(1)
	h.Cost = 40
	require.NoError(t, table.Apply(h))
	q.Refill(table)

	top, _ := q.Peek()
	assert.Equal(t, 0, top.ID)
	for q.Len() > 1 {
		q.Pop()
	}
	last, _ := q.Pop()
	assert.Equal(t, 1, last.ID)
	assert.Equal(t, 40, last.Cost)
}
