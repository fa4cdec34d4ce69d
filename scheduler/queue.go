package scheduler

import "github.com/lixenwraith/trainers/agent"

type node struct {
	agent agent.Agent
	seq   uint64 // Insertion order, breaks cost ties first-in first-out
}

func (n node) less(o node) bool {
	if n.agent.Cost != o.agent.Cost {
		return n.agent.Cost < o.agent.Cost
	}
	return n.seq < o.seq
}

// Queue orders agent snapshots by accumulated cost
// Backed by a growable array heap; Push never drops
type Queue struct {
	heap []node
	seq  uint64
}

// NewQueue creates a queue sized for capacity agents
func NewQueue(capacity int) *Queue {
	return &Queue{heap: make([]node, 0, capacity)}
}

// Len returns the number of queued snapshots
func (q *Queue) Len() int {
	return len(q.heap)
}

// Push inserts a snapshot
func (q *Queue) Push(a agent.Agent) {
	q.heap = append(q.heap, node{agent: a, seq: q.seq})
	q.seq++

	// Sift up
	i := len(q.heap) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !q.heap[i].less(q.heap[parent]) {
			break
		}
		q.heap[parent], q.heap[i] = q.heap[i], q.heap[parent]
		i = parent
	}
}

// Pop removes the lowest-cost snapshot, false when empty
func (q *Queue) Pop() (agent.Agent, bool) {
	n := len(q.heap)
	if n == 0 {
		return agent.Agent{}, false
	}
	top := q.heap[0]
	q.heap[0] = q.heap[n-1]
	q.heap = q.heap[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(q.heap) {
			break
		}
		smallest := left
		if right := left + 1; right < len(q.heap) && q.heap[right].less(q.heap[left]) {
			smallest = right
		}
		if !q.heap[smallest].less(q.heap[i]) {
			break
		}
		q.heap[i], q.heap[smallest] = q.heap[smallest], q.heap[i]
		i = smallest
	}
	return top.agent, true
}

// Peek returns the lowest-cost snapshot without removing it
func (q *Queue) Peek() (agent.Agent, bool) {
	if len(q.heap) == 0 {
		return agent.Agent{}, false
	}
	return q.heap[0].agent, true
}

// Refill pushes a snapshot of every agent in t, in ID order
func (q *Queue) Refill(t *agent.Table) {
	for _, a := range t.All() {
		q.Push(a)
	}
}
