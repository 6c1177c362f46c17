package flow

import (
	"fmt"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/mcflow/network"
)

// ShortestPaths computes, for every node, the least cost of reaching it from
// net.Source through arcs of positive residual capacity, and the predecessor
// achieving that cost.
//
// It is a label-correcting search (Bellman–Ford with a worklist): nodes whose
// distance improved are queued once (an in-queue guard prevents duplicates),
// and removing a node relaxes every neighbor v with Capacity[u][v] > 0:
//
//	if dist[v] > dist[u] + Cost[u][v] { dist[v], pred[v] = ..., u; queue v }
//
// Reverse residual arcs carry negated costs, so arcs may be negative; a plain
// positive-weight algorithm would be wrong here. The search terminates when
// the worklist is empty.
//
// A relaxation that would make the predecessor walk of a node reach n arcs
// proves a negative-cost cycle (the walk must repeat a node, and a repeat can
// only be strictly cheaper around a negative cycle); ErrNegativeCycle is
// returned instead of looping forever.
//
// Unreachable nodes keep dist = Infinity and pred = NoPredecessor.
//
// Complexity: O(n·E) worst case, typically close to O(E).
func ShortestPaths(net *network.Network, kind Worklist) ([]int64, []int, error) {
	if net == nil {
		return nil, nil, ErrNilNetwork
	}

	n := net.Nodes
	dist := make([]int64, n)
	pred := make([]int, n)
	hops := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = Infinity
		pred[v] = NoPredecessor
	}
	dist[net.Source] = 0

	queue := newWorklist(kind, n)
	queue.push(net.Source, 0)

	for !queue.empty() {
		u := queue.pop()
		du := dist[u]
		residual := net.Capacity[u]
		cost := net.Cost[u]
		for _, v := range net.Adjacency[u] {
			if residual[v] <= 0 {
				continue
			}
			candidate := du + cost[v]
			if candidate >= dist[v] {
				continue
			}
			if hops[u]+1 >= n {
				return nil, nil, fmt.Errorf("%w: relaxing %d→%d", ErrNegativeCycle, u, v)
			}
			dist[v] = candidate
			pred[v] = u
			hops[v] = hops[u] + 1
			queue.push(v, candidate)
		}
	}

	return dist, pred, nil
}

// worklist holds nodes whose distance improved but has not been propagated.
type worklist interface {
	// push queues v (tentative distance d) unless it is already queued.
	push(v int, d int64)
	// pop removes the next node to relax.
	pop() int
	empty() bool
}

func newWorklist(kind Worklist, n int) worklist {
	if kind == WorklistPriority {
		return &priorityList{heap: yagh.New[int64](n)}
	}

	return &fifoList{
		queue:   make([]int, 0, n),
		inQueue: make([]bool, n),
	}
}

// fifoList is a reusable slice queue with an in-queue guard.
type fifoList struct {
	queue   []int
	head    int
	inQueue []bool
}

func (q *fifoList) push(v int, _ int64) {
	if q.inQueue[v] {
		return
	}
	q.inQueue[v] = true
	q.queue = append(q.queue, v)
}

func (q *fifoList) pop() int {
	v := q.queue[q.head]
	q.head++
	q.inQueue[v] = false
	if q.head == len(q.queue) {
		// drained: rewind so the backing array is reused
		q.queue = q.queue[:0]
		q.head = 0
	}

	return v
}

func (q *fifoList) empty() bool {
	return q.head == len(q.queue)
}

// priorityList is an indexed min-heap keyed by tentative distance. Put on a
// queued node updates its key, so heap membership is the in-queue guard.
type priorityList struct {
	heap *yagh.IntMap[int64]
}

func (q *priorityList) push(v int, d int64) {
	q.heap.Put(v, d)
}

func (q *priorityList) pop() int {
	return q.heap.Pop().Elem
}

func (q *priorityList) empty() bool {
	return q.heap.Size() == 0
}
