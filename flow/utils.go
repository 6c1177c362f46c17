package flow

import "github.com/katalvlaran/mcflow/network"

// bottleneck returns the amount of flow the predecessor chain ending at the
// sink can carry, capped at limit.
func bottleneck(net *network.Network, pred []int, limit int64) int64 {
	delta := limit
	for v := net.Sink; v != net.Source; v = pred[v] {
		u := pred[v]
		if c := net.Capacity[u][v]; c < delta {
			delta = c
		}
	}

	return delta
}

// remaining is desired-realized, saturating at Unbounded so that a negative
// realized flow cannot overflow.
func remaining(desired, realized int64) int64 {
	if desired == Unbounded || (realized < 0 && desired > Unbounded+realized) {
		return Unbounded
	}

	return desired - realized
}

// augment pushes delta units along the predecessor chain ending at the sink:
// forward residual capacity shrinks, reverse residual capacity grows.
func augment(net *network.Network, pred []int, delta int64) {
	for v := net.Sink; v != net.Source; v = pred[v] {
		u := pred[v]
		net.Capacity[u][v] -= delta
		net.Capacity[v][u] += delta
	}
}

// pathTo reconstructs the source→sink node sequence from pred.
func pathTo(net *network.Network, pred []int) []int {
	var path []int
	for v := net.Sink; v != NoPredecessor; v = pred[v] {
		path = append(path, v)
		if v == net.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// TotalFlow sums the flow of the arcs leaving source.
func TotalFlow[K comparable](edges []network.Arc[K], source K) int64 {
	var total int64
	for _, e := range edges {
		if e.From == source {
			total += e.Flow
		}
	}

	return total
}

// TotalCost sums Cost·Flow over all arcs.
func TotalCost[K comparable](edges []network.Arc[K]) int64 {
	var total int64
	for _, e := range edges {
		total += e.Cost * e.Flow
	}

	return total
}
