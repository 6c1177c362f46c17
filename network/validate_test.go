package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/network"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		edges []network.Edge
		want  error
	}{
		{
			name: "valid chain",
			edges: []network.Edge{
				{From: 0, To: 1, Capacity: 1},
				{From: 1, To: 2, Capacity: 1},
			},
		},
		{
			name: "disconnected but contiguous",
			edges: []network.Edge{
				{From: 0, To: 1, Capacity: 1},
				{From: 2, To: 3, Capacity: 1},
			},
		},
		{
			name: "empty",
			want: network.ErrEmptyNetwork,
		},
		{
			name:  "negative capacity",
			edges: []network.Edge{{From: 0, To: 1, Capacity: -1}},
			want:  network.ErrInvalidEdge,
		},
		{
			name:  "negative flow",
			edges: []network.Edge{{From: 0, To: 1, Capacity: 1, Flow: -1}},
			want:  network.ErrInvalidEdge,
		},
		{
			name:  "flow above capacity",
			edges: []network.Edge{{From: 0, To: 1, Capacity: 1, Flow: 2}},
			want:  network.ErrInvalidEdge,
		},
		{
			name:  "negative node id",
			edges: []network.Edge{{From: -1, To: 1, Capacity: 1}},
			want:  network.ErrInvalidEdge,
		},
		{
			name:  "sink is source",
			edges: []network.Edge{{From: 1, To: 0, Capacity: 1}},
			want:  network.ErrSourceIsSink,
		},
		{
			name: "from beyond sink",
			edges: []network.Edge{
				{From: 0, To: 1, Capacity: 1},
				{From: 3, To: 1, Capacity: 1},
			},
			want: network.ErrNodeOutOfRange,
		},
		{
			name: "self loop",
			edges: []network.Edge{
				{From: 0, To: 1, Capacity: 1},
				{From: 1, To: 1, Capacity: 1},
			},
			want: network.ErrSelfLoop,
		},
		{
			name: "parallel",
			edges: []network.Edge{
				{From: 0, To: 1, Capacity: 1},
				{From: 0, To: 1, Capacity: 2},
			},
			want: network.ErrParallelEdge,
		},
		{
			name: "antiparallel",
			edges: []network.Edge{
				{From: 0, To: 1, Capacity: 1},
				{From: 1, To: 2, Capacity: 1},
				{From: 2, To: 1, Capacity: 1},
			},
			want: network.ErrAntiparallelEdge,
		},
		{
			name: "gap",
			edges: []network.Edge{
				{From: 0, To: 1, Capacity: 1},
				{From: 1, To: 3, Capacity: 1},
			},
			want: network.ErrNodeGap,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := network.Validate(tc.edges)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestValidateDoesNotMutate makes sure validation leaves the input as given.
func TestValidateDoesNotMutate(t *testing.T) {
	edges := []network.Edge{{From: 0, To: 1, Capacity: 3, Cost: 2, Flow: 1}}
	before := append([]network.Edge(nil), edges...)
	require.NoError(t, network.Validate(edges))
	require.Equal(t, before, edges)
}
