package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/network"
)

// MaxFlowSuite exercises the Dinic feasibility check.
type MaxFlowSuite struct {
	suite.Suite
}

// TestSingleEdge verifies that a single arc yields its capacity.
func (s *MaxFlowSuite) TestSingleEdge() {
	net, err := network.Build([]network.Edge{{From: 0, To: 1, Capacity: 7, Cost: 3}})
	require.NoError(s.T(), err)

	mf, err := flow.MaxFlow(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
}

// TestMultiPath verifies max flow on two paths sharing the sink.
func (s *MaxFlowSuite) TestMultiPath() {
	net, err := network.Build([]network.Edge{
		{From: 0, To: 2, Capacity: 5},
		{From: 0, To: 1, Capacity: 4},
		{From: 1, To: 2, Capacity: 3},
	})
	require.NoError(s.T(), err)

	mf, err := flow.MaxFlow(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), mf) // 5 + 3
}

// TestNeedsReverseArc needs flow cancellation to reach the optimum.
func (s *MaxFlowSuite) TestNeedsReverseArc() {
	net, err := network.Build(diamondNetwork())
	require.NoError(s.T(), err)

	mf, err := flow.MaxFlow(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), mf)
}

// TestCountsPreexistingFlow includes net.Flow and leaves net untouched.
func (s *MaxFlowSuite) TestCountsPreexistingFlow() {
	net, err := network.Build([]network.Edge{
		{From: 0, To: 1, Capacity: 5, Flow: 2},
		{From: 1, To: 2, Capacity: 4, Flow: 2},
	})
	require.NoError(s.T(), err)
	before := net.CloneCapacity()

	mf, err := flow.MaxFlow(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), mf)
	require.Equal(s.T(), before, net.Capacity)
	require.Equal(s.T(), int64(2), net.Flow)
}

// TestMatchesSuccessiveShortestPaths compares magnitudes on the assignment
// network.
func (s *MaxFlowSuite) TestMatchesSuccessiveShortestPaths() {
	net, err := network.Build(assignmentNetwork())
	require.NoError(s.T(), err)

	mf, err := flow.MaxFlow(net)
	require.NoError(s.T(), err)
	res, err := flow.SuccessiveShortestPaths(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), mf, res.Flow)
}

// TestCancelledContext returns the context error.
func (s *MaxFlowSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	net, err := network.Build(assignmentNetwork())
	require.NoError(s.T(), err)
	_, err = flow.MaxFlow(net, flow.WithContext(ctx))
	require.True(s.T(), errors.Is(err, context.Canceled))
}

func TestMaxFlowSuite(t *testing.T) {
	suite.Run(t, new(MaxFlowSuite))
}
