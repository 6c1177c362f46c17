package matching_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/matching"
	"github.com/katalvlaran/mcflow/network"
)

type pair = matching.Pair[string]

// studentJobs lists the preference cost of every student for every job.
func studentJobs() []pair {
	return []pair{
		{"Xanthippe", "Accounting", 4}, {"Xanthippe", "Bicycles", 2},
		{"Xanthippe", "Construction", 1}, {"Xanthippe", "Dentistry", 3},
		{"Yazoo", "Accounting", 3}, {"Yazoo", "Bicycles", 1},
		{"Yazoo", "Construction", 2}, {"Yazoo", "Dentistry", 4},
		{"Zamboni", "Accounting", 2}, {"Zamboni", "Bicycles", 4},
		{"Zamboni", "Construction", 3}, {"Zamboni", "Dentistry", 1},
	}
}

// MatchingSuite exercises MinWeight.
type MatchingSuite struct {
	suite.Suite
}

// TestStudentJobs matches every student to their favourite job.
func (s *MatchingSuite) TestStudentJobs() {
	got, err := matching.MinWeight(studentJobs())
	require.NoError(s.T(), err)

	want := []pair{
		{"Xanthippe", "Construction", 1},
		{"Yazoo", "Bicycles", 1},
		{"Zamboni", "Dentistry", 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("matching mismatch (-want +got):\n%s", diff)
	}
	require.Equal(s.T(), int64(3), matching.Weight(got))
}

// TestCardinalityFirst prefers two expensive pairs over one cheap pair.
func (s *MatchingSuite) TestCardinalityFirst() {
	pairs := []pair{{"a", "x", 1}, {"b", "x", 100}, {"a", "y", 100}}

	got, err := matching.MinWeight(pairs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []pair{{"b", "x", 100}, {"a", "y", 100}}, got)

	got, err = matching.MinWeight(pairs, flow.WithDesiredFlow(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []pair{{"a", "x", 1}}, got)
}

// TestSeparateNamespaces allows one name on both sides.
func (s *MatchingSuite) TestSeparateNamespaces() {
	pairs := []pair{{"x", "x", 5}, {"x", "y", 2}, {"y", "x", 2}}

	got, err := matching.MinWeight(pairs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []pair{{"x", "y", 2}, {"y", "x", 2}}, got)
}

// TestNegativeWeights are allowed: the network stays acyclic.
func (s *MatchingSuite) TestNegativeWeights() {
	pairs := []pair{{"a", "x", -3}, {"a", "y", 1}, {"b", "y", -1}}

	got, err := matching.MinWeight(pairs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(-4), matching.Weight(got))
}

// TestEmptyAndDuplicate covers the edge cases.
func (s *MatchingSuite) TestEmptyAndDuplicate() {
	got, err := matching.MinWeight[string](nil)
	require.NoError(s.T(), err)
	require.Empty(s.T(), got)
	require.Zero(s.T(), matching.Weight(got))

	_, err = matching.MinWeight([]pair{{"a", "x", 1}, {"a", "x", 2}})
	require.True(s.T(), errors.Is(err, network.ErrParallelEdge))
}

// TestIntegerKeys works with any ordered key type.
func (s *MatchingSuite) TestIntegerKeys() {
	got, err := matching.MinWeight([]matching.Pair[int]{
		{Left: 1, Right: 10, Weight: 7},
		{Left: 1, Right: 20, Weight: 3},
		{Left: 2, Right: 20, Weight: 3},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(10), matching.Weight(got))
	require.Len(s.T(), got, 2)
}

func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}
