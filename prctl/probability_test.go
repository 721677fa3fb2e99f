package prctl_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/prctl"
	"github.com/veristoch/mdpcheck/solver"
)

func TestNewChecker(t *testing.T) {
	_, err := prctl.New(nil)
	require.ErrorIs(t, err, prctl.ErrNilModel)

	_, err = prctl.New(coinModel(t, 0), prctl.WithSolver(nil))
	require.ErrorIs(t, err, prctl.ErrOptionViolation)

	c, err := prctl.New(coinModel(t, 0))
	require.NoError(t, err)
	require.Equal(t, 3, c.Model().NumberOfStates())
}

func TestNextCoin(t *testing.T) {
	c, err := prctl.New(coinModel(t, 0))
	require.NoError(t, err)
	goal := bitvec.NewFromIndices(3, 1)

	minResult, err := c.Next(prctl.Minimize, goal)
	require.NoError(t, err)
	require.InDelta(t, 0.5, minResult[0], 1e-12)
	require.Equal(t, 1.0, minResult[1])
	require.Equal(t, 0.0, minResult[2])

	maxResult, err := c.Next(prctl.Maximize, goal)
	require.NoError(t, err)
	require.InDelta(t, 0.9, maxResult[0], 1e-12)
}

func TestUntilCoin(t *testing.T) {
	c, err := prctl.New(coinModel(t, 0))
	require.NoError(t, err)
	full := bitvec.Full(3)
	goal := bitvec.NewFromIndices(3, 1)

	minResult, minSched, err := c.Until(prctl.Minimize, full, goal)
	require.NoError(t, err)
	require.InDelta(t, 0.5, minResult[0], 1e-6)
	require.Equal(t, 1.0, minResult[1])
	require.Equal(t, 0.0, minResult[2])
	choice, err := minSched.Choice(0)
	require.NoError(t, err)
	require.Equal(t, 0, choice)

	maxResult, maxSched, err := c.Until(prctl.Maximize, full, goal)
	require.NoError(t, err)
	require.InDelta(t, 0.9, maxResult[0], 1e-6)
	choice, err = maxSched.Choice(0)
	require.NoError(t, err)
	require.Equal(t, 1, choice)
}

func TestUntilQualitative(t *testing.T) {
	c, err := prctl.New(coinModel(t, 0), prctl.WithQualitative(true))
	require.NoError(t, err)

	result, _, err := c.Eventually(prctl.Maximize, bitvec.NewFromIndices(3, 1))
	require.NoError(t, err)
	require.Equal(t, []float64{prctl.ProbabilitySentinel, 1, 0}, result)
}

func TestUntilShortCircuitOnKnownInitialStates(t *testing.T) {
	// With the goal itself initial, classification alone settles all
	// initial states and the maybe-state keeps the sentinel.
	c, err := prctl.New(coinModel(t, 1))
	require.NoError(t, err)

	result, _, err := c.Eventually(prctl.Maximize, bitvec.NewFromIndices(3, 1))
	require.NoError(t, err)
	require.Equal(t, []float64{prctl.ProbabilitySentinel, 1, 0}, result)
}

func TestEventuallyDie(t *testing.T) {
	c, err := prctl.New(dieModel(t))
	require.NoError(t, err)

	for face := 7; face < dieStates; face++ {
		result, _, err := c.Eventually(prctl.Minimize, bitvec.NewFromIndices(dieStates, face))
		require.NoError(t, err)
		require.InDelta(t, 1.0/6.0, result[0], 1e-5)
	}
}

func TestBoundedEventuallyDie(t *testing.T) {
	c, err := prctl.New(dieModel(t))
	require.NoError(t, err)

	// No outcome is reachable in fewer than three flips; by the third,
	// six of the eight coin-flip paths have settled.
	result, err := c.BoundedEventually(prctl.Minimize, dieOutcomes(), 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, result[0])

	result, err = c.BoundedEventually(prctl.Minimize, dieOutcomes(), 3)
	require.NoError(t, err)
	require.InDelta(t, 0.75, result[0], 1e-12)
}

func TestBoundedUntilZeroBoundIsIndicator(t *testing.T) {
	c, err := prctl.New(coinModel(t, 0))
	require.NoError(t, err)
	goal := bitvec.NewFromIndices(3, 1)

	result, err := c.BoundedUntil(prctl.Maximize, bitvec.Full(3), goal, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0}, result)
}

func TestBoundedUntilNegativeBound(t *testing.T) {
	c, err := prctl.New(coinModel(t, 0))
	require.NoError(t, err)

	_, err = c.BoundedUntil(prctl.Minimize, bitvec.Full(3), bitvec.New(3), -1)
	require.ErrorIs(t, err, prctl.ErrNegativeStepBound)
}

func TestGloballyCoin(t *testing.T) {
	c, err := prctl.New(coinModel(t, 0))
	require.NoError(t, err)
	safe := bitvec.NewFromIndices(3, 0, 1)

	result, err := c.Globally(prctl.Maximize, safe)
	require.NoError(t, err)
	require.InDelta(t, 0.9, result[0], 1e-6)
	require.InDelta(t, 1.0, result[1], 1e-6)
	require.InDelta(t, 0.0, result[2], 1e-6)
}

func TestTwoDiceReachability(t *testing.T) {
	c, err := prctl.New(twoDiceModel(t))
	require.NoError(t, err)

	// The face sum is independent of the interleaving order.
	for _, tc := range []struct {
		sum  int
		want float64
	}{
		{2, 1.0 / 36.0},
		{3, 2.0 / 36.0},
		{7, 6.0 / 36.0},
	} {
		minResult, _, err := c.Eventually(prctl.Minimize, twoDiceSum(tc.sum))
		require.NoError(t, err)
		maxResult, _, err := c.Eventually(prctl.Maximize, twoDiceSum(tc.sum))
		require.NoError(t, err)
		require.InDelta(t, tc.want, minResult[0], 1e-5, "sum %d", tc.sum)
		require.InDelta(t, tc.want, maxResult[0], 1e-5, "sum %d", tc.sum)
	}
}

func TestTwoDiceBounded(t *testing.T) {
	c, err := prctl.New(twoDiceModel(t))
	require.NoError(t, err)

	// Both dice done within six flips means both settle in exactly three
	// of their own, (3/4)^2, however the scheduler interleaves them.
	minResult, err := c.BoundedEventually(prctl.Minimize, twoDiceDone(), 6)
	require.NoError(t, err)
	require.InDelta(t, 9.0/16.0, minResult[0], 1e-12)

	maxResult, err := c.BoundedEventually(prctl.Maximize, twoDiceDone(), 6)
	require.NoError(t, err)
	require.InDelta(t, 9.0/16.0, maxResult[0], 1e-12)
}

func TestEventuallyFullTargetIsAllOnes(t *testing.T) {
	c, err := prctl.New(twoDiceModel(t))
	require.NoError(t, err)
	n := c.Model().NumberOfStates()

	result, _, err := c.Eventually(prctl.Minimize, bitvec.Full(n))
	require.NoError(t, err)
	for s, v := range result {
		require.Equal(t, 1.0, v, "state %d", s)
	}
}

func TestUntilValuesStayWithinUnitInterval(t *testing.T) {
	c, err := prctl.New(twoDiceModel(t))
	require.NoError(t, err)

	result, _, err := c.Eventually(prctl.Maximize, twoDiceSum(7))
	require.NoError(t, err)
	for s, v := range result {
		require.GreaterOrEqual(t, v, 0.0, "state %d", s)
		require.LessOrEqual(t, v, 1.0+1e-9, "state %d", s)
	}
}

func TestBoundedEventuallyMonotoneInBound(t *testing.T) {
	c, err := prctl.New(dieModel(t))
	require.NoError(t, err)

	prev := -1.0
	for bound := 0; bound <= 7; bound++ {
		result, err := c.BoundedEventually(prctl.Minimize, dieOutcomes(), bound)
		require.NoError(t, err)
		require.GreaterOrEqual(t, result[0], prev, "bound %d", bound)
		prev = result[0]
	}
}

func TestElectionEventually(t *testing.T) {
	c, err := prctl.New(electionModel(t))
	require.NoError(t, err)
	elected := bitvec.NewFromIndices(5, 4)

	// Every round retains a winning chance, so election is almost sure
	// regardless of which candidate the scheduler backs.
	for _, dir := range []prctl.Direction{prctl.Minimize, prctl.Maximize} {
		result, _, err := c.Eventually(dir, elected)
		require.NoError(t, err)
		for s, v := range result {
			require.Equal(t, 1.0, v, "state %d", s)
		}
	}
}

func TestElectionBounded(t *testing.T) {
	c, err := prctl.New(electionModel(t))
	require.NoError(t, err)
	elected := bitvec.NewFromIndices(5, 4)

	// Two rounds backing the slow candidate: 1 - 0.75^2. Backing the fast
	// one: 1 - 0.5^2.
	minResult, err := c.BoundedEventually(prctl.Minimize, elected, 2)
	require.NoError(t, err)
	require.InDelta(t, 7.0/16.0, minResult[0], 1e-12)

	maxResult, err := c.BoundedEventually(prctl.Maximize, elected, 2)
	require.NoError(t, err)
	require.InDelta(t, 3.0/4.0, maxResult[0], 1e-12)
}

func TestUntilPolicyIterationAgrees(t *testing.T) {
	pi, err := solver.NewPolicyIteration()
	require.NoError(t, err)
	c, err := prctl.New(coinModel(t, 0), prctl.WithSolver(pi))
	require.NoError(t, err)

	result, _, err := c.Eventually(prctl.Maximize, bitvec.NewFromIndices(3, 1))
	require.NoError(t, err)
	require.InDelta(t, 0.9, result[0], 1e-9)
}

func TestPredicateLength(t *testing.T) {
	c, err := prctl.New(coinModel(t, 0))
	require.NoError(t, err)

	_, err = c.Next(prctl.Minimize, bitvec.New(5))
	require.ErrorIs(t, err, prctl.ErrPredicateLength)
	_, _, err = c.Until(prctl.Minimize, bitvec.New(5), bitvec.New(3))
	require.ErrorIs(t, err, prctl.ErrPredicateLength)
}

func TestClassificationLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	c, err := prctl.New(coinModel(t, 0), prctl.WithLogger(logger))
	require.NoError(t, err)

	_, _, err = c.Eventually(prctl.Maximize, bitvec.NewFromIndices(3, 1))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "qualitative classification complete")
	require.Contains(t, buf.String(), `"query":"until"`)
}
