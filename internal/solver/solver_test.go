package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DSestu/MH-Wilds-Tools/internal/solver"
)

func TestModelCounts(t *testing.T) {
	m := solver.NewModel("counts")
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	x := m.NewIntVar(0, 10, "x")

	m.AddAtMostOne("one_of", a, b)
	m.AddScaledBool("x_is_3a", x, 3, a)

	assert.Equal(t, 3, m.NumVars())
	assert.Equal(t, 2, m.NumConstraints())
}

func TestLinExprPlusDoesNotAlias(t *testing.T) {
	m := solver.NewModel("alias")
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	c := m.NewBoolVar("c")

	base := solver.Sum(a)
	left := base.Plus(b, 1)
	right := base.Plus(c, 1)

	assert.Len(t, left.Terms, 2)
	assert.Len(t, right.Terms, 2)
	assert.Equal(t, b, left.Terms[1].Var)
	assert.Equal(t, c, right.Terms[1].Var)
}

func TestSolveKnapsack(t *testing.T) {
	// Three items, capacity 5: values 4/5/6, weights 2/3/4. Best is
	// items 1+2 for value 9.
	m := solver.NewModel("knapsack")
	items := []solver.Var{
		m.NewBoolVar("item0"),
		m.NewBoolVar("item1"),
		m.NewBoolVar("item2"),
	}
	weight := solver.Expr().Plus(items[0], 2).Plus(items[1], 3).Plus(items[2], 4)
	m.AddLE("capacity", weight, 5)
	m.Maximize(solver.Expr().Plus(items[0], 4).Plus(items[1], 5).Plus(items[2], 6))

	res, err := m.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, solver.StatusOptimal, res.Status)
	assert.InDelta(t, 9, res.Objective, 1e-6)
	assert.True(t, res.BoolValue(items[0]))
	assert.True(t, res.BoolValue(items[1]))
	assert.False(t, res.BoolValue(items[2]))
}

func TestSolveAtMostOne(t *testing.T) {
	m := solver.NewModel("at_most_one")
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	c := m.NewBoolVar("c")
	m.AddAtMostOne("pick", a, b, c)
	m.Maximize(solver.Expr().Plus(a, 1).Plus(b, 2).Plus(c, 3))

	res, err := m.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, res.HasAssignment())
	assert.InDelta(t, 3, res.Objective, 1e-6)
	assert.False(t, res.BoolValue(a))
	assert.False(t, res.BoolValue(b))
	assert.True(t, res.BoolValue(c))
}

func TestSolveMinEquality(t *testing.T) {
	testCases := []struct {
		name     string
		fixed    int64
		cap      int64
		expected int64
	}{
		{"below cap", 3, 7, 3},
		{"above cap", 9, 7, 7},
		{"at cap", 7, 7, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := solver.NewModel("min_eq")
			x := m.NewIntVar(0, 20, "x")
			m.AddEq("fix_x", solver.Sum(x), float64(tc.fixed))
			target := m.NewIntVar(0, 20, "target")
			m.AddMinEquality("min", target, x, tc.cap)
			// Push target up: the min must hold even against pressure.
			m.Maximize(solver.Sum(target))

			res, err := m.Solve(context.Background())
			require.NoError(t, err)
			require.True(t, res.HasAssignment())
			assert.Equal(t, tc.expected, res.Value(target))
		})
	}
}

func TestSolveAtLeastIndicator(t *testing.T) {
	testCases := []struct {
		name      string
		x         int64
		threshold int64
		expected  bool
	}{
		{"below threshold", 2, 3, false},
		{"at threshold", 3, 3, true},
		{"above threshold", 5, 3, true},
		{"zero threshold always met", 0, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := solver.NewModel("indicator")
			x := m.NewIntVar(0, 10, "x")
			m.AddEq("fix_x", solver.Sum(x), float64(tc.x))
			b := m.NewBoolVar("b")
			m.AddAtLeastIndicator("met", b, x, tc.threshold)
			// No objective pressure on b: the indicator must be forced
			// in both directions by the constraints alone.
			m.Maximize(solver.Sum(x))

			res, err := m.Solve(context.Background())
			require.NoError(t, err)
			require.True(t, res.HasAssignment())
			assert.Equal(t, tc.expected, res.BoolValue(b))
		})
	}
}

func TestSolveBelowIndicator(t *testing.T) {
	m := solver.NewModel("below")
	x := m.NewIntVar(0, 10, "x")
	m.AddEq("fix_x", solver.Sum(x), 4)

	under := m.NewBoolVar("under5")
	m.AddBelowIndicator("under5", under, x, 5)
	over := m.NewBoolVar("under3")
	m.AddBelowIndicator("under3", over, x, 3)

	m.Maximize(solver.Sum(x))

	res, err := m.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, res.HasAssignment())
	assert.True(t, res.BoolValue(under))
	assert.False(t, res.BoolValue(over))
}

func TestSolveGatedCopy(t *testing.T) {
	for _, gateOn := range []bool{true, false} {
		m := solver.NewModel("gated")
		value := m.NewIntVar(0, 10, "value")
		m.AddEq("fix_value", solver.Sum(value), 6)
		gate := m.NewBoolVar("gate")
		gateVal := float64(0)
		if gateOn {
			gateVal = 1
		}
		m.AddEq("fix_gate", solver.Sum(gate), gateVal)
		target := m.NewIntVar(0, 10, "target")
		m.AddGatedCopy("copy", target, value, gate)
		m.Maximize(solver.Sum(target))

		res, err := m.Solve(context.Background())
		require.NoError(t, err)
		require.True(t, res.HasAssignment())
		if gateOn {
			assert.Equal(t, int64(6), res.Value(target))
		} else {
			assert.Equal(t, int64(0), res.Value(target))
		}
	}
}

func TestSolveConjunction(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     float64
		expected bool
	}{
		{"both hold", 1, 1, true},
		{"first only", 1, 0, false},
		{"neither", 0, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := solver.NewModel("conj")
			a := m.NewBoolVar("a")
			b := m.NewBoolVar("b")
			m.AddEq("fix_a", solver.Sum(a), tc.a)
			m.AddEq("fix_b", solver.Sum(b), tc.b)
			both := m.NewBoolVar("both")
			m.AddConjunction("both", both, a, b)
			m.Maximize(solver.Sum(a))

			res, err := m.Solve(context.Background())
			require.NoError(t, err)
			require.True(t, res.HasAssignment())
			assert.Equal(t, tc.expected, res.BoolValue(both))
		})
	}
}

func TestSolveAbsFloorUnderPressure(t *testing.T) {
	// dev is only bounded below by |x-4|; minimizing pressure makes it
	// tight.
	for _, fixed := range []int64{1, 4, 9} {
		m := solver.NewModel("abs")
		x := m.NewIntVar(0, 10, "x")
		m.AddEq("fix_x", solver.Sum(x), float64(fixed))
		dev := m.NewIntVar(0, 20, "dev")
		m.AddAbsFloor("dev", dev, x, 4)
		m.Maximize(solver.Expr().Plus(dev, -1))

		res, err := m.Solve(context.Background())
		require.NoError(t, err)
		require.True(t, res.HasAssignment())
		want := fixed - 4
		if want < 0 {
			want = -want
		}
		assert.Equal(t, want, res.Value(dev))
	}
}

func TestSolveInfeasible(t *testing.T) {
	m := solver.NewModel("infeasible")
	x := m.NewIntVar(0, 5, "x")
	m.AddGE("ge", solver.Sum(x), 4)
	m.AddLE("le", solver.Sum(x), 2)
	m.Maximize(solver.Sum(x))

	res, err := m.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, solver.StatusInfeasible, res.Status)
	assert.False(t, res.HasAssignment())
}

func TestSolveExpiredContext(t *testing.T) {
	m := solver.NewModel("expired")
	x := m.NewIntVar(0, 5, "x")
	m.Maximize(solver.Sum(x))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := m.Solve(ctx)
	require.NoError(t, err)
	assert.Equal(t, solver.StatusUnknown, res.Status)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OPTIMAL", solver.StatusOptimal.String())
	assert.Equal(t, "FEASIBLE", solver.StatusFeasible.String())
	assert.Equal(t, "INFEASIBLE", solver.StatusInfeasible.String())
	assert.Equal(t, "MODEL_INVALID", solver.StatusInvalid.String())
	assert.Equal(t, "UNKNOWN", solver.StatusUnknown.String())
}
