package solver

import (
	"context"
	"math"

	"github.com/lukpank/go-glpk/glpk"

	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
)

// Status is the backend's verdict on a solved model.
type Status int

// Solve statuses
const (
	// StatusUnknown means the backend stopped without proving anything,
	// typically because the solve budget expired.
	StatusUnknown Status = iota
	// StatusOptimal means the returned assignment is proven optimal.
	StatusOptimal
	// StatusFeasible means an assignment was found but optimality was
	// not proven.
	StatusFeasible
	// StatusInfeasible means no assignment satisfies the constraints.
	StatusInfeasible
	// StatusInvalid means the model itself was rejected by the backend.
	StatusInvalid
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusInvalid:
		return "MODEL_INVALID"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of one solve. Values are only meaningful for
// StatusOptimal and StatusFeasible.
type Result struct {
	Status    Status
	Objective float64
	values    []float64
}

// Value returns the assigned value of an integer variable.
func (r *Result) Value(v Var) int64 {
	if r.values == nil || int(v) >= len(r.values) {
		return 0
	}
	return int64(math.Round(r.values[v]))
}

// BoolValue returns the assigned value of a boolean variable.
func (r *Result) BoolValue(v Var) bool {
	return r.Value(v) == 1
}

// HasAssignment reports whether the result carries a usable assignment.
func (r *Result) HasAssignment() bool {
	return r.Status == StatusOptimal || r.Status == StatusFeasible
}

// Solve hands the model to GLPK's integer optimizer and decodes the
// outcome. The call blocks until the backend finishes or ctx is done;
// GLPK cannot be interrupted mid-search, so on early ctx expiry the
// abandoned solve keeps running in a background goroutine and its
// result is discarded.
func (m *Model) Solve(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return &Result{Status: StatusUnknown}, nil
	}

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		res, err := m.solve()
		done <- outcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return &Result{Status: StatusUnknown}, nil
	case out := <-done:
		return out.res, out.err
	}
}

func (m *Model) solve() (*Result, error) {
	lp := glpk.New()
	defer lp.Delete()

	lp.SetProbName(m.name)
	if m.maximize {
		lp.SetObjDir(glpk.MAX)
	} else {
		lp.SetObjDir(glpk.MIN)
	}

	if len(m.cols) > 0 {
		first := lp.AddCols(len(m.cols))
		for i, c := range m.cols {
			j := first + i
			lp.SetColName(j, c.name)
			if c.lo == c.hi {
				lp.SetColBnds(j, glpk.FX, c.lo, c.hi)
			} else {
				lp.SetColBnds(j, glpk.DB, c.lo, c.hi)
			}
			if c.integer {
				lp.SetColKind(j, glpk.IV)
			}
		}
		for v, coef := range m.obj {
			lp.SetObjCoef(first+int(v), coef)
		}
	}

	if len(m.rows) > 0 {
		first := lp.AddRows(len(m.rows))
		for i, r := range m.rows {
			ri := first + i
			lp.SetRowName(ri, r.name)
			switch {
			case math.IsInf(r.lo, -1) && math.IsInf(r.hi, 1):
				lp.SetRowBnds(ri, glpk.FR, 0, 0)
			case math.IsInf(r.lo, -1):
				lp.SetRowBnds(ri, glpk.UP, 0, r.hi)
			case math.IsInf(r.hi, 1):
				lp.SetRowBnds(ri, glpk.LO, r.lo, 0)
			case r.lo == r.hi:
				lp.SetRowBnds(ri, glpk.FX, r.lo, r.hi)
			default:
				lp.SetRowBnds(ri, glpk.DB, r.lo, r.hi)
			}

			// GLPK sparse rows are 1-based with a dummy leading entry.
			ind := make([]int32, 1, len(r.terms)+1)
			val := make([]float64, 1, len(r.terms)+1)
			for _, t := range r.terms {
				ind = append(ind, int32(1+int(t.Var)))
				val = append(val, t.Coef)
			}
			lp.SetMatRow(ri, ind, val)
		}
	}

	// Solve the LP relaxation first; Intopt then branches from its
	// basis. This keeps infeasibility detection on solution statuses
	// instead of presolver error codes.
	smcp := glpk.NewSmcp()
	smcp.SetMsgLev(glpk.MSG_ERR)
	if err := lp.Simplex(smcp); err != nil {
		return &Result{Status: StatusInvalid},
			errors.WrapWithCode(err, errors.CodeInternal, "simplex rejected the model")
	}
	switch lp.Status() {
	case glpk.OPT:
	case glpk.NOFEAS, glpk.INFEAS:
		return &Result{Status: StatusInfeasible}, nil
	default:
		return &Result{Status: StatusUnknown}, nil
	}

	iocp := glpk.NewIocp()
	solveErr := lp.Intopt(iocp)

	switch lp.MipStatus() {
	case glpk.OPT:
		return m.extract(lp, StatusOptimal), nil
	case glpk.FEAS:
		return m.extract(lp, StatusFeasible), nil
	case glpk.NOFEAS:
		return &Result{Status: StatusInfeasible}, nil
	default:
		if solveErr != nil {
			return &Result{Status: StatusInvalid},
				errors.WrapWithCode(solveErr, errors.CodeInternal, "integer optimizer rejected the model")
		}
		return &Result{Status: StatusUnknown}, nil
	}
}

func (m *Model) extract(lp *glpk.Prob, status Status) *Result {
	values := make([]float64, len(m.cols))
	for i := range m.cols {
		values[i] = lp.MipColVal(1 + i)
	}
	return &Result{
		Status:    status,
		Objective: lp.MipObjVal(),
		values:    values,
	}
}
