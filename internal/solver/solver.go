// Package solver provides a small integer-programming modelling layer
// on top of the GLPK backend. Callers declare bounded integer and
// boolean variables, linear constraints, and a handful of structured
// constraints (indicator, min-equality, gated copy, conjunction) that
// the package lowers to big-M linear rows, since the backend has no
// native conditional constraints.
//
// A Model is request-scoped: build it, solve it once, discard it. It is
// not safe for concurrent use; independent solves use independent
// models.
package solver

import (
	"fmt"
	"math"
)

// Var identifies a decision variable within one Model.
type Var int

// Term is one coefficient-variable pair of a linear expression.
type Term struct {
	Var  Var
	Coef float64
}

// LinExpr is a linear expression over model variables.
type LinExpr struct {
	Terms []Term
}

// Expr starts an empty linear expression.
func Expr() LinExpr {
	return LinExpr{}
}

// Sum returns the expression adding all given variables with
// coefficient 1.
func Sum(vars ...Var) LinExpr {
	e := LinExpr{Terms: make([]Term, 0, len(vars))}
	for _, v := range vars {
		e.Terms = append(e.Terms, Term{Var: v, Coef: 1})
	}
	return e
}

// Plus returns a new expression with an added term.
func (e LinExpr) Plus(v Var, coef float64) LinExpr {
	terms := make([]Term, len(e.Terms), len(e.Terms)+1)
	copy(terms, e.Terms)
	return LinExpr{Terms: append(terms, Term{Var: v, Coef: coef})}
}

// Minus returns a new expression subtracting the variable.
func (e LinExpr) Minus(v Var) LinExpr {
	return e.Plus(v, -1)
}

type column struct {
	name    string
	lo, hi  float64
	integer bool
}

type row struct {
	name   string
	terms  []Term
	lo, hi float64 // math.Inf sentinels for one-sided rows
}

// Model is an integer program under construction.
type Model struct {
	name     string
	cols     []column
	rows     []row
	obj      map[Var]float64
	maximize bool
}

// NewModel creates an empty model.
func NewModel(name string) *Model {
	return &Model{
		name: name,
		obj:  make(map[Var]float64),
	}
}

// NumVars returns the number of declared variables.
func (m *Model) NumVars() int { return len(m.cols) }

// NumConstraints returns the number of constraint rows.
func (m *Model) NumConstraints() int { return len(m.rows) }

// NewBoolVar declares a boolean variable.
func (m *Model) NewBoolVar(name string) Var {
	return m.newVar(column{name: name, lo: 0, hi: 1, integer: true})
}

// NewIntVar declares a bounded integer variable.
func (m *Model) NewIntVar(lo, hi int64, name string) Var {
	if hi < lo {
		hi = lo
	}
	return m.newVar(column{name: name, lo: float64(lo), hi: float64(hi), integer: true})
}

func (m *Model) newVar(c column) Var {
	m.cols = append(m.cols, c)
	return Var(len(m.cols) - 1)
}

func (m *Model) upper(v Var) float64 {
	return m.cols[v].hi
}

func (m *Model) addRow(name string, e LinExpr, lo, hi float64) {
	m.rows = append(m.rows, row{name: name, terms: e.Terms, lo: lo, hi: hi})
}

// AddEq constrains the expression to equal k.
func (m *Model) AddEq(name string, e LinExpr, k float64) {
	m.addRow(name, e, k, k)
}

// AddLE constrains the expression to be at most ub.
func (m *Model) AddLE(name string, e LinExpr, ub float64) {
	m.addRow(name, e, math.Inf(-1), ub)
}

// AddGE constrains the expression to be at least lb.
func (m *Model) AddGE(name string, e LinExpr, lb float64) {
	m.addRow(name, e, lb, math.Inf(1))
}

// AddAtMostOne constrains at most one of the boolean variables to hold.
func (m *Model) AddAtMostOne(name string, vars ...Var) {
	if len(vars) == 0 {
		return
	}
	m.AddLE(name, Sum(vars...), 1)
}

// AddScaledBool constrains v == k*b, i.e. v takes the value k exactly
// when the boolean b holds and 0 otherwise.
func (m *Model) AddScaledBool(name string, v Var, k int64, b Var) {
	m.AddEq(name, Sum(v).Plus(b, -float64(k)), 0)
}

// AddAtLeastIndicator ties the boolean b to the condition x >= k in
// both directions. x must be a non-negative integer variable.
func (m *Model) AddAtLeastIndicator(name string, b, x Var, k int64) {
	ux := m.upper(x)
	kf := float64(k)
	// b=1 -> x >= k
	m.AddGE(name+"_ge", Sum(x).Plus(b, -kf), 0)
	// b=0 -> x <= k-1
	m.AddLE(name+"_lt", Sum(x).Plus(b, -(ux-kf+1)), kf-1)
}

// AddBelowIndicator ties the boolean b to the condition x < k in both
// directions.
func (m *Model) AddBelowIndicator(name string, b, x Var, k int64) {
	ux := m.upper(x)
	kf := float64(k)
	// b=1 -> x <= k-1
	m.AddLE(name+"_lt", Sum(x).Plus(b, ux-kf+1), ux)
	// b=0 -> x >= k
	m.AddGE(name+"_ge", Sum(x).Plus(b, kf), kf)
}

// AddMinEquality constrains target == min(x, k). Tight in both
// directions: an auxiliary boolean selects the binding side.
func (m *Model) AddMinEquality(name string, target, x Var, k int64) {
	ux := m.upper(x)
	kf := float64(k)
	d := m.NewBoolVar(name + "_sel")
	m.AddLE(name+"_le_x", Sum(target).Minus(x), 0)
	m.AddLE(name+"_le_k", Sum(target), kf)
	// d=0 -> target >= x
	m.AddGE(name+"_ge_x", Sum(target).Minus(x).Plus(d, ux), 0)
	// d=1 -> target >= k
	m.AddGE(name+"_ge_k", Sum(target).Plus(d, -kf), 0)
}

// AddGatedCopy constrains target == value when the boolean gate holds
// and target == 0 otherwise.
func (m *Model) AddGatedCopy(name string, target, value, gate Var) {
	uv := m.upper(value)
	m.AddLE(name+"_cap", Sum(target).Plus(gate, -uv), 0)
	m.AddLE(name+"_le", Sum(target).Minus(value), 0)
	// gate=1 -> target >= value
	m.AddGE(name+"_ge", Sum(target).Minus(value).Plus(gate, -uv), -uv)
}

// AddConjunction constrains b to hold exactly when every boolean in
// 'of' holds.
func (m *Model) AddConjunction(name string, b Var, of ...Var) {
	for i, v := range of {
		m.AddLE(fmt.Sprintf("%s_le%d", name, i), Sum(b).Minus(v), 0)
	}
	e := Sum(b)
	for _, v := range of {
		e = e.Minus(v)
	}
	m.AddGE(name+"_ge", e, -float64(len(of)-1))
}

// AddAbsFloor constrains dev >= |x - k|. The bound is tight only under
// objective pressure pushing dev down; use it for penalty terms, never
// for values read back from the assignment.
func (m *Model) AddAbsFloor(name string, dev, x Var, k int64) {
	kf := float64(k)
	m.AddGE(name+"_pos", Sum(dev).Minus(x), -kf)
	m.AddGE(name+"_neg", Sum(dev).Plus(x, 1), kf)
}

// Maximize sets the objective to maximize. Coefficients of repeated
// variables accumulate.
func (m *Model) Maximize(e LinExpr) {
	m.maximize = true
	for _, t := range e.Terms {
		m.obj[t.Var] += t.Coef
	}
}
