package boolexpr

import (
	"github.com/pkg/errors"

	"github.com/pborges/qmc/internal/qm"
)

// VariableCount is one more than the highest variable index used, and at
// least one.
func VariableCount(e Expr) int {
	n := 1
	walk(e, func(v ExprVar) {
		if v.Index+1 > n {
			n = v.Index + 1
		}
	})
	return n
}

func walk(e Expr, fn func(ExprVar)) {
	switch x := e.(type) {
	case ExprVar:
		fn(x)
	case ExprNot:
		walk(x.X, fn)
	case ExprAnd:
		walk(x.A, fn)
		walk(x.B, fn)
	case ExprOr:
		walk(x.A, fn)
		walk(x.B, fn)
	}
}

// Eval evaluates e for the assignment encoded by minterm m over n
// variables, A being the most significant bit.
func Eval(e Expr, m, n int) bool {
	switch x := e.(type) {
	case ExprVar:
		return m&(1<<(n-1-x.Index)) != 0
	case ExprNot:
		return !Eval(x.X, m, n)
	case ExprAnd:
		return Eval(x.A, m, n) && Eval(x.B, m, n)
	case ExprOr:
		return Eval(x.A, m, n) || Eval(x.B, m, n)
	case ExprConst:
		return x.Value
	}
	return false
}

// Minterms returns the ascending minterms for which e holds over n
// variables.
func Minterms(e Expr, n int) ([]int, error) {
	if need := VariableCount(e); n < need {
		return nil, errors.Wrapf(qm.ErrInvalidInput, "expression needs %d variables, got %d", need, n)
	}
	if n > qm.MaxVariables {
		return nil, errors.Wrapf(qm.ErrInvalidInput, "%d variables exceeds limit of %d", n, qm.MaxVariables)
	}
	var out []int
	for m := 0; m < 1<<n; m++ {
		if Eval(e, m, n) {
			out = append(out, m)
		}
	}
	return out, nil
}
