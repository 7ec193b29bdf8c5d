package boolexpr

// Expr AST

type Expr interface{ isExpr() }

// ExprVar is the variable at Index, where 0 is A and the most significant
// bit of a minterm.
type ExprVar struct{ Index int }

func (ExprVar) isExpr() {}

type ExprNot struct{ X Expr }

func (ExprNot) isExpr() {}

type ExprAnd struct{ A, B Expr }

func (ExprAnd) isExpr() {}

type ExprOr struct{ A, B Expr }

func (ExprOr) isExpr() {}

type ExprConst struct{ Value bool }

func (ExprConst) isExpr() {}
