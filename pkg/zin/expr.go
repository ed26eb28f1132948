package zin

// Expr is a node in an expression tree.
//
// The set of variants is closed: only the types in this file implement it.
type Expr interface {
	exprNode()
}

// Binary operator tags recognized by BinopC.
const (
	OpAdd    = "+"
	OpSub    = "-"
	OpMul    = "*"
	OpDiv    = "/"
	OpLessEq = "<="
	OpEq     = "eq?"
)

// Ops returns the recognized binary operator tags.
func Ops() []string {
	return []string{OpAdd, OpSub, OpMul, OpDiv, OpLessEq, OpEq}
}

// NumC is an integer literal.
type NumC struct {
	N int
}

// BoolC is a boolean literal.
type BoolC struct {
	B bool
}

// IdC refers to an identifier. There are no bindings, so evaluating one
// always fails.
type IdC struct {
	Name string
}

// IfC evaluates Then or Else depending on Cond.
type IfC struct {
	Cond Expr
	Then Expr
	Else Expr
}

// LamC is a lambda literal. Params are not checked for duplicates.
type LamC struct {
	Params []string
	Body   Expr
}

// BinopC applies Op to the values of Left and Right.
type BinopC struct {
	Op    string
	Left  Expr
	Right Expr
}

func (NumC) exprNode()   {}
func (BoolC) exprNode()  {}
func (IdC) exprNode()    {}
func (IfC) exprNode()    {}
func (LamC) exprNode()   {}
func (BinopC) exprNode() {}

// Num, Bool, Id, If, Lam and Binop are shorthand constructors for building
// trees by hand.

func Num(n int) Expr      { return NumC{N: n} }
func Bool(b bool) Expr    { return BoolC{B: b} }
func Id(name string) Expr { return IdC{Name: name} }

func If(cond, then, els Expr) Expr {
	return IfC{Cond: cond, Then: then, Else: els}
}

func Lam(params []string, body Expr) Expr {
	return LamC{Params: params, Body: body}
}

func Binop(op string, left, right Expr) Expr {
	return BinopC{Op: op, Left: left, Right: right}
}
