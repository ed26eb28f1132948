package zin

import "fmt"

// Value is the result of evaluating an Expr. Like Expr, its variants are
// closed.
type Value interface {
	Kind() Kind
	String() string

	valueNode()
}

// Kind names a Value variant.
type Kind string

const (
	KindNum     Kind = "num"
	KindBool    Kind = "bool"
	KindClosure Kind = "closure"
)

// NumV is an integer value.
type NumV struct {
	N int
}

func (NumV) Kind() Kind { return KindNum }

func (n NumV) String() string { return Serialize(n) }

// BoolV is a boolean value.
type BoolV struct {
	B bool
}

func (BoolV) Kind() Kind { return KindBool }

func (b BoolV) String() string { return Serialize(b) }

// ClosV is an unapplied procedure. It captures no environment since there is
// none to capture.
type ClosV struct {
	Params []string
	Body   Expr
}

func (ClosV) Kind() Kind { return KindClosure }

func (c ClosV) String() string { return Serialize(c) }

func (NumV) valueNode()  {}
func (BoolV) valueNode() {}
func (ClosV) valueNode() {}

// GoString shows the closure's parameters and body, which Serialize hides.
func (c ClosV) GoString() string {
	return fmt.Sprintf("zin.ClosV{%s}", Format(LamC(c)))
}
