package zin

import (
	"fmt"

	"github.com/pkg/errors"
)

// Every evaluation failure wraps exactly one of these.
var (
	ErrUnboundIdentifier   = errors.New("unbound identifier")
	ErrConditionNotBoolean = errors.New("condition is not boolean")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrUnknownOperator     = errors.New("unknown binary operator")
	ErrArithmetic          = errors.New("arithmetic fault")

	// ErrUnknownExpression means the evaluator was handed an Expr variant it
	// has no case for.
	ErrUnknownExpression = errors.New("unknown expression")
)

// EvalError reports the innermost expression whose evaluation failed.
type EvalError struct {
	Expr Expr
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("interp %s: %s", Format(e.Expr), e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// withEvalError attaches expr to err unless an inner expression already
// claimed it.
func withEvalError(expr Expr, err error) error {
	if err == nil {
		return nil
	}
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvalError{Expr: expr, Err: err}
}

func typeMismatch(op string, l, r Value) error {
	return errors.Wrapf(ErrTypeMismatch, "%s: %s and %s", op, l.Kind(), r.Kind())
}

func unknownOperator(op string, k Kind) error {
	return errors.Wrapf(ErrUnknownOperator, "%q on %s operands", op, k)
}
