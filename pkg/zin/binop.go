package zin

import (
	"runtime"

	"github.com/pkg/errors"
)

// binop evaluates both operands, left first, and applies the operator.
func (r *run) binop(e BinopC) (Value, error) {
	l, err := r.interp(e.Left)
	if err != nil {
		return nil, err
	}
	rv, err := r.interp(e.Right)
	if err != nil {
		return nil, err
	}

	result, err := r.apply(e.Op, l, rv)
	if err != nil {
		return nil, withEvalError(e, err)
	}
	r.logBinop(e, l, rv, result)
	return result, nil
}

func (r *run) apply(op string, l, rv Value) (Value, error) {
	switch lv := l.(type) {
	case NumV:
		switch rv := rv.(type) {
		case NumV:
			return numBinop(op, lv.N, rv.N)
		case BoolV:
			return nil, typeMismatch(op, l, rv)
		}
	case BoolV:
		switch rv := rv.(type) {
		case BoolV:
			return boolBinop(op, lv.B, rv.B)
		case NumV:
			return nil, typeMismatch(op, l, rv)
		}
	}

	// A closure on either side.
	if r.strict {
		return nil, typeMismatch(op, l, rv)
	}
	return BoolV{B: false}, nil
}

func numBinop(op string, l, r int) (Value, error) {
	switch op {
	case OpAdd:
		return NumV{N: l + r}, nil
	case OpSub:
		return NumV{N: l - r}, nil
	case OpMul:
		return NumV{N: l * r}, nil
	case OpDiv:
		return divide(l, r)
	case OpLessEq:
		return BoolV{B: l <= r}, nil
	case OpEq:
		return BoolV{B: l == r}, nil
	default:
		return nil, unknownOperator(op, KindNum)
	}
}

func boolBinop(op string, l, r bool) (Value, error) {
	switch op {
	case OpEq:
		return BoolV{B: l == r}, nil
	default:
		return nil, unknownOperator(op, KindBool)
	}
}

// divide leaves zero divisors to the runtime and turns its fault into
// ErrArithmetic.
func divide(l, r int) (val Value, err error) {
	defer func() {
		if x := recover(); x != nil {
			rerr, ok := x.(runtime.Error)
			if !ok {
				panic(x)
			}
			val, err = nil, errors.Wrap(ErrArithmetic, rerr.Error())
		}
	}()
	return NumV{N: l / r}, nil
}
