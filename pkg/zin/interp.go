package zin

import (
	"context"
	"log/slog"

	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"github.com/vito/zin/pkg/logctx"
)

// Evaluator reduces expression trees to values. It holds no state between
// calls and is safe for concurrent use.
type Evaluator struct {
	config Config
}

func NewEvaluator(config Config) *Evaluator {
	return &Evaluator{config: config}
}

func (ev *Evaluator) Config() Config {
	return ev.config
}

// Interp evaluates e. Any failure aborts the whole evaluation; the returned
// error wraps one of the Err* sentinels and names the failing node via
// *EvalError.
//
// Evaluation is logged at debug level to the logger carried by ctx.
func (ev *Evaluator) Interp(ctx context.Context, e Expr) (Value, error) {
	r := &run{
		ctx:    ctx,
		log:    logctx.LoggerFromContext(ctx),
		strict: ev.config.StrictClosureOperands,
	}
	r.debug = r.log.Enabled(ctx, slog.LevelDebug)

	val, err := r.interp(e)
	if err != nil {
		if r.debug {
			r.log.DebugContext(ctx, "evaluation failed", "expr", Format(e), "error", err)
		}
		return nil, err
	}
	return val, nil
}

// TopEval evaluates e and serializes the result.
func (ev *Evaluator) TopEval(ctx context.Context, e Expr) (string, error) {
	val, err := ev.Interp(ctx, e)
	if err != nil {
		return "", err
	}
	return Serialize(val), nil
}

// run is the state of a single evaluation.
type run struct {
	ctx    context.Context
	log    *slog.Logger
	debug  bool
	strict bool
}

func (r *run) interp(e Expr) (Value, error) {
	switch e := e.(type) {
	case NumC:
		return NumV{N: e.N}, nil
	case BoolC:
		return BoolV{B: e.B}, nil
	case LamC:
		return ClosV{Params: e.Params, Body: e.Body}, nil
	case IdC:
		return nil, withEvalError(e, errors.Wrapf(ErrUnboundIdentifier, "%q", e.Name))
	case IfC:
		return r.interpIf(e)
	case BinopC:
		return r.binop(e)
	default:
		return nil, withEvalError(e, errors.Wrapf(ErrUnknownExpression, "%T", e))
	}
}

func (r *run) interpIf(e IfC) (Value, error) {
	cond, err := r.interp(e.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(BoolV)
	if !ok {
		return nil, withEvalError(e, errors.Wrapf(ErrConditionNotBoolean, "got %s", cond.Kind()))
	}
	if r.debug {
		r.log.DebugContext(r.ctx, "if", "cond", Format(e.Cond), "value", b.B)
	}
	if b.B {
		return r.interp(e.Then)
	}
	return r.interp(e.Else)
}

func (r *run) logBinop(e BinopC, l, rv, result Value) {
	if !r.debug {
		return
	}
	r.log.DebugContext(r.ctx, "binop",
		"op", e.Op,
		"left", pretty.Sprintf("%# v", l),
		"right", pretty.Sprintf("%# v", rv),
		"result", Serialize(result))
}
