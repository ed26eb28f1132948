package zin

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// EvalAll evaluates independent trees concurrently, at most
// Config.Parallelism at a time, and returns their serialized values in input
// order.
//
// The first failure stops trees that have not started yet and is returned.
func (ev *Evaluator) EvalAll(ctx context.Context, exprs []Expr) ([]string, error) {
	out := make([]string, len(exprs))

	eg, ctx := errgroup.WithContext(ctx)
	if ev.config.Parallelism > 0 {
		eg.SetLimit(ev.config.Parallelism)
	}
	for i, e := range exprs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := ev.TopEval(ctx, e)
			if err != nil {
				return errors.Wrapf(err, "expression %d", i)
			}
			out[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
