// Package zin evaluates a small arithmetic and boolean expression language.
//
// Trees are built directly from the Expr variants; there is no parser. An
// evaluation either produces a value, serialized as text by TopEval, or fails
// as a whole.
package zin

import "context"

var defaultEvaluator = NewEvaluator(DefaultConfig())

// Interp evaluates e with the default configuration.
func Interp(e Expr) (Value, error) {
	return defaultEvaluator.Interp(context.Background(), e)
}

// TopEval evaluates e with the default configuration and serializes the
// result. On failure the string is empty.
func TopEval(e Expr) (string, error) {
	return defaultEvaluator.TopEval(context.Background(), e)
}

// MustTopEval is like TopEval but panics on failure.
func MustTopEval(e Expr) string {
	out, err := TopEval(e)
	if err != nil {
		panic(err)
	}
	return out
}
