package mcts

import "github.com/chewxy/math32"

// Float is the value type of node statistics and evaluation results.
type Float = float32

// sigmoid is the odd sigmoid 2/(1+e^-x)-1, mapping onto (-1, 1). It shapes
// the length and score bonuses of the evaluator.
func sigmoid(x Float) Float {
	return 2/(1+math32.Exp(-x)) - 1
}
