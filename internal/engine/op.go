package engine

// Operation records how a Value was produced. Each operator implements it
// in its own file (add.go, mul.go, pow.go, tanh.go, exp.go, relu.go).
//
// An Operation holds references to its operand Values, sharing them with
// whoever else uses them. Operand slots may hold the same *Value twice;
// Backward still returns one contribution per slot and the engine
// accumulates both.
type Operation interface {
	// Inputs returns the operand Values of this operation, one per slot.
	Inputs() []*Value

	// Backward computes the gradient contribution for each operand slot
	// given the gradient of the operation's output, in the same order as
	// Inputs. It must not mutate any Value; the backward engine performs
	// the accumulation.
	//
	// Example for addOp:
	//   inputs: [l, r]
	//   outputGrad: dL/d(l+r)
	//   returns: [dL/d(l+r), dL/d(l+r)] (gradient flows equally to both)
	Backward(outputGrad float32) []float32
}
