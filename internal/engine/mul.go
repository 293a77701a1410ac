package engine

// mulOp records a multiplication: output = left * right.
//
// Backward pass:
//   - d(l*r)/dl = r, so grad_l = r * outputGrad
//   - d(l*r)/dr = l, so grad_r = l * outputGrad
type mulOp struct {
	left  *Value
	right *Value
}

func mul(left, right *Value) *Value {
	return &Value{
		data: left.data * right.data,
		op:   &mulOp{left: left, right: right},
	}
}

// Backward computes the operand contributions for multiplication. For an
// aliased square x*x the two slots each contribute x * outputGrad, summing
// to the expected 2x * outputGrad.
func (op *mulOp) Backward(outputGrad float32) []float32 {
	return []float32{
		op.right.data * outputGrad,
		op.left.data * outputGrad,
	}
}

// Inputs returns the operand slots [left, right].
func (op *mulOp) Inputs() []*Value {
	return []*Value{op.left, op.right}
}
