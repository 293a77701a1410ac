// Package engine implements reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation allocates a fresh Value node that records the
// Operation which produced it, so a computation builds a directed acyclic
// graph as a side effect of being evaluated. Calling Backward on the final
// scalar walks that graph in reverse and accumulates d(final)/d(node) into
// every node's gradient via the chain rule.
//
// Usage:
//
//	a := engine.New(2.0)
//	b := engine.New(2.0)
//	x := a.Add(b).Mul(engine.New(3.0)) // x = (a + b) * 3
//
//	x.Backward()
//	fmt.Println(a.Grad()) // dx/da = 3.0
//
// Values are shared by pointer: using the same *Value in both operand slots
// of an operation (x.Mul(x), x.Add(x)) is the supported way to express a
// value consumed twice, and the backward pass accumulates one gradient
// contribution per operand slot.
package engine

import "fmt"

// Value is a node in the computation graph.
//
// It holds the scalar forward value, the gradient accumulated by the most
// recent Backward call, and the Operation that produced it (nil for leaf
// nodes such as inputs and trainable parameters).
//
// All arithmetic goes through Value methods and returns new Values; operand
// values and gradients are never mutated by the forward pass.
type Value struct {
	data float32
	grad float32
	op   Operation // nil for leaf nodes
}

// New creates a leaf Value with the given scalar, zero gradient, and no
// producing operation.
func New(data float32) *Value {
	return &Value{data: data}
}

// Data returns the scalar forward value.
func (v *Value) Data() float32 {
	return v.data
}

// Grad returns the gradient accumulated by the most recent Backward call.
// Gradients never reset implicitly; call ZeroGrad between backward passes.
func (v *Value) Grad() float32 {
	return v.grad
}

// AddData adds delta to the scalar value in place.
//
// This is the parameter-update hook for gradient descent: the optimizer
// writes directly into long-lived leaf nodes. Gradient and producing
// operation are untouched.
func (v *Value) AddData(delta float32) {
	v.data += delta
}

// ZeroGrad resets this node's gradient to zero. It does not recurse into
// operands; callers reset each parameter individually.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Add returns a new Value computing v + other.
func (v *Value) Add(other *Value) *Value {
	return add(v, other)
}

// Sub returns a new Value computing v - other.
//
// Subtraction is composed as v + (-1 * other) rather than being a distinct
// operator, so it introduces one extra intermediate node.
func (v *Value) Sub(other *Value) *Value {
	return add(v, other.Neg())
}

// Neg returns a new Value computing -v, composed as v * -1.
func (v *Value) Neg() *Value {
	return mul(v, New(-1))
}

// Mul returns a new Value computing v * other.
func (v *Value) Mul(other *Value) *Value {
	return mul(v, other)
}

// Div returns a new Value computing v / other, composed as v * other^-1.
// Division by zero is not guarded; the resulting Inf/NaN propagates through
// the graph like any other float32.
func (v *Value) Div(other *Value) *Value {
	return mul(v, pow(other, -1))
}

// Pow returns a new Value computing v raised to a constant exponent. The
// exponent is a plain float32, not a graph node, and receives no gradient.
func (v *Value) Pow(exponent float32) *Value {
	return pow(v, exponent)
}

// Tanh returns a new Value computing the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	return tanh(v)
}

// Exp returns a new Value computing e raised to v.
func (v *Value) Exp() *Value {
	return exp(v)
}

// ReLU returns a new Value computing max(0, v).
func (v *Value) ReLU() *Value {
	return relu(v)
}

// String implements fmt.Stringer for debugging.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data: %v, grad: %v)", v.data, v.grad)
}
