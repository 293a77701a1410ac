// Package nn implements a scalar multilayer perceptron on top of the
// autodiff engine.
//
// This package provides the building blocks for small trainable models:
//   - Module interface: parameter enumeration and gradient reset
//   - Neuron: tanh(bias + Σ inputᵢ·weightᵢ) over shared Values
//   - Layer: a row of equal-arity neurons fed the same input
//   - MLP: layers chained by a size sequence
//   - SquaredErrorSum: differentiable squared-error loss
//
// Everything is built from engine.Value operations, so a Forward pass
// constructs the computation graph that a later Backward call
// differentiates.
package nn

import "github.com/born-ml/scalargrad/internal/engine"

// Module is the base interface for trainable components.
//
// Parameters returns every trainable leaf Value owned by the module, in a
// stable order, so optimizers can update them in place. ZeroGrad resets
// the gradient of each parameter before a fresh backward pass.
type Module interface {
	// Parameters returns all trainable parameters of this module,
	// including nested module parameters.
	Parameters() []*engine.Value

	// ZeroGrad resets the gradient of every parameter to zero.
	ZeroGrad()
}
