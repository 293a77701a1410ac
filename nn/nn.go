// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/scalargrad/internal/engine"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module is the common interface for all trainable components.
type Module = nn.Module

// Neuron is a single tanh unit: tanh(bias + Σ inputᵢ·weightᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs, initialized uniform-random
// in [-1, 1).
func NewNeuron(nin int) *Neuron {
	return nn.NewNeuron(nin)
}

// Layer is a row of equal-arity neurons sharing one input.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int) *Layer {
	return nn.NewLayer(nin, nout)
}

// MLP is a multilayer perceptron built from a layer-size sequence.
type MLP = nn.MLP

// NewMLP creates a perceptron from a layer-size sequence.
//
// Example:
//
//	model := nn.NewMLP([]int{3, 5, 5, 1}) // 3 inputs, two hidden layers of 5, 1 output
func NewMLP(sizes []int) *MLP {
	return nn.NewMLP(sizes)
}

// SquaredErrorSum computes the differentiable loss Σ (predictionᵢ - targetᵢ)².
func SquaredErrorSum(predictions, targets []*engine.Value) *engine.Value {
	return nn.SquaredErrorSum(predictions, targets)
}
