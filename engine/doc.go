// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine is the public API for the scalar reverse-mode autodiff
// engine.
//
// A Value is a shared handle to a computation-graph node: every operation
// (Add, Sub, Mul, Div, Pow, Tanh, Exp, ReLU) allocates a fresh node that
// remembers its operands, and Backward on the final scalar propagates
// gradients through the recorded graph via the chain rule. Using the same
// Value in both operand slots of an operation is supported and accumulates
// one gradient contribution per slot.
package engine
