// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package engine

import "github.com/born-ml/scalargrad/internal/engine"

// Value is a node in the scalar computation graph. All arithmetic and
// activation methods on Value build the graph that Backward differentiates.
type Value = engine.Value

// Operation records how a non-leaf Value was produced.
type Operation = engine.Operation

// New creates a leaf Value with the given scalar, zero gradient, and no
// producing operation.
//
// Example:
//
//	x := engine.New(2.0)
//	y := x.Mul(x) // y = x²
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
func New(data float32) *Value {
	return engine.New(data)
}
