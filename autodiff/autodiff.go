// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Operations on tracked tensors build an implicit computation graph; a
// backward call walks it and accumulates gradients into every upstream
// tensor that requires them.
//
// Example:
//
//	import (
//	    "github.com/ember-ml/ember/autodiff"
//	    "github.com/ember-ml/ember/backend/cpu"
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	func main() {
//	    b := cpu.New()
//	    x := autodiff.NewLeaf(tensor.Full(tensor.Shape{1}, 3, tensor.Float64), true, b)
//	    y, _ := x.Mul(x)      // y = x²
//	    _ = y.Backward()      // seeds with ones
//	    _ = x.Grad()          // dy/dx = 2x = [6]
//	}
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// Tensor is a dense array wrapped with gradient-tracking metadata.
type Tensor = autodiff.Tensor

// Function records one differentiable operation in the computation graph.
type Function = autodiff.Function

// OpKind tags a Function with the operation that produced its output.
type OpKind = autodiff.OpKind

// Supported differentiable operations.
const (
	OpAdd    OpKind = autodiff.OpAdd
	OpSub    OpKind = autodiff.OpSub
	OpNeg    OpKind = autodiff.OpNeg
	OpMul    OpKind = autodiff.OpMul
	OpDiv    OpKind = autodiff.OpDiv
	OpMatMul OpKind = autodiff.OpMatMul
	OpSum    OpKind = autodiff.OpSum
	OpExp    OpKind = autodiff.OpExp
	OpTanh   OpKind = autodiff.OpTanh
	OpReLU   OpKind = autodiff.OpReLU
)

// Errors reported by the engine.
var (
	ErrNoGradientPath         = autodiff.ErrNoGradientPath
	ErrAmbiguousGradientShape = autodiff.ErrAmbiguousGradientShape
	ErrShapeMismatch          = autodiff.ErrShapeMismatch
	ErrUnsupportedOperation   = autodiff.ErrUnsupportedOperation
	ErrGraphReleased          = autodiff.ErrGraphReleased
)

// NewLeaf creates a leaf tensor from a forward value.
func NewLeaf(value *tensor.RawTensor, requiresGrad bool, backend tensor.Backend) *Tensor {
	return autodiff.NewLeaf(value, requiresGrad, backend)
}
