// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense arrays consumed by
// the Ember autodiff engine.
//
// Example:
//
//	raw, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	ones := tensor.Ones(tensor.Shape{2, 2}, tensor.Float32)
package tensor

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// DType is the constraint for supported element types.
type DType = tensor.DType

// DataType is the runtime tag for a tensor's element type.
type DataType = tensor.DataType

// Supported element types.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape holds the dimensions of a tensor. An empty Shape is a rank-0
// scalar with one element.
type Shape = tensor.Shape

// RawTensor is a dense row-major array.
type RawTensor = tensor.RawTensor

// Backend supplies the arithmetic kernels the engine runs on.
type Backend = tensor.Backend

// NewRaw allocates a zero-filled tensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice builds a tensor from a row-major Go slice.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros returns a zero-filled tensor.
func Zeros(shape Shape, dtype DataType) *RawTensor {
	return tensor.Zeros(shape, dtype)
}

// Ones returns a tensor filled with ones.
func Ones(shape Shape, dtype DataType) *RawTensor {
	return tensor.Ones(shape, dtype)
}

// Full returns a tensor with every element set to value.
func Full(shape Shape, value float64, dtype DataType) *RawTensor {
	return tensor.Full(shape, value, dtype)
}

// BroadcastShapes applies NumPy broadcasting rules to a pair of shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
