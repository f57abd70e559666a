package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/tensor"
)

func TestMatMul(t *testing.T) {
	b := cpu.New()

	// (2,3) @ (3,2) -> (2,2)
	a := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	c := fromF32(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	out := b.MatMul(a, c)
	assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
	assert.Equal(t, []float32{58, 64, 139, 154}, out.AsFloat32())
}

func TestMatMul_Identity(t *testing.T) {
	b := cpu.New()
	a := fromF32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	eye := fromF32(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2})

	assert.Equal(t, a.AsFloat32(), b.MatMul(a, eye).AsFloat32())
	assert.Equal(t, a.AsFloat32(), b.MatMul(eye, a).AsFloat32())
}

func TestMatMul_InnerMismatchPanics(t *testing.T) {
	b := cpu.New()
	a := fromF32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	c := fromF32(t, []float32{1, 2, 3}, tensor.Shape{3, 1})

	assert.Panics(t, func() { b.MatMul(a, c) })
}

func TestTranspose(t *testing.T) {
	b := cpu.New()
	a := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out := b.Transpose(a)
	assert.Equal(t, tensor.Shape{3, 2}, out.Shape())
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, out.AsFloat32())
}

func TestReshape(t *testing.T) {
	b := cpu.New()
	a := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out := b.Reshape(a, tensor.Shape{3, 2})
	assert.Equal(t, tensor.Shape{3, 2}, out.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, out.AsFloat32())

	assert.Panics(t, func() { b.Reshape(a, tensor.Shape{4}) })
}
