package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// MatMul returns the 2-D matrix product t @ other: (M, K) @ (K, N) → (M, N).
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	aShape, bShape := t.value.Shape(), other.value.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		return nil, fmt.Errorf("%w: matmul: need 2D operands, got %dD and %dD",
			ErrUnsupportedOperation, len(aShape), len(bShape))
	}
	if aShape[1] != bShape[0] {
		return nil, fmt.Errorf("%w: matmul: inner dimensions disagree: [%d,%d] @ [%d,%d]",
			ErrUnsupportedOperation, aShape[0], aShape[1], bShape[0], bShape[1])
	}
	if t.value.DType() != other.value.DType() {
		return nil, fmt.Errorf("%w: matmul: dtype mismatch %s vs %s",
			ErrUnsupportedOperation, t.value.DType(), other.value.DType())
	}

	out := t.backend.MatMul(t.value, other.value)
	saved := []*tensor.RawTensor{t.value, other.value}
	return derive(OpMatMul, out, []*Tensor{t, other}, saved, nil), nil
}

// matmulBackward: for C = A @ B,
//
//	∂L/∂A = grad @ Bᵀ
//	∂L/∂B = Aᵀ @ grad
func matmulBackward(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	aVal, cVal := fn.saved[0], fn.saved[1]
	return []*tensor.RawTensor{
		b.MatMul(grad, b.Transpose(cVal)),
		b.MatMul(b.Transpose(aVal), grad),
	}
}
