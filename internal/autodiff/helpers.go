package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// checkBinary validates the operands of an element-wise operation before
// any forward work happens: same dtype, broadcast-compatible shapes.
func checkBinary(name string, a, b *Tensor) error {
	if a.value.DType() != b.value.DType() {
		return fmt.Errorf("%w: %s: dtype mismatch %s vs %s",
			ErrUnsupportedOperation, name, a.value.DType(), b.value.DType())
	}
	if _, _, err := tensor.BroadcastShapes(a.value.Shape(), b.value.Shape()); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnsupportedOperation, name, err)
	}
	return nil
}

// reduceBroadcast shrinks a gradient back to the shape of an operand that
// was broadcast during the forward pass: the gradient is summed over every
// expanded axis. When the shapes already match the gradient is cloned, so
// rules never hand out an array the caller also holds.
func reduceBroadcast(grad *tensor.RawTensor, target tensor.Shape, b tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()
	if gradShape.Equal(target) {
		return grad.Clone()
	}

	if len(target) == 0 {
		return b.Sum(grad)
	}

	// Broadcasting aligns shapes from the right: fold away the leading
	// dimensions the target never had, then sum where the target is 1.
	result := grad
	for len(result.Shape()) > len(target) {
		result = b.SumDim(result, 0, false)
	}
	for i, dim := range target {
		if dim == 1 && result.Shape()[i] > 1 {
			result = b.SumDim(result, i, true)
		}
	}

	if !result.Shape().Equal(target) {
		result = b.Reshape(result, target)
	}
	return result
}

// scalarValue reads the single element of a one-element tensor as float64.
func scalarValue(t *tensor.RawTensor) float64 {
	switch t.DType() {
	case tensor.Float32:
		return float64(t.AsFloat32()[0])
	case tensor.Float64:
		return t.AsFloat64()[0]
	default:
		panic(fmt.Sprintf("autodiff: unsupported dtype %s", t.DType()))
	}
}
