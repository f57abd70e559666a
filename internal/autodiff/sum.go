package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Sum reduces every element of t to a rank-0 scalar. The pre-reduction
// shape is saved so the backward pass can expand the gradient again.
func (t *Tensor) Sum() (*Tensor, error) {
	out := t.backend.Sum(t.value)
	return derive(OpSum, out, []*Tensor{t}, nil, t.value.Shape().Clone()), nil
}

// sumBackward: every input element contributed with weight 1, so the
// scalar gradient is broadcast uniformly over the saved input shape.
func sumBackward(fn *Function, grad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		tensor.Full(fn.savedShape, scalarValue(grad), grad.DType()),
	}
}
