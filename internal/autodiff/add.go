package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Add returns t + other element-wise with NumPy-style broadcasting.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if err := checkBinary("add", t, other); err != nil {
		return nil, err
	}
	out := t.backend.Add(t.value, other.value)
	return derive(OpAdd, out, []*Tensor{t, other}, nil, nil), nil
}

// addBackward: d(a+b)/da = d(a+b)/db = 1, so the incoming gradient flows
// to both inputs, reduced over any broadcast axes.
func addBackward(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	a, c := fn.inputs[0], fn.inputs[1]
	return []*tensor.RawTensor{
		reduceBroadcast(grad, a.value.Shape(), b),
		reduceBroadcast(grad, c.value.Shape(), b),
	}
}
