package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Sub returns t - other element-wise with broadcasting.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	if err := checkBinary("sub", t, other); err != nil {
		return nil, err
	}
	out := t.backend.Sub(t.value, other.value)
	return derive(OpSub, out, []*Tensor{t, other}, nil, nil), nil
}

// subBackward: d(a-b)/da = 1, d(a-b)/db = -1.
func subBackward(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	a, c := fn.inputs[0], fn.inputs[1]
	return []*tensor.RawTensor{
		reduceBroadcast(grad, a.value.Shape(), b),
		reduceBroadcast(b.Neg(grad), c.value.Shape(), b),
	}
}
