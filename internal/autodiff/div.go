package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Div returns t / other element-wise with broadcasting.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	if err := checkBinary("div", t, other); err != nil {
		return nil, err
	}
	out := t.backend.Div(t.value, other.value)
	saved := []*tensor.RawTensor{t.value, other.value}
	return derive(OpDiv, out, []*Tensor{t, other}, saved, nil), nil
}

// divBackward: d(a/b)/da = 1/b, d(a/b)/db = -a/b².
func divBackward(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	aVal, cVal := fn.saved[0], fn.saved[1]

	gradA := b.Div(grad, cVal)
	gradC := b.Neg(b.Div(b.Mul(grad, aVal), b.Mul(cVal, cVal)))

	return []*tensor.RawTensor{
		reduceBroadcast(gradA, aVal.Shape(), b),
		reduceBroadcast(gradC, cVal.Shape(), b),
	}
}
