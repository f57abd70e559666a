package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// ReLU returns max(0, t) element-wise. The input is saved: the backward
// rule needs to know which elements were clipped.
func (t *Tensor) ReLU() (*Tensor, error) {
	out := t.backend.ReLU(t.value)
	return derive(OpReLU, out, []*Tensor{t}, []*tensor.RawTensor{t.value}, nil), nil
}

// reluBackward: the gradient passes through where x > 0 and is zero
// elsewhere.
func reluBackward(fn *Function, grad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := fn.saved[0]
	masked := grad.Clone()

	switch x.DType() {
	case tensor.Float32:
		xData, gData := x.AsFloat32(), masked.AsFloat32()
		for i, v := range xData {
			if v <= 0 {
				gData[i] = 0
			}
		}
	case tensor.Float64:
		xData, gData := x.AsFloat64(), masked.AsFloat64()
		for i, v := range xData {
			if v <= 0 {
				gData[i] = 0
			}
		}
	}
	return []*tensor.RawTensor{masked}
}
