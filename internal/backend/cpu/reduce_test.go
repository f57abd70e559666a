package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/tensor"
)

func TestSum(t *testing.T) {
	b := cpu.New()
	a := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out := b.Sum(a)
	assert.Equal(t, tensor.Shape{}, out.Shape())
	assert.Equal(t, []float32{21}, out.AsFloat32())
}

func TestSumDim_KeepDim(t *testing.T) {
	b := cpu.New()
	a := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	rows := b.SumDim(a, 0, true)
	assert.Equal(t, tensor.Shape{1, 3}, rows.Shape())
	assert.Equal(t, []float32{5, 7, 9}, rows.AsFloat32())

	cols := b.SumDim(a, 1, true)
	assert.Equal(t, tensor.Shape{2, 1}, cols.Shape())
	assert.Equal(t, []float32{6, 15}, cols.AsFloat32())
}

func TestSumDim_DropDim(t *testing.T) {
	b := cpu.New()
	a := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out := b.SumDim(a, 0, false)
	assert.Equal(t, tensor.Shape{3}, out.Shape())
	assert.Equal(t, []float32{5, 7, 9}, out.AsFloat32())
}

func TestSumDim_NegativeDim(t *testing.T) {
	b := cpu.New()
	a := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out := b.SumDim(a, -1, false)
	assert.Equal(t, tensor.Shape{2}, out.Shape())
	assert.Equal(t, []float32{6, 15}, out.AsFloat32())
}

func TestSumDim_MiddleAxis(t *testing.T) {
	b := cpu.New()
	data := make([]float32, 24)
	for i := range data {
		data[i] = float32(i)
	}
	a := fromF32(t, data, tensor.Shape{2, 3, 4})

	out := b.SumDim(a, 1, false)
	assert.Equal(t, tensor.Shape{2, 4}, out.Shape())
	// Sum over the middle axis: out[o,i] = Σ_s in[o,s,i].
	assert.Equal(t, []float32{12, 15, 18, 21, 48, 51, 54, 57}, out.AsFloat32())
}
