package autodiff_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/tensor"
)

func cpuBackend() tensor.Backend {
	return cpu.New()
}

// leaf builds a float32 leaf tensor on the CPU backend.
func leaf(t *testing.T, data []float32, shape tensor.Shape, requiresGrad bool) *autodiff.Tensor {
	t.Helper()
	raw, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return autodiff.NewLeaf(raw, requiresGrad, cpu.New())
}

func TestRequiresGradContagion(t *testing.T) {
	tests := []struct {
		name string
		a, b bool
		want bool
	}{
		{name: "both tracked", a: true, b: true, want: true},
		{name: "left tracked", a: true, b: false, want: true},
		{name: "right tracked", a: false, b: true, want: true},
		{name: "neither tracked", a: false, b: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := leaf(t, []float32{1, 2}, tensor.Shape{2}, tt.a)
			b := leaf(t, []float32{3, 4}, tensor.Shape{2}, tt.b)

			out, err := a.Add(b)
			require.NoError(t, err)

			assert.Equal(t, tt.want, out.RequiresGrad())
			if tt.want {
				assert.NotNil(t, out.GradFn())
			} else {
				assert.Nil(t, out.GradFn())
			}
		})
	}
}

func TestLeafHasNoGradFn(t *testing.T) {
	tracked := leaf(t, []float32{1}, tensor.Shape{1}, true)
	constant := leaf(t, []float32{1}, tensor.Shape{1}, false)

	assert.Nil(t, tracked.GradFn())
	assert.Nil(t, constant.GradFn())
	assert.True(t, tracked.IsLeaf())
	assert.True(t, constant.IsLeaf())
}

func TestUntrackedResultRejectsBackward(t *testing.T) {
	a := leaf(t, []float32{1}, tensor.Shape{1}, false)
	b := leaf(t, []float32{2}, tensor.Shape{1}, false)

	out, err := a.Mul(b)
	require.NoError(t, err)
	require.Nil(t, out.GradFn())

	err = out.Backward()
	assert.ErrorIs(t, err, autodiff.ErrNoGradientPath)
	assert.Nil(t, a.Grad())
	assert.Nil(t, b.Grad())
}

func TestGradFnIdentity(t *testing.T) {
	a := leaf(t, []float32{1}, tensor.Shape{1}, true)

	x, err := a.Add(a)
	require.NoError(t, err)
	y, err := a.Add(a)
	require.NoError(t, err)

	require.NotNil(t, x.GradFn())
	assert.Equal(t, autodiff.OpAdd, x.GradFn().Kind())
	assert.Equal(t, 2, x.GradFn().NumInputs())

	// IDs are opaque but distinct per node.
	assert.NotEqual(t, uuid.Nil, x.GradFn().ID())
	assert.NotEqual(t, x.GradFn().ID(), y.GradFn().ID())
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "add", autodiff.OpAdd.String())
	assert.Equal(t, "matmul", autodiff.OpMatMul.String())
	assert.Equal(t, "relu", autodiff.OpReLU.String())
}

func TestZeroGrad(t *testing.T) {
	x := leaf(t, []float32{3}, tensor.Shape{1}, true)
	y, err := x.Mul(x)
	require.NoError(t, err)
	require.NoError(t, y.Backward())
	require.NotNil(t, x.Grad())

	x.ZeroGrad()
	assert.Nil(t, x.Grad())

	// After clearing, a fresh backward pass starts from zero again.
	z, err := x.Mul(x)
	require.NoError(t, err)
	require.NoError(t, z.Backward())
	assert.Equal(t, []float32{6}, x.Grad().AsFloat32())
}

func TestValueAccessors(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2}, true)

	assert.Equal(t, tensor.Shape{2, 2}, x.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4}, x.Value().AsFloat32())
	assert.True(t, x.RequiresGrad())
	assert.Nil(t, x.Grad())
}
