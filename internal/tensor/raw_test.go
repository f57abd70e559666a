package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice_RoundTrip(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, raw.Shape())
	assert.Equal(t, Float32, raw.DType())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, raw.AsFloat32())
}

func TestFromSlice_Float64(t *testing.T) {
	raw, err := FromSlice([]float64{1.5, -2.5}, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, Float64, raw.DType())
	assert.Equal(t, []float64{1.5, -2.5}, raw.AsFloat64())
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
}

func TestNewRaw_InvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{2, 0}, Float32)
	require.Error(t, err)
}

func TestNewRaw_ScalarHasOneElement(t *testing.T) {
	raw, err := NewRaw(Shape{}, Float64)
	require.NoError(t, err)
	assert.Equal(t, 1, raw.NumElements())
	assert.Len(t, raw.AsFloat64(), 1)
}

func TestRawTensor_CloneIsIndependent(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	clone := raw.Clone()
	clone.AsFloat32()[0] = 99

	assert.Equal(t, float32(1), raw.AsFloat32()[0])
	assert.Equal(t, float32(99), clone.AsFloat32()[0])
}

func TestRawTensor_WithShape(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3, 4}, Shape{4})
	require.NoError(t, err)

	view, err := raw.WithShape(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, view.Shape())
	assert.Equal(t, raw.AsFloat32(), view.AsFloat32())

	_, err = raw.WithShape(Shape{3})
	require.Error(t, err)
}

func TestCreation_Fill(t *testing.T) {
	ones := Ones(Shape{2, 2}, Float32)
	assert.Equal(t, []float32{1, 1, 1, 1}, ones.AsFloat32())

	full := Full(Shape{3}, -2.5, Float64)
	assert.Equal(t, []float64{-2.5, -2.5, -2.5}, full.AsFloat64())

	zeros := Zeros(Shape{2}, Float32)
	assert.Equal(t, []float32{0, 0}, zeros.AsFloat32())
}

func TestDataType_String(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
}
