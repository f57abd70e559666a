package tensor

import "fmt"

// FromSlice builds a RawTensor from a Go slice laid out in row-major
// order. The slice length must match the shape's element count.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	dtype := inferDataType[T]()
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(data) != raw.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, raw.NumElements())
	}

	switch dtype {
	case Float32:
		copy(raw.AsFloat32(), any(data).([]float32))
	case Float64:
		copy(raw.AsFloat64(), any(data).([]float64))
	}
	return raw, nil
}

// Zeros returns a zero-filled tensor.
// Panics on an invalid shape; shape construction is a programmer decision,
// not input parsing.
func Zeros(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		panic(err)
	}
	return raw
}

// Ones returns a tensor filled with ones.
func Ones(shape Shape, dtype DataType) *RawTensor {
	return Full(shape, 1, dtype)
}

// Full returns a tensor with every element set to value.
func Full(shape Shape, value float64, dtype DataType) *RawTensor {
	raw := Zeros(shape, dtype)
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		v := float32(value)
		for i := range data {
			data[i] = v
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = value
		}
	}
	return raw
}
