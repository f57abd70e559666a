// Package tensor provides the dense array type consumed by the Ember
// autodiff engine: shapes with NumPy-style broadcasting, an untyped
// row-major RawTensor, and the Backend interface that supplies the
// arithmetic kernels.
package tensor

// DType is the constraint for element types the engine differentiates
// through. Gradients are only meaningful for floating-point data, so the
// integer and boolean types common in general tensor libraries are not
// part of this module.
type DType interface {
	~float32 | ~float64
}

// DataType is the runtime tag for a RawTensor's element type.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType maps a generic element type to its runtime tag.
func inferDataType[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
