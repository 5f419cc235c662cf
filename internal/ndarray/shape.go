package ndarray

import (
	"fmt"
	"strings"
)

// Shape represents the dimensions of an array.
// The first dimension has the largest stride.
type Shape []int

// NumElements returns the product of all dimensions.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one dimension and
// that every dimension is positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: at least one dimension required", ErrShape)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns row-major strides: stride[i] is the product of all
// dimensions after i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset maps coordinates to a flat buffer index.
func (s Shape) Offset(coords []int) (int, error) {
	if len(coords) != len(s) {
		return 0, fmt.Errorf("%w: expected %d coordinates, got %d", ErrDimensionMismatch, len(s), len(coords))
	}

	idx := 0
	for i, c := range coords {
		if c < 0 || c >= s[i] {
			return 0, fmt.Errorf("%w: coordinate %d is %d (dimension size %d)", ErrIndexOutOfRange, i, c, s[i])
		}
		idx = idx*s[i] + c
	}
	return idx, nil
}

// String formats the shape as 2x3x4.
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	return strings.Join(parts, "x")
}
