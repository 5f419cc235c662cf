// Package ndarray provides a dense N-dimensional array of float64 values
// backed by a flat row-major buffer.
package ndarray

import (
	"fmt"
	"math"

	"github.com/noron-ml/noron/internal/rng"
)

// NdArray is an N-dimensional array of float64 values.
//
// Elementwise operations allocate a new array and leave their operands
// unmodified. Fill, Zero, Set, Copy and Reshape mutate in place.
//
// Two handles may share storage through Ref or CopyRef. Mutations (values
// and shape) through either handle are then visible through both; use
// Clone for an independent copy.
type NdArray struct {
	st *storage
}

// New creates a zero-filled array with the given dimensions.
//
// Example:
//
//	a, err := ndarray.New(2, 3)
func New(dims ...int) (*NdArray, error) {
	shape := Shape(dims)
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &NdArray{st: newStorage(shape)}, nil
}

// FromSlice creates an array with the given dimensions from a copy of data.
func FromSlice(data []float64, dims ...int) (*NdArray, error) {
	a, err := New(dims...)
	if err != nil {
		return nil, err
	}
	if len(data) != a.Len() {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d", ErrLengthMismatch, a.st.shape, a.Len(), len(data))
	}
	copy(a.st.data, data)
	return a, nil
}

// Rank returns the number of dimensions.
func (a *NdArray) Rank() int {
	return len(a.st.shape)
}

// Len returns the total number of elements.
func (a *NdArray) Len() int {
	return len(a.st.data)
}

// Dims returns a copy of the array's dimensions.
func (a *NdArray) Dims() Shape {
	return a.st.shape.Clone()
}

// Data returns the flat buffer in row-major order.
//
// WARNING: the slice aliases the array's storage.
func (a *NdArray) Data() []float64 {
	return a.st.data
}

// Get returns the element at the given coordinates.
func (a *NdArray) Get(coords ...int) (float64, error) {
	idx, err := a.st.shape.Offset(coords)
	if err != nil {
		return 0, err
	}
	return a.st.data[idx], nil
}

// At returns the element at the given coordinates.
// Panics if the coordinates are invalid.
func (a *NdArray) At(coords ...int) float64 {
	v, err := a.Get(coords...)
	if err != nil {
		panic(err)
	}
	return v
}

// Set stores value at the given coordinates.
func (a *NdArray) Set(value float64, coords ...int) error {
	idx, err := a.st.shape.Offset(coords)
	if err != nil {
		return err
	}
	a.st.data[idx] = value
	return nil
}

// Reshape reinterprets the buffer with new dimensions. The element count
// must not change. Data is never moved.
func (a *NdArray) Reshape(dims ...int) error {
	shape := Shape(dims)
	if err := shape.Validate(); err != nil {
		return err
	}
	if n := shape.NumElements(); n != a.Len() {
		return fmt.Errorf("%w: cannot reshape %d elements to %v (%d elements)", ErrShape, a.Len(), shape, n)
	}
	a.st.shape = shape.Clone()
	return nil
}

// Clone returns a deep copy with independent storage.
func (a *NdArray) Clone() *NdArray {
	c := &NdArray{st: newStorage(a.st.shape)}
	copy(c.st.data, a.st.data)
	return c
}

// Copy overwrites this array's values with other's. Only the lengths
// must match; shapes may differ.
func (a *NdArray) Copy(other *NdArray) error {
	if a.Len() != other.Len() {
		return fmt.Errorf("%w: copy expects length %d, got %d", ErrLengthMismatch, a.Len(), other.Len())
	}
	copy(a.st.data, other.st.data)
	return nil
}

// CopyRef makes this handle alias other's storage. No data is copied.
func (a *NdArray) CopyRef(other *NdArray) *NdArray {
	if a.st == other.st {
		return a
	}
	other.st.addRef()
	a.st.release()
	a.st = other.st
	return a
}

// Ref returns a new handle sharing this array's storage.
func (a *NdArray) Ref() *NdArray {
	a.st.addRef()
	return &NdArray{st: a.st}
}

// Release drops this handle's reference to shared storage.
// The handle must not be used afterwards.
func (a *NdArray) Release() {
	a.st.release()
}

// Refs returns the number of live handles sharing this storage.
func (a *NdArray) Refs() int {
	return int(a.st.refs.Load())
}

// IsShared reports whether another handle aliases this storage.
func (a *NdArray) IsShared() bool {
	return a.Refs() > 1
}

// SharesStorage reports whether a and other alias the same storage.
func (a *NdArray) SharesStorage(other *NdArray) bool {
	return a.st == other.st
}

// Fill sets every element to c.
func (a *NdArray) Fill(c float64) *NdArray {
	for i := range a.st.data {
		a.st.data[i] = c
	}
	return a
}

// Zero sets every element to 0.
func (a *NdArray) Zero() *NdArray {
	return a.Fill(0)
}

// FillRandom fills the array from the process-wide sampler with mean 0
// and standard deviation sqrt(1/Len()).
func (a *NdArray) FillRandom() *NdArray {
	return a.FillRandomWith(rng.Default())
}

// FillRandomWith is FillRandom with an explicit sampler.
func (a *NdArray) FillRandomWith(g *rng.Gaussian) *NdArray {
	g.Fill(a.st.data, 0, math.Sqrt(1.0/float64(a.Len())))
	return a
}

// String returns a short description of the array.
func (a *NdArray) String() string {
	return fmt.Sprintf("NdArray[%v]", a.st.shape)
}
