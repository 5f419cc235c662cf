// Package volume provides a 3D array of values that carries a gradient
// buffer of the same size alongside it.
package volume

import (
	"fmt"

	"github.com/noron-ml/noron/internal/ndarray"
	"github.com/noron-ml/noron/internal/rng"
)

// Volume is a width x height x depth block of values with matching gradients.
//
// Element (x, y, z) lives at flat index ((sx*y)+x)*sz + z, so the backing
// arrays have shape {sy, sx, sz}.
type Volume struct {
	sx, sy, sz int
	values     *ndarray.NdArray
	grads      *ndarray.NdArray
}

func alloc(sx, sy, sz int) (*Volume, error) {
	values, err := ndarray.New(sy, sx, sz)
	if err != nil {
		return nil, fmt.Errorf("volume %dx%dx%d: %w", sx, sy, sz, err)
	}
	return &Volume{
		sx:     sx,
		sy:     sy,
		sz:     sz,
		values: values,
		grads:  values.Clone(),
	}, nil
}

// New creates a volume with values drawn from N(0, sqrt(1/n)) and zero gradients.
// A nil sampler uses rng.Default().
func New(sx, sy, sz int, g *rng.Gaussian) (*Volume, error) {
	v, err := alloc(sx, sy, sz)
	if err != nil {
		return nil, err
	}
	if g == nil {
		g = rng.Default()
	}
	v.values.FillRandomWith(g)
	return v, nil
}

// NewFilled creates a volume with every value set to c and zero gradients.
func NewFilled(sx, sy, sz int, c float64) (*Volume, error) {
	v, err := alloc(sx, sy, sz)
	if err != nil {
		return nil, err
	}
	v.values.Fill(c)
	return v, nil
}

// Sx returns the width.
func (v *Volume) Sx() int { return v.sx }

// Sy returns the height.
func (v *Volume) Sy() int { return v.sy }

// Sz returns the depth.
func (v *Volume) Sz() int { return v.sz }

// Values returns the value array. It shares storage with the volume.
func (v *Volume) Values() *ndarray.NdArray { return v.values }

// Grads returns the gradient array. It shares storage with the volume.
func (v *Volume) Grads() *ndarray.NdArray { return v.grads }

func (v *Volume) Value(x, y, z int) (float64, error) {
	return v.values.Get(y, x, z)
}

func (v *Volume) SetValue(x, y, z int, value float64) error {
	return v.values.Set(value, y, x, z)
}

func (v *Volume) AddValue(x, y, z int, delta float64) error {
	return addAt(v.values, delta, y, x, z)
}

func (v *Volume) Grad(x, y, z int) (float64, error) {
	return v.grads.Get(y, x, z)
}

func (v *Volume) SetGrad(x, y, z int, value float64) error {
	return v.grads.Set(value, y, x, z)
}

func (v *Volume) AddGrad(x, y, z int, delta float64) error {
	return addAt(v.grads, delta, y, x, z)
}

func addAt(a *ndarray.NdArray, delta float64, coords ...int) error {
	cur, err := a.Get(coords...)
	if err != nil {
		return err
	}
	return a.Set(cur+delta, coords...)
}

// SetConstant sets every value to c. Gradients are untouched.
func (v *Volume) SetConstant(c float64) {
	v.values.Fill(c)
}

// AddVolume adds other's values to this volume elementwise.
func (v *Volume) AddVolume(other *Volume) error {
	return v.AddScaledVolume(other, 1)
}

// AddScaledVolume adds scale*other's values to this volume elementwise.
func (v *Volume) AddScaledVolume(other *Volume, scale float64) error {
	if v.values.Len() != other.values.Len() {
		return fmt.Errorf("%w: volume has %d values, other has %d",
			ndarray.ErrLengthMismatch, v.values.Len(), other.values.Len())
	}
	dst := v.values.Data()
	for i, x := range other.values.Data() {
		dst[i] += scale * x
	}
	return nil
}

// Clone returns a deep copy of values and gradients.
func (v *Volume) Clone() *Volume {
	return &Volume{
		sx:     v.sx,
		sy:     v.sy,
		sz:     v.sz,
		values: v.values.Clone(),
		grads:  v.grads.Clone(),
	}
}

// ZeroClone returns a volume of the same size with zero values and gradients.
func (v *Volume) ZeroClone() *Volume {
	c := v.Clone()
	c.values.Zero()
	c.grads.Zero()
	return c
}
