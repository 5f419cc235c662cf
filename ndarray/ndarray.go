// Copyright 2026 Noron Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/noron-ml/noron/internal/ndarray"
	"github.com/noron-ml/noron/internal/rng"
	"github.com/noron-ml/noron/internal/volume"
)

// NdArray is a dense N-dimensional array of float64 values.
type NdArray = ndarray.NdArray

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 2x3x4 array.
type Shape = ndarray.Shape

// Gaussian is a seedable normal-distribution sampler.
type Gaussian = rng.Gaussian

// Volume is a 3D block of values with a gradient buffer of the same size.
type Volume = volume.Volume

// Errors returned by array operations.
var (
	ErrShape             = ndarray.ErrShape
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrLengthMismatch    = ndarray.ErrLengthMismatch
	ErrIndexOutOfRange   = ndarray.ErrIndexOutOfRange
)

// New creates a zero-filled array with the given dimensions.
func New(dims ...int) (*NdArray, error) {
	return ndarray.New(dims...)
}

// FromSlice creates an array from a copy of data.
func FromSlice(data []float64, dims ...int) (*NdArray, error) {
	return ndarray.FromSlice(data, dims...)
}

// NewGaussian creates a sampler with a deterministic seed.
func NewGaussian(seed int64) *Gaussian {
	return rng.NewGaussian(seed)
}

// DefaultGaussian returns the process-wide sampler used by FillRandom.
func DefaultGaussian() *Gaussian {
	return rng.Default()
}

// NewVolume creates a randomly initialized sx x sy x sz volume.
// A nil sampler uses DefaultGaussian.
func NewVolume(sx, sy, sz int, g *Gaussian) (*Volume, error) {
	return volume.New(sx, sy, sz, g)
}
