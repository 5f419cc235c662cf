// Copyright 2026 Noron Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides dense N-dimensional float64 arrays.
//
// # Overview
//
// An NdArray owns a flat row-major buffer and a shape. The first listed
// dimension has the largest stride, so for a 2x3 array the elements at
// (0, 2) and (1, 0) sit at flat positions 2 and 3.
//
// # Basic Usage
//
//	a, err := ndarray.New(2, 2)
//	if err != nil {
//	    return err
//	}
//	b := a.Fill(3).AddScalar(2) // all 5, a is unchanged
//
// # Mutation and Aliasing
//
// Elementwise operations always return a new array. Fill, Zero, Set, Copy
// and Reshape work in place. Ref and CopyRef create handles that share one
// storage (values and shape); Clone creates an independent copy.
//
// # Random Initialization
//
// FillRandom draws from a Gaussian with mean 0 and standard deviation
// sqrt(1/Len()). The sampler uses the ratio-of-uniforms rejection method.
// Pass a seeded sampler to FillRandomWith for reproducible results:
//
//	g := ndarray.NewGaussian(42)
//	a.FillRandomWith(g)
//
// # Errors
//
// Operations return errors wrapping ErrShape, ErrDimensionMismatch,
// ErrLengthMismatch or ErrIndexOutOfRange. A failed operation never
// leaves an array partially updated.
package ndarray
