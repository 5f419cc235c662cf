// Package rng provides the pseudorandom Gaussian sampler used to initialize arrays.
package rng

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Uniform is a source of uniform samples on [0, 1).
// *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// Gaussian draws samples from a normal distribution using the
// ratio-of-uniforms rejection method (Leva's algorithm).
//
// A Gaussian is safe for concurrent use.
type Gaussian struct {
	mu  sync.Mutex
	src Uniform
}

// NewGaussian creates a sampler with a deterministic seed.
//
// Example:
//
//	g := rng.NewGaussian(42)
//	x := g.Sample(0, 1)
func NewGaussian(seed int64) *Gaussian {
	return &Gaussian{
		src: rand.New(rand.NewSource(seed)), //nolint:gosec // G404: statistical sampling, not cryptography
	}
}

// NewGaussianFrom creates a sampler over an existing uniform source.
func NewGaussianFrom(src Uniform) *Gaussian {
	return &Gaussian{src: src}
}

var (
	defaultOnce sync.Once
	defaultGen  *Gaussian
)

// Default returns the process-wide sampler.
// It is seeded from the wall clock on first use.
func Default() *Gaussian {
	defaultOnce.Do(func() {
		defaultGen = NewGaussian(time.Now().UnixNano())
	})
	return defaultGen
}

// Sample returns one draw from Normal(mu, sigma).
func (g *Gaussian) Sample(mu, sigma float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return mu + sigma*g.standard()
}

// Fill overwrites dst with independent draws from Normal(mu, sigma).
func (g *Gaussian) Fill(dst []float64, mu, sigma float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range dst {
		dst[i] = mu + sigma*g.standard()
	}
}

// Acceptance bounds for the ratio-of-uniforms test.
const (
	levaS  = 0.449871
	levaT  = 0.386595
	levaA  = 0.19600
	levaB  = 0.25472
	levaR1 = 0.27597
	levaR2 = 0.27846
	levaV  = 1.7156 // 2*sqrt(2/e)
)

// standard returns a N(0, 1) sample. Caller must hold g.mu.
func (g *Gaussian) standard() float64 {
	for {
		// u in (0, 1], so log(u) is finite.
		u := 1 - g.src.Float64()
		v := levaV * (g.src.Float64() - 0.5)

		x := u - levaS
		y := math.Abs(v) + levaT
		q := x*x + y*(levaA*y-levaB*x)

		if q < levaR1 {
			return v / u
		}
		if q > levaR2 {
			continue
		}
		if v*v <= -4*u*u*math.Log(u) {
			return v / u
		}
	}
}
