package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noron-ml/noron/internal/ndarray"
	"github.com/noron-ml/noron/internal/rng"
)

// demoResult carries the quantities the demo reports.
type demoResult struct {
	Sum        float64 // sum(cube0) + sum(cube1)
	SoftmaxSum float64 // sum(softmax(cube0)) + sum(softmax(cube1)), ~2
}

// runDemo fills two random cubes and reports their sums before and
// after softmax.
func runDemo(cfg demoConfig, log *zap.Logger) (demoResult, error) {
	g := rng.NewGaussian(cfg.Seed)

	cube0, err := ndarray.New(cfg.Dims...)
	if err != nil {
		return demoResult{}, fmt.Errorf("cube0: %w", err)
	}
	cube1, err := ndarray.New(cfg.Dims...)
	if err != nil {
		return demoResult{}, fmt.Errorf("cube1: %w", err)
	}
	cube0.FillRandomWith(g)
	cube1.FillRandomWith(g)
	log.Debug("filled cubes",
		zap.Stringer("shape", cube0.Dims()),
		zap.Int64("seed", cfg.Seed),
		zap.Float64("mean0", cube0.Mean()),
		zap.Float64("mean1", cube1.Mean()),
	)

	res := demoResult{Sum: cube0.Sum() + cube1.Sum()}

	softmax0 := cube0.Softmax()
	softmax1 := cube1.Softmax()
	res.SoftmaxSum = softmax0.Sum() + softmax1.Sum()

	log.Info("demo complete",
		zap.Stringer("shape", cube0.Dims()),
		zap.Float64("sum", res.Sum),
		zap.Float64("softmax_sum", res.SoftmaxSum),
	)
	return res, nil
}
