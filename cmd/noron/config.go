package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LogLevel is a zap log level name.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}

// Zap maps the level to a zap level. Unknown names fall back to info.
func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelError:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// demoConfig holds the flags of the demo command.
type demoConfig struct {
	Dims     []int
	Seed     int64
	LogLevel LogLevel
}

// parseDemoConfig parses demo flags. A zero seed means seed from the clock.
func parseDemoConfig(args []string) (demoConfig, error) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	dims := fs.String("dims", "10,10,10", "comma separated array dimensions")
	seed := fs.Int64("seed", 0, "sampler seed (0 = time based)")
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return demoConfig{}, err
	}

	cfg := demoConfig{
		Seed:     *seed,
		LogLevel: LogLevel(*level),
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	parsed, err := parseDims(*dims)
	if err != nil {
		return demoConfig{}, err
	}
	cfg.Dims = parsed
	return cfg, nil
}

func parseDims(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("dims: empty")
	}
	parts := strings.Split(s, ",")
	dims := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("dims: %q: %w", p, err)
		}
		dims[i] = n
	}
	return dims, nil
}

func newLogger(level LogLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level.Zap()
	cfg.Encoding = "console"
	return cfg.Build()
}
