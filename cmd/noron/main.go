// Package main provides the noron demonstration CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("noron %s\n", version)
	case "demo":
		if err := demo(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func demo(args []string) error {
	cfg, err := parseDemoConfig(args)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync errors are not actionable

	_, err = runDemo(cfg, log)
	return err
}

func usage() {
	fmt.Println("noron - N-dimensional arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  demo       Fill two random cubes, report sums and softmax sums")
	fmt.Println("             flags: -dims 10,10,10 -seed N -log-level info")
	fmt.Println("  version    Show version")
}
