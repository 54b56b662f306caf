// Command junction clusters 3-D points read from a file and prints the
// top-three product, the bottleneck product, or both.
//
// Usage:
//
//	junction [--mode top-three|bottleneck|both] [--pairs N] [--summary] [--verbose] FILE
//
// FILE holds one "x,y,z" point per line; "-" reads standard input.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/maxdavidson/junction/cluster"
	"github.com/maxdavidson/junction/point"
)

const modeBoth = "both"

type config struct {
	mode    string
	pairs   int
	summary bool
	verbose bool
	input   string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("junction", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.mode, "mode", "m", modeBoth, "clustering mode: top-three, bottleneck or both")
	fs.IntVarP(&cfg.pairs, "pairs", "k", cluster.DefaultPairs, "closest pairs to connect in top-three mode")
	fs.BoolVarP(&cfg.summary, "summary", "s", false, "print component statistics after top-three mode")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log pipeline diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: junction [flags] FILE\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch cfg.mode {
	case cluster.ModeTopThree, cluster.ModeBottleneck, modeBoth:
	default:
		return cfg, fmt.Errorf("invalid --mode %q", cfg.mode)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, errors.New("expected exactly one input file")
	}
	cfg.input = fs.Arg(0)

	return cfg, nil
}

func readPoints(path string, stdin io.Reader) ([]point.Point, error) {
	if path == "-" {
		return point.ParseReader(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return point.ParseReader(f)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logf := func(string, ...any) {}
	if cfg.verbose {
		logger := log.New(stderr, "junction: ", log.LstdFlags)
		logf = logger.Printf
	}

	pts, err := readPoints(cfg.input, stdin)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.input, err)
	}
	logf("read %d points from %s", len(pts), cfg.input)

	if cfg.mode == cluster.ModeTopThree || cfg.mode == modeBoth {
		res, err := cluster.Run(pts, cluster.NewOptions(
			cluster.WithMode(cluster.ModeTopThree),
			cluster.WithPairs(cfg.pairs),
			cluster.WithLogger(logf),
		))
		if err != nil {
			return fmt.Errorf("top-three: %w", err)
		}
		fmt.Fprintf(stdout, "top-three: %d\n", res.Value)
		if cfg.summary {
			fmt.Fprintf(stdout, "summary: %s\n", cluster.Summarize(res.Forest))
		}
	}
	if cfg.mode == cluster.ModeBottleneck || cfg.mode == modeBoth {
		v, err := cluster.BottleneckProduct(pts, cluster.WithLogger(logf))
		if err != nil {
			return fmt.Errorf("bottleneck: %w", err)
		}
		fmt.Fprintf(stdout, "bottleneck: %d\n", v)
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.SetFlags(0)
		log.SetPrefix("junction: ")
		log.Fatal(err)
	}
}
