package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"primefinder/internal/platform/config"
	"primefinder/internal/platform/logger"
	platformmetrics "primefinder/internal/platform/metrics"
	"primefinder/internal/prime"
	"primefinder/internal/prime/metrics"
	"primefinder/internal/prime/service"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// main wires configuration, logging and metrics around the prime service and
// keeps the command itself small.
func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.FromEnv()

	fs := flag.NewFlagSet("nthprime", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strategyName := fs.String("strategy", cfg.Strategy, "primality strategy: known-primes, filtered-primes or trial-division")
	check := fs.Bool("check", false, "report whether each argument is prime instead of looking up the n-th prime")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: nthprime [-strategy name] [-check] N...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	log := logger.NewWithWriter(stderr, cfg.LogLevel, cfg.LogFormat)

	strategy, err := prime.ParseStrategy(*strategyName)
	if err != nil {
		fmt.Fprintf(stderr, "nthprime: %v\n", err)
		return exitUsage
	}

	reg := platformmetrics.NewRegistry()
	svc, err := service.New(metrics.New(reg), service.WithLogger(log), service.WithStrategy(strategy))
	if err != nil {
		fmt.Fprintf(stderr, "nthprime: %v\n", err)
		return exitError
	}

	code := exitOK
	for _, arg := range fs.Args() {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(stderr, "nthprime: %q is not an integer\n", arg)
			code = exitUsage
			continue
		}

		if *check {
			ok, err := svc.IsPrime(ctx, n)
			if err != nil {
				fmt.Fprintf(stderr, "nthprime: %v\n", err)
				code = exitUsage
				continue
			}
			fmt.Fprintf(stdout, "%d\t%t\n", n, ok)
			continue
		}

		p, err := svc.NthPrime(ctx, n)
		if err != nil {
			fmt.Fprintf(stderr, "nthprime: %v\n", err)
			code = exitUsage
			continue
		}
		fmt.Fprintf(stdout, "%d\t%d\n", n, p)
	}

	if summary, err := platformmetrics.Summary(reg, "primefinder_"); err == nil {
		log.DebugContext(ctx, "metrics summary", "metrics", summary)
	} else {
		log.WarnContext(ctx, "failed to gather metrics", "error", err)
	}

	return code
}
