// Command centroid reads comma-separated vectors from stdin, partitions them
// into K clusters with Lloyd's k-means and prints the final centroids to
// stdout, one per line with four fractional digits.
//
// Usage:
//
//	centroid K [MAX_ITERATIONS]
//
// K must be an integer greater than 1 and smaller than the number of input
// vectors. MAX_ITERATIONS must be an integer strictly between 1 and 1000; it
// defaults to 400. Diagnostics go to stderr: a fatal failure prints a single
// message line and exits with status 1, warnings leave the exit status at 0.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/hupe1980/centroid"
)

// Diagnostic lines, one per failure class.
const (
	msgGeneric     = "An Error Has Occurred"
	msgInvalidK    = "Incorrect number of clusters!"
	msgInvalidIter = "Incorrect maximum iteration!"
)

// errBadArgs marks malformed command lines (wrong argument count or a
// non-integer argument); domain violations carry the centroid sentinels.
var errBadArgs = errors.New("invalid arguments")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run drives one batch clustering pass and returns the process exit code.
// Warnings go through slog; every fatal failure prints exactly one
// diagnostic line.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	params, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, diagnostic(err))
		return 1
	}

	logger := centroid.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ds, err := centroid.ReadDataset(stdin)
	if err != nil {
		fmt.Fprintln(stderr, diagnostic(err))
		return 1
	}

	result, err := centroid.Cluster(ds, params.K, params.MaxIterations,
		centroid.WithEmptyClusterHandler(logger.LogEmptyCluster),
	)
	if err != nil {
		fmt.Fprintln(stderr, diagnostic(err))
		return 1
	}

	if err := centroid.WriteCentroids(stdout, result.Centroids); err != nil {
		fmt.Fprintln(stderr, diagnostic(err))
		return 1
	}

	return 0
}

// parseArgs validates the command line in order: argument count, K syntax,
// K domain, iteration syntax, iteration domain. The first violation wins,
// so a K domain error is reported even when the iteration argument is
// malformed.
func parseArgs(args []string) (centroid.Params, error) {
	if len(args) < 1 || len(args) > 2 {
		return centroid.Params{}, errBadArgs
	}

	k, err := strconv.Atoi(args[0])
	if err != nil {
		return centroid.Params{}, errBadArgs
	}
	if k <= centroid.MinK {
		return centroid.Params{}, centroid.ErrInvalidK
	}

	maxIterations := centroid.DefaultIter
	if len(args) == 2 {
		maxIterations, err = strconv.Atoi(args[1])
		if err != nil {
			return centroid.Params{}, errBadArgs
		}
	}

	params := centroid.Params{K: k, MaxIterations: maxIterations}
	if err := params.Validate(); err != nil {
		return centroid.Params{}, err
	}

	return params, nil
}

// diagnostic maps an error to its message line. Parameter domain violations
// get specific text; everything else is reported generically.
func diagnostic(err error) string {
	switch {
	case errors.Is(err, centroid.ErrInvalidK), errors.Is(err, centroid.ErrTooFewVectors):
		return msgInvalidK
	case errors.Is(err, centroid.ErrInvalidIterations):
		return msgInvalidIter
	default:
		return msgGeneric
	}
}
