package kmeans

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Unassigned marks a vector that has not been assigned to any cluster yet.
// Seeding the assignment vector with it guarantees the first pass counts
// every vector as changed, so a fixed point can never be reported before at
// least one full assignment has happened.
const Unassigned = -1

var (
	// ErrInvalidDimension is returned when dim is not positive or the buffer
	// length is not a multiple of dim.
	ErrInvalidDimension = errors.New("dimension must be positive and divide the buffer length")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidIterations is returned when maxIterations is not positive.
	ErrInvalidIterations = errors.New("max iterations must be positive")

	// ErrTooFewVectors is returned when the dataset has no more than k vectors.
	ErrTooFewVectors = errors.New("not enough vectors for k clusters")
)

// Options configures a training run.
type Options struct {
	// OnEmptyCluster is invoked when a cluster ends an iteration with no
	// members. The cluster keeps its previous centroid and the run continues.
	// May be nil.
	OnEmptyCluster func(cluster, iteration int)
}

// Result holds the trained centroids and the final assignment pass.
type Result struct {
	// Centroids is the flattened centroid set (k rows of stride dim), in
	// cluster-id order. Centroid i descends from the i-th input vector.
	Centroids []float64

	// Assignments maps each input vector to its cluster id in [0,k).
	Assignments []int

	// Iterations is the number of assign/update passes performed.
	Iterations int

	// Converged reports whether a fixed point was reached before the
	// iteration cap: no vector changed cluster on the final pass.
	Converged bool

	// EmptyClusters counts cluster/iteration pairs where a cluster lost all
	// members and kept its previous centroid.
	EmptyClusters int

	// Inertia is the sum of squared distances between each vector and its
	// assigned centroid, measured during the final assignment pass.
	Inertia float64
}

// Train clusters the n=len(vectors)/dim vectors into k groups using Lloyd's
// algorithm and returns the k centroids.
//
// The initial centroids are copies of the first k vectors in input order; no
// randomness is involved at any stage. Each pass reassigns every vector to
// its nearest centroid by squared Euclidean distance (ties keep the
// lowest-indexed centroid), then recomputes each centroid as the mean of its
// members. Training stops when a pass changes no assignment, or after
// maxIterations passes.
//
// Train requires k < n: the caller is expected to have validated its
// parameters, but the precondition is still enforced here.
func Train(vectors []float64, dim, k, maxIterations int, opts Options) (*Result, error) {
	switch {
	case dim < 1 || len(vectors)%dim != 0:
		return nil, ErrInvalidDimension
	case k < 1:
		return nil, ErrInvalidK
	case maxIterations < 1:
		return nil, ErrInvalidIterations
	}

	n := len(vectors) / dim
	if k >= n {
		return nil, ErrTooFewVectors
	}

	// All working state is allocated up front and owned by this call, no
	// matter which step ends the run.
	centroids := make([]float64, k*dim)
	copy(centroids, vectors[:k*dim])

	sums := make([]float64, k*dim)
	counts := make([]int, k)
	assignments := make([]int, n)
	prev := make([]int, n)
	for i := range assignments {
		assignments[i] = Unassigned
	}

	res := &Result{}
	for iter := 0; iter < maxIterations; iter++ {
		// Reset the accumulators.
		for i := range sums {
			sums[i] = 0
		}
		for c := range counts {
			counts[c] = 0
		}

		// Snapshot the previous assignments for change detection.
		copy(prev, assignments)

		// Assignment step: nearest centroid by squared L2. Only a strictly
		// smaller distance replaces the running best, so exact ties go to
		// the lowest-indexed centroid.
		changed := 0
		inertia := 0.0
		for i := 0; i < n; i++ {
			vec := vectors[i*dim : (i+1)*dim]

			best := 0
			bestDist := squaredL2(vec, centroids[:dim])
			for c := 1; c < k; c++ {
				if d := squaredL2(vec, centroids[c*dim:(c+1)*dim]); d < bestDist {
					bestDist = d
					best = c
				}
			}

			assignments[i] = best
			if best != prev[i] {
				changed++
			}
			inertia += bestDist
		}

		// Update step: accumulate each vector into its cluster.
		for i := 0; i < n; i++ {
			c := assignments[i]
			floats.Add(sums[c*dim:(c+1)*dim], vectors[i*dim:(i+1)*dim])
			counts[c]++
		}

		// Recompute centroids. A cluster with no members keeps its previous
		// centroid; that is a reportable condition, not a failure.
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				res.EmptyClusters++
				if opts.OnEmptyCluster != nil {
					opts.OnEmptyCluster(c, iter)
				}
				continue
			}
			row := centroids[c*dim : (c+1)*dim]
			sum := sums[c*dim : (c+1)*dim]
			for d := 0; d < dim; d++ {
				// Divide by the exact member count.
				row[d] = sum[d] / float64(counts[c])
			}
		}

		res.Iterations = iter + 1
		res.Inertia = inertia

		if changed == 0 && iter > 0 {
			res.Converged = true
			break
		}
	}

	res.Centroids = centroids
	res.Assignments = assignments

	return res, nil
}

// squaredL2 calculates the squared L2 distance. Monotone in the true
// Euclidean distance, so the square root is never taken.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func squaredL2(a, b []float64) float64 {
	var distance float64
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}
