package centroid

import (
	"time"

	"github.com/hupe1980/centroid/internal/kmeans"
)

// Result is the outcome of a clustering run.
type Result struct {
	// Centroids holds the k final centroids in cluster-id order. Centroid i
	// descends from the i-th input vector.
	Centroids *Dataset

	// Assignments maps each dataset vector to its cluster id in [0, k).
	Assignments []int

	// Iterations is the number of assign/update passes performed.
	Iterations int

	// Converged reports whether the assignments reached a fixed point
	// before the iteration cap.
	Converged bool

	// EmptyClusters counts how often a cluster ended an iteration without
	// members and kept its previous centroid.
	EmptyClusters int

	// Inertia is the sum of squared distances between each vector and its
	// assigned centroid, taken from the final assignment pass.
	Inertia float64
}

// Cluster partitions the dataset into k clusters with Lloyd's algorithm and
// returns the final centroids. The run is fully deterministic: the initial
// centroids are the first k dataset vectors in input order, assignment uses
// squared Euclidean distance with ties going to the lowest cluster id, and
// no randomness is involved anywhere, so identical input always produces
// identical output.
//
// k must be positive and smaller than ds.Len(), and maxIterations must be
// positive. Callers enforcing the batch parameter window should validate a
// Params value first; Cluster itself accepts any positive cap so that
// single-pass runs remain possible.
//
// A cluster that ends an iteration without members keeps its previous
// centroid and never fails the run. The condition is reported through the
// configured Logger, the WithEmptyClusterHandler subscription, and the
// EmptyClusters counter of the result.
func Cluster(ds *Dataset, k, maxIterations int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)

	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyInput
	}

	diag := o.logger.WithK(k).WithDimension(ds.dim)

	opts := kmeans.Options{
		OnEmptyCluster: func(cluster, iteration int) {
			diag.LogEmptyCluster(cluster, iteration)
			if o.onEmptyCluster != nil {
				o.onEmptyCluster(cluster, iteration)
			}
		},
	}

	start := time.Now()
	trained, err := kmeans.Train(ds.data, ds.dim, k, maxIterations, opts)
	elapsed := time.Since(start)

	if err != nil {
		err = translateError(err)
		o.logger.LogCluster(k, 0, false, err)
		o.metricsCollector.RecordCluster(k, 0, elapsed, err)
		return nil, err
	}

	o.logger.LogCluster(k, trained.Iterations, trained.Converged, nil)
	o.metricsCollector.RecordCluster(k, trained.Iterations, elapsed, nil)

	return &Result{
		Centroids:     &Dataset{dim: ds.dim, data: trained.Centroids},
		Assignments:   trained.Assignments,
		Iterations:    trained.Iterations,
		Converged:     trained.Converged,
		EmptyClusters: trained.EmptyClusters,
		Inertia:       trained.Inertia,
	}, nil
}
