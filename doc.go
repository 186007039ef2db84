// Package centroid partitions numeric vectors into k clusters using Lloyd's
// k-means algorithm, reading the vectors from delimited text and writing the
// final centroids back as text.
//
// The pipeline has three stages, usable together or on their own:
//
//   - ReadDataset parses comma-separated vectors from an io.Reader into a
//     flat, dimension-checked Dataset.
//   - Cluster runs the deterministic assign/update iteration until the
//     assignments reach a fixed point or the iteration cap is hit.
//   - WriteCentroids renders the k centroids, one per line with four
//     fractional digits.
//
// # Quick Start
//
//	ds, err := centroid.ReadDataset(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := centroid.Cluster(ds, 3, centroid.DefaultIter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := centroid.WriteCentroids(os.Stdout, result.Centroids); err != nil {
//	    log.Fatal(err)
//	}
//
// # Determinism
//
// Clustering is seeded with the first k dataset vectors in input order and
// involves no randomness anywhere, so identical input yields byte-identical
// output. Distance ties during assignment go to the lowest cluster id.
//
// # Diagnostics
//
// A cluster that ends an iteration without members keeps its previous
// centroid and the run continues; the condition is reported through the
// configured Logger and WithEmptyClusterHandler rather than the error
// return. Fatal failures (unparseable input, dimension mismatches, invalid
// parameters) come back as errors matching the package sentinels.
//
// # Key Features
//
//   - Deterministic first-k seeding, squared Euclidean assignment
//   - Fixed-point convergence detection under an iteration cap
//   - Streaming line reader with a strict component grammar and no line
//     length limit
//   - Structured logging (log/slog) and pluggable metrics collection
package centroid
