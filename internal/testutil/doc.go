// Package testutil provides deterministic test-data generators for the
// centroid packages.
//
// This package is intended for use in tests and benchmarks only. Every
// generator is driven by a seeded RNG, so a fixed seed reproduces the exact
// same data on every run.
//
// # Vector Generation
//
//	rng := testutil.NewRNG(42)
//	data := rng.ClusteredVectors(300, centers, 2, 0.5)
//
// # Input Rendering
//
//	input := testutil.CSV(data, 2)
package testutil
