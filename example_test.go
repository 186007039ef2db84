package centroid_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hupe1980/centroid"
)

func Example() {
	input := "0,0\n10,10\n0,1\n10,11\n"

	ds, err := centroid.ReadDataset(strings.NewReader(input))
	if err != nil {
		log.Fatal(err)
	}

	result, err := centroid.Cluster(ds, 2, centroid.DefaultIter)
	if err != nil {
		log.Fatal(err)
	}

	if err := centroid.WriteCentroids(os.Stdout, result.Centroids); err != nil {
		log.Fatal(err)
	}

	// Output:
	// 0.0000,0.5000
	// 10.0000,10.5000
}

func ExampleReadDataset() {
	ds, err := centroid.ReadDataset(strings.NewReader("1,2\n3,4\n5,6\n"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("vectors=%d dimension=%d\n", ds.Len(), ds.Dim())

	// Output:
	// vectors=3 dimension=2
}

func ExampleCluster() {
	ds, err := centroid.NewDataset(2)
	if err != nil {
		log.Fatal(err)
	}

	for _, vec := range [][]float64{{0, 0}, {10, 10}, {0, 1}, {10, 11}} {
		if err := ds.Append(vec); err != nil {
			log.Fatal(err)
		}
	}

	result, err := centroid.Cluster(ds, 2, 100)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("iterations=%d converged=%t\n", result.Iterations, result.Converged)
	fmt.Printf("centroid 0: %v\n", result.Centroids.At(0))

	// Output:
	// iterations=2 converged=true
	// centroid 0: [0 0.5]
}

func ExampleWriteCentroids() {
	ds, err := centroid.NewDataset(2)
	if err != nil {
		log.Fatal(err)
	}

	if err := ds.Append([]float64{1.0 / 3.0, 2.0 / 3.0}); err != nil {
		log.Fatal(err)
	}

	if err := centroid.WriteCentroids(os.Stdout, ds); err != nil {
		log.Fatal(err)
	}

	// Output:
	// 0.3333,0.6667
}

func ExampleWithEmptyClusterHandler() {
	ds, err := centroid.NewDataset(1)
	if err != nil {
		log.Fatal(err)
	}

	for _, vec := range [][]float64{{5}, {5}, {0}, {1}} {
		if err := ds.Append(vec); err != nil {
			log.Fatal(err)
		}
	}

	result, err := centroid.Cluster(ds, 2, 100, centroid.WithEmptyClusterHandler(
		func(cluster, iteration int) {
			fmt.Printf("cluster %d empty on iteration %d\n", cluster, iteration)
		},
	))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("empty events: %d\n", result.EmptyClusters)

	// Output:
	// cluster 1 empty on iteration 0
	// empty events: 1
}
