package testutil

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// RNG wraps a seeded math/rand source with a mutex so generators can be
// shared across parallel subtests without data races.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a deterministic random number generator with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset rewinds the generator to its initial state, so the same sequence can
// be replayed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rand = rand.New(rand.NewSource(r.seed))
}

// FillUniformRange fills dst with uniform values in [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformVectors generates num vectors of the given dimension with uniform
// components in [0, 1), returned as one flat buffer with stride dim.
func (r *RNG) UniformVectors(num, dim int) []float64 {
	data := make([]float64, num*dim)
	r.FillUniformRange(data, 0, 1)

	return data
}

// ClusteredVectors generates num vectors of the given dimension scattered
// around the planted centers (a flat buffer with stride dim). Vector i is
// drawn around center i%k with gaussian noise scaled by spread, so the first
// k vectors fall into k distinct clusters in center order.
func (r *RNG) ClusteredVectors(num int, centers []float64, dim int, spread float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := len(centers) / dim
	data := make([]float64, num*dim)

	for i := 0; i < num; i++ {
		center := centers[(i%k)*dim : (i%k+1)*dim]
		vec := data[i*dim : (i+1)*dim]

		for d := range vec {
			vec[d] = center[d] + r.rand.NormFloat64()*spread
		}
	}

	return data
}

// CSV renders a flat vector buffer as comma-separated text, one vector per
// line, each line newline-terminated. Components keep full precision so the
// rendered text parses back to the exact same values.
func CSV(vectors []float64, dim int) string {
	var sb strings.Builder

	for i := 0; i+dim <= len(vectors); i += dim {
		for j := 0; j < dim; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(strconv.FormatFloat(vectors[i+j], 'f', -1, 64))
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
