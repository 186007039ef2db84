package centroid

import "fmt"

// Bounds for batch run parameters. K must be strictly greater than MinK and
// the iteration cap strictly between MinIter and MaxIter; all three bounds
// are exclusive.
const (
	MinK    = 1
	MinIter = 1
	MaxIter = 1000

	// DefaultIter is the iteration cap used when the caller does not
	// supply one.
	DefaultIter = 400
)

// Params holds the validated parameters of a batch clustering run.
type Params struct {
	// K is the number of clusters.
	K int

	// MaxIterations caps the number of assign/update passes.
	MaxIterations int
}

// Validate checks the parameters against the accepted windows.
func (p Params) Validate() error {
	if p.K <= MinK {
		return fmt.Errorf("%w: k must be greater than %d, got %d", ErrInvalidK, MinK, p.K)
	}

	if p.MaxIterations <= MinIter || p.MaxIterations >= MaxIter {
		return fmt.Errorf("%w: iteration cap must lie strictly between %d and %d, got %d",
			ErrInvalidIterations, MinIter, MaxIter, p.MaxIterations)
	}

	return nil
}
