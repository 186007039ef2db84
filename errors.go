package centroid

import (
	"errors"
	"fmt"

	"github.com/hupe1980/centroid/internal/kmeans"
)

var (
	// ErrInvalidK is returned when the number of clusters is not greater
	// than MinK.
	ErrInvalidK = errors.New("invalid number of clusters")

	// ErrTooFewVectors is returned when the dataset does not contain more
	// vectors than the requested number of clusters.
	ErrTooFewVectors = errors.New("too few vectors for requested k")

	// ErrInvalidIterations is returned when the iteration cap lies outside
	// the accepted window.
	ErrInvalidIterations = errors.New("invalid maximum iterations")

	// ErrEmptyInput is returned when not a single vector could be read from
	// the input.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedInput is the umbrella error that every parse and shape
	// failure matches via errors.Is. Use errors.As with the concrete types
	// to access line numbers and offending tokens.
	ErrMalformedInput = errors.New("malformed input")
)

// ErrInvalidComponent indicates a vector component that is not a plain
// decimal number. Line is the 1-based input line the token came from.
//
// Matches ErrMalformedInput via errors.Is.
type ErrInvalidComponent struct {
	Line  int
	Token string
}

func (e *ErrInvalidComponent) Error() string {
	return fmt.Sprintf("line %d: invalid component %q", e.Line, e.Token)
}

func (e *ErrInvalidComponent) Unwrap() error { return ErrMalformedInput }

// ErrDimensionMismatch indicates a vector whose dimensionality differs from
// the dataset's. Line is the 1-based input line, or zero when the vector did
// not come from an input stream.
//
// Matches ErrMalformedInput via errors.Is.
type ErrDimensionMismatch struct {
	Line     int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: dimension mismatch: expected %d, got %d", e.Line, e.Expected, e.Actual)
	}

	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrMalformedInput }

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Parameter normalization.
	if errors.Is(err, kmeans.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	if errors.Is(err, kmeans.ErrInvalidIterations) {
		return fmt.Errorf("%w: %w", ErrInvalidIterations, err)
	}
	if errors.Is(err, kmeans.ErrTooFewVectors) {
		return fmt.Errorf("%w: %w", ErrTooFewVectors, err)
	}

	return err
}
