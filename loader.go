package centroid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// leadingSpace is the whitespace tolerated before a component. Lines are cut
// on '\n' before components are split, so it never appears here.
const leadingSpace = " \t\v\f\r"

// ReadDataset reads one vector per non-empty line from r, components
// separated by commas. The dataset dimension is fixed by the first non-empty
// line; every later line must match it. Zero-length lines are skipped and do
// not contribute vectors.
//
// Components are plain decimal numbers ("-1", ".5", "5.", "1e-3" are all
// valid). Whitespace is tolerated before each component and plain spaces
// after the last one; anything else on the line fails the load with an error
// carrying the offending 1-based line number. NaN and infinity spellings are
// rejected, as are values whose magnitude overflows float64. All parse and
// shape failures match ErrMalformedInput; a stream without a single vector
// returns ErrEmptyInput.
//
// Lines may be arbitrarily long. On failure no partial dataset is returned.
func ReadDataset(r io.Reader, optFns ...Option) (*Dataset, error) {
	o := applyOptions(optFns)

	start := time.Now()
	ds, err := readDataset(bufio.NewReader(r))
	elapsed := time.Since(start)

	if err != nil {
		o.logger.LogLoad(0, 0, err)
		o.metricsCollector.RecordLoad(0, 0, elapsed, err)
		return nil, err
	}

	o.logger.LogLoad(ds.Len(), ds.Dim(), nil)
	o.metricsCollector.RecordLoad(ds.Len(), ds.Dim(), elapsed, nil)

	return ds, nil
}

func readDataset(br *bufio.Reader) (*Dataset, error) {
	var ds *Dataset

	for line := 1; ; line++ {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read input: %w", err)
		}

		text := strings.TrimSuffix(raw, "\n")
		if text != "" {
			if ds == nil {
				ds = &Dataset{dim: strings.Count(text, ",") + 1}
			}

			vec, perr := parseVector(text, line, ds.dim)
			if perr != nil {
				return nil, perr
			}

			ds.data = append(ds.data, vec...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	if ds == nil {
		return nil, ErrEmptyInput
	}

	return ds, nil
}

// parseVector splits one input line into exactly dim components.
func parseVector(text string, line, dim int) ([]float64, error) {
	fields := strings.Split(text, ",")
	if len(fields) != dim {
		return nil, &ErrDimensionMismatch{Line: line, Expected: dim, Actual: len(fields)}
	}

	vec := make([]float64, dim)

	for i, field := range fields {
		tok := strings.TrimLeft(field, leadingSpace)
		if i == dim-1 {
			// Only plain spaces are tolerated after the final component.
			tok = strings.TrimRight(tok, " ")
		}

		v, err := parseComponent(tok)
		if err != nil {
			return nil, &ErrInvalidComponent{Line: line, Token: tok}
		}

		vec[i] = v
	}

	return vec, nil
}

// parseComponent converts a single component token. The grammar is checked
// before strconv runs, so hex floats, digit separators, NaN/Inf spellings
// and stray text are rejected even where strconv would accept them.
func parseComponent(tok string) (float64, error) {
	if !validNumber(tok) {
		return 0, strconv.ErrSyntax
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		// Underflow yields a finite value and is accepted;
		// overflow to ±Inf is not.
		if errors.Is(err, strconv.ErrRange) && !math.IsInf(v, 0) {
			return v, nil
		}
		return 0, err
	}

	return v, nil
}

// validNumber reports whether tok is a decimal real number of the form
// [+|-] digits [ "." digits ] [ (e|E) [+|-] digits ] with at least one
// mantissa digit on either side of the point.
func validNumber(tok string) bool {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}

	digits := 0
	for i < len(tok) && isDigit(tok[i]) {
		i++
		digits++
	}

	if i < len(tok) && tok[i] == '.' {
		i++
		for i < len(tok) && isDigit(tok[i]) {
			i++
			digits++
		}
	}

	if digits == 0 {
		return false
	}

	if i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		i++
		if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
			i++
		}

		exp := 0
		for i < len(tok) && isDigit(tok[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}

	return i == len(tok)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
