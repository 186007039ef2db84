package centroid

// Dataset is an ordered collection of fixed-dimension float64 vectors backed
// by a single flat buffer with stride Dim. It is the input to Cluster and
// the shape of the centroids Cluster returns.
//
// The zero value is an empty dataset; use NewDataset to create one that
// accepts vectors of a fixed dimension.
//
// A Dataset is not safe for concurrent mutation.
type Dataset struct {
	dim  int
	data []float64
}

// NewDataset creates an empty dataset for vectors of the given dimension.
func NewDataset(dim int) (*Dataset, error) {
	if dim < 1 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	return &Dataset{dim: dim}, nil
}

// Append adds a vector to the dataset. The components are copied, so the
// caller may reuse the slice.
func (ds *Dataset) Append(vec []float64) error {
	if len(vec) != ds.dim {
		return &ErrDimensionMismatch{Expected: ds.dim, Actual: len(vec)}
	}

	ds.data = append(ds.data, vec...)

	return nil
}

// Len returns the number of vectors in the dataset. A zero-value Dataset
// has length zero.
func (ds *Dataset) Len() int {
	if ds.dim < 1 {
		return 0
	}

	return len(ds.data) / ds.dim
}

// Dim returns the vector dimension.
func (ds *Dataset) Dim() int {
	return ds.dim
}

// At returns the i-th vector as a view into the backing buffer.
// The returned slice must not be modified.
func (ds *Dataset) At(i int) []float64 {
	return ds.data[i*ds.dim : (i+1)*ds.dim]
}
