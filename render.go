package centroid

import (
	"bufio"
	"io"
	"strconv"
)

// WriteCentroids writes one centroid per line to w in cluster-id order,
// components comma-separated and formatted with exactly four fractional
// digits. Every line is newline-terminated; no trailing blank line is
// written.
func WriteCentroids(w io.Writer, centroids *Dataset) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16*centroids.dim)

	for i := 0; i < centroids.Len(); i++ {
		buf = buf[:0]

		for j, v := range centroids.At(i) {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendFloat(buf, v, 'f', 4, 64)
		}

		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
