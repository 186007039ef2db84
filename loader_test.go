package centroid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/centroid/internal/testutil"
)

func TestReadDataset(t *testing.T) {
	t.Run("TwoVectors", func(t *testing.T) {
		ds, err := ReadDataset(strings.NewReader("1.5,2.5,3.5\n-4,5,-6\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, ds.Len())
		assert.Equal(t, 3, ds.Dim())
		assert.Equal(t, []float64{1.5, 2.5, 3.5}, ds.At(0))
		assert.Equal(t, []float64{-4, 5, -6}, ds.At(1))
	})

	t.Run("SingleColumn", func(t *testing.T) {
		ds, err := ReadDataset(strings.NewReader("7\n8\n9\n"))
		require.NoError(t, err)

		assert.Equal(t, 3, ds.Len())
		assert.Equal(t, 1, ds.Dim())
		assert.Equal(t, []float64{8}, ds.At(1))
	})

	t.Run("MissingTrailingNewline", func(t *testing.T) {
		ds, err := ReadDataset(strings.NewReader("1,2\n3,4"))
		require.NoError(t, err)

		assert.Equal(t, 2, ds.Len())
		assert.Equal(t, []float64{3, 4}, ds.At(1))
	})

	t.Run("BlankLinesSkipped", func(t *testing.T) {
		ds, err := ReadDataset(strings.NewReader("\n1,2\n\n\n3,4\n\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, ds.Len())
		assert.Equal(t, []float64{1, 2}, ds.At(0))
		assert.Equal(t, []float64{3, 4}, ds.At(1))
	})

	t.Run("LeadingWhitespaceTolerated", func(t *testing.T) {
		ds, err := ReadDataset(strings.NewReader(" 1.0, 2.0 \n\t3.5,\t4.5\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, ds.Len())
		assert.Equal(t, []float64{1, 2}, ds.At(0))
		assert.Equal(t, []float64{3.5, 4.5}, ds.At(1))
	})

	t.Run("SignAndExponentForms", func(t *testing.T) {
		ds, err := ReadDataset(strings.NewReader("+1,-2\n.5,5.\n1e2,1.5E-3\n"))
		require.NoError(t, err)

		assert.Equal(t, 3, ds.Len())
		assert.Equal(t, []float64{1, -2}, ds.At(0))
		assert.Equal(t, []float64{0.5, 5}, ds.At(1))
		assert.Equal(t, []float64{100, 0.0015}, ds.At(2))
	})

	t.Run("UnderflowParsesToZero", func(t *testing.T) {
		ds, err := ReadDataset(strings.NewReader("1e-999,1\n"))
		require.NoError(t, err)

		assert.Equal(t, []float64{0, 1}, ds.At(0))
	})

	t.Run("LongLine", func(t *testing.T) {
		// Far beyond the default bufio buffer size.
		vals := testutil.NewRNG(3).UniformVectors(1, 1200)
		input := testutil.CSV(vals, 1200)
		require.Greater(t, len(input), 4096)

		ds, err := ReadDataset(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, 1, ds.Len())
		assert.Equal(t, 1200, ds.Dim())
		assert.Equal(t, vals, ds.At(0))
	})
}

func TestReadDataset_ComponentErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLine  int
		wantToken string
	}{
		{"WordToken", "1,2,three\n", 1, "three"},
		{"TrailingGarbage", "1,2x\n", 1, "2x"},
		{"SpaceInsideNumber", "1 2,3\n", 1, "1 2"},
		{"SpaceBeforeComma", "1 ,2\n", 1, "1 "},
		{"TabAfterLastComponent", "1,2\t\n", 1, "2\t"},
		{"CarriageReturn", "1,2\r\n3,4\r\n", 1, "2\r"},
		{"EmptyComponent", "1,,3\n", 1, ""},
		{"BareSign", "-,1\n", 1, "-"},
		{"BareDot", ".,1\n", 1, "."},
		{"NaN", "nan,1\n", 1, "nan"},
		{"Infinity", "+Inf,1\n", 1, "+Inf"},
		{"HexFloat", "0x1p-2,1\n", 1, "0x1p-2"},
		{"DigitSeparator", "1_000,1\n", 1, "1_000"},
		{"EmptyExponent", "1e,2\n", 1, "1e"},
		{"Overflow", "1e999,1\n", 1, "1e999"},
		{"WhitespaceOnlyFirstLine", "  \n1,2\n", 1, ""},
		{"LineNumberCountsBlanks", "1\n\n\nbug\n", 4, "bug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ReadDataset(strings.NewReader(tt.input))
			assert.Nil(t, ds)

			var ic *ErrInvalidComponent
			require.ErrorAs(t, err, &ic)
			assert.Equal(t, tt.wantLine, ic.Line)
			assert.Equal(t, tt.wantToken, ic.Token)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestReadDataset_ShapeErrors(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantLine     int
		wantExpected int
		wantActual   int
	}{
		{"ShortRow", "1,2,3\n4,5\n", 2, 3, 2},
		{"LongRow", "1,2\n3,4,5\n", 2, 2, 3},
		{"WhitespaceOnlyLine", "1,2\n \n", 2, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ReadDataset(strings.NewReader(tt.input))
			assert.Nil(t, ds)

			var dm *ErrDimensionMismatch
			require.ErrorAs(t, err, &dm)
			assert.Equal(t, tt.wantLine, dm.Line)
			assert.Equal(t, tt.wantExpected, dm.Expected)
			assert.Equal(t, tt.wantActual, dm.Actual)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestReadDataset_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n\n"} {
		ds, err := ReadDataset(strings.NewReader(input))

		assert.Nil(t, ds)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func BenchmarkReadDataset(b *testing.B) {
	rng := testutil.NewRNG(7)
	input := testutil.CSV(rng.UniformVectors(1000, 8), 8)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ReadDataset(strings.NewReader(input)); err != nil {
			b.Fatal(err)
		}
	}
}
