package huffman

import (
	"io"
	"math"
)

func wordsFor(size int) int {
	return (size + bitsPerWord - 1) / bitsPerWord
}

// saturatingAdd adds two non-negative weights, clamping at math.MaxInt.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// saturatingMul multiplies two non-negative values, clamping at math.MaxInt.
func saturatingMul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

var _ io.Writer = (*countingWriter)(nil)
