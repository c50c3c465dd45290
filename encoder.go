package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps symbols to their codewords.  It holds the code table derived
// from a Huffman tree: each symbol's codeword is the path from the root to
// its leaf, 0 for a left branch and 1 for a right branch.
//
// An Encoder is immutable and safe for concurrent use.
type Encoder[T comparable] struct {
	t       *tree[T]
	index   map[T]int32
	codes   []BitSequence
	minSize int
	maxSize int
}

func newEncoder[T comparable](t *tree[T]) *Encoder[T] {
	e := &Encoder[T]{
		t:     t,
		index: make(map[T]int32, t.numLeaves),
		codes: make([]BitSequence, t.numLeaves),
	}

	var hasMinMax bool
	t.walk(func(leaf int32, path BitSequence) {
		assert.Assertf(leaf < t.numLeaves, "walk visited non-leaf node %d", leaf)
		e.codes[leaf] = path.Clone()
		e.index[t.nodes[leaf].symbol] = leaf

		size := path.Len()
		if !hasMinMax {
			hasMinMax = true
			e.minSize = size
			e.maxSize = size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
	})
	assert.Assertf(len(e.index) == int(t.numLeaves), "expected %d codewords, got %d", t.numLeaves, len(e.index))
	return e
}

// Code returns a copy of the codeword for symbol, or false if symbol is not
// in the alphabet.
func (e *Encoder[T]) Code(symbol T) (BitSequence, bool) {
	leaf, found := e.index[symbol]
	if !found {
		return BitSequence{}, false
	}
	return e.codes[leaf].Clone(), true
}

// Encode encodes symbols into a bit sequence, concatenating their codewords
// in order.  If any symbol is not in the alphabet, Encode returns an
// UnknownSymbolError and no bits.
func (e *Encoder[T]) Encode(symbols []T) (BitSequence, error) {
	return e.AppendEncode(BitSequence{}, symbols)
}

// AppendEncode is like Encode, but appends the codewords to dst.  On error,
// dst is returned unchanged.
func (e *Encoder[T]) AppendEncode(dst BitSequence, symbols []T) (BitSequence, error) {
	var size int
	for index, symbol := range symbols {
		leaf, found := e.index[symbol]
		if !found {
			return dst, UnknownSymbolError{Index: index, Symbol: symbol}
		}
		size += e.codes[leaf].Len()
	}

	dst.Grow(size)
	for _, symbol := range symbols {
		dst.AppendSequence(e.codes[e.index[symbol]])
	}
	return dst, nil
}

// MinSize is the bit length of the shortest codeword.
func (e *Encoder[T]) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest codeword.
func (e *Encoder[T]) MaxSize() int {
	return e.maxSize
}

// NumSymbols returns the number of symbols in the alphabet.
func (e *Encoder[T]) NumSymbols() int {
	return len(e.codes)
}

// SizeBySymbol returns the codeword length of each symbol, in the order the
// symbols were given to Build.
func (e *Encoder[T]) SizeBySymbol() []int {
	out := make([]int, len(e.codes))
	for leaf, hc := range e.codes {
		out[leaf] = hc.Len()
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for leaf, hc := range e.codes {
		fmt.Fprintf(&buf, "\tEncode(%#v) = %s\n", e.t.nodes[leaf].symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (e *Encoder[T]) DebugString() string {
	var buf bytes.Buffer
	_, _ = e.Dump(&buf)
	return buf.String()
}

// String returns a brief description of this Encoder.
func (e *Encoder[T]) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", len(e.codes), e.minSize, e.maxSize)
}

var _ fmt.Stringer = (*Encoder[int])(nil)
