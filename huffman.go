package huffman

import (
	"fmt"
	"iter"
)

// Huffman is an optimal prefix-free code over an alphabet of symbols of type
// T.  It is built once by Build or New and is immutable thereafter, so any
// number of goroutines may Encode and Decode with it concurrently.
type Huffman[T comparable] struct {
	enc *Encoder[T]
	dec *Decoder[T]
}

// Build validates pairs and constructs the Huffman code for them.  It
// returns an InvalidInputError if pairs is empty, if any weight is not
// positive, or if any symbol appears more than once.
//
// The same pairs in the same order always produce the same code.
func Build[T comparable](pairs []WeightedSymbol[T]) (*Huffman[T], error) {
	wt, err := NewWeightTable(pairs)
	if err != nil {
		return nil, err
	}
	return New(wt), nil
}

// New constructs the Huffman code for an already validated WeightTable.
func New[T comparable](wt WeightTable[T]) *Huffman[T] {
	t := buildTree(wt)
	return &Huffman[T]{
		enc: newEncoder(t),
		dec: newDecoder(t),
	}
}

// Encode encodes symbols into a bit sequence.  See Encoder.Encode.
func (h *Huffman[T]) Encode(symbols []T) (BitSequence, error) {
	return h.enc.Encode(symbols)
}

// Decode decodes bits into pointers to the code's own symbols.  See
// Decoder.Decode.
func (h *Huffman[T]) Decode(bits BitSequence) ([]*T, error) {
	return h.dec.Decode(bits)
}

// DecodeOwned decodes bits into copies of the symbols.  See
// Decoder.DecodeOwned.
func (h *Huffman[T]) DecodeOwned(bits BitSequence) ([]T, error) {
	return h.dec.DecodeOwned(bits)
}

// All lazily decodes bits.  See Decoder.All.
func (h *Huffman[T]) All(bits BitSequence) iter.Seq2[*T, error] {
	return h.dec.All(bits)
}

// Code returns a copy of the codeword for symbol.  See Encoder.Code.
func (h *Huffman[T]) Code(symbol T) (BitSequence, bool) {
	return h.enc.Code(symbol)
}

// Cost returns the weighted length of the code, i.e. the sum over all
// symbols of weight × codeword length, saturating at math.MaxInt.  No other
// prefix code for the same weights has a smaller cost.
func (h *Huffman[T]) Cost() int {
	return h.enc.t.cost()
}

// Encoder returns the encoding half of this code.
func (h *Huffman[T]) Encoder() *Encoder[T] {
	return h.enc
}

// Decoder returns the decoding half of this code.
func (h *Huffman[T]) Decoder() *Decoder[T] {
	return h.dec
}

// Split returns the encoding and decoding halves of this code, for callers
// that only need one of them on each side of a channel.
func (h *Huffman[T]) Split() (*Encoder[T], *Decoder[T]) {
	return h.enc, h.dec
}

// String returns a brief description of this code.
func (h *Huffman[T]) String() string {
	return fmt.Sprintf("(Huffman code with %d symbols, with coded lengths of %d .. %d bits)", h.enc.NumSymbols(), h.enc.MinSize(), h.enc.MaxSize())
}

var _ fmt.Stringer = (*Huffman[int])(nil)
