package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by errors returned when a weight table
	// cannot be used to build a Huffman code.
	ErrInvalidInput = errors.New("invalid input for Huffman code")

	// ErrUnknownSymbol is matched by errors returned when encoding a symbol
	// that is not part of the code's alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrTruncatedInput is matched by errors returned when a bit sequence
	// ends in the middle of a codeword.
	ErrTruncatedInput = errors.New("truncated Huffman-coded input")
)

// InvalidInputError describes why a list of weighted symbols was rejected.
type InvalidInputError struct {
	// Index is the position of the offending pair, or -1 if the problem
	// is not tied to a single pair.
	Index int

	// Reason is a human-readable description of the problem.
	Reason string
}

// Error fulfills the error interface.
func (err InvalidInputError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrInvalidInput, err.Reason)
	}
	return fmt.Sprintf("%v: pair %d: %s", ErrInvalidInput, err.Index, err.Reason)
}

// Is returns true if target is ErrInvalidInput.
func (err InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnknownSymbolError is returned by Encode when a symbol is absent from the
// code's alphabet.
type UnknownSymbolError struct {
	// Index is the position of the symbol in the input sequence.
	Index int

	// Symbol is the symbol that could not be encoded.
	Symbol interface{}
}

// Error fulfills the error interface.
func (err UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v at index %d: %#v", ErrUnknownSymbol, err.Index, err.Symbol)
}

// Is returns true if target is ErrUnknownSymbol.
func (err UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// TruncatedInputError is returned by Decode when the bit sequence is
// exhausted while the decoder is partway down the tree.
type TruncatedInputError struct {
	// Size is the total number of bits in the input.
	Size int

	// Depth is the number of trailing bits that did not complete a codeword.
	Depth int
}

// Error fulfills the error interface.
func (err TruncatedInputError) Error() string {
	return fmt.Sprintf("%v: input ended after %d bits with %d bits of an incomplete codeword", ErrTruncatedInput, err.Size, err.Depth)
}

// Is returns true if target is ErrTruncatedInput.
func (err TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

var (
	_ error = InvalidInputError{}
	_ error = UnknownSymbolError{}
	_ error = TruncatedInputError{}
)
