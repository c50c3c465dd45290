// Package huffman implements optimal prefix-free binary codes (Huffman codes)
// over an arbitrary alphabet of weighted symbols.
//
// A Huffman code is built once from a list of (symbol, weight) pairs, after
// which it is immutable and may be shared freely between goroutines.  Symbols
// are encoded into a BitSequence and decoded back by walking the code tree
// bit by bit, 0 for the left child and 1 for the right child.
//
// Construction is deterministic: the same pairs in the same order always
// produce the same tree and the same codewords, including when weights tie.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
