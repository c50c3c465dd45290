package huffman

import (
	"bytes"
	"fmt"
	"io"
	"iter"
)

// Decoder maps bit sequences back to symbols by walking a Huffman tree from
// the root, descending left on 0 and right on 1, and emitting a symbol at
// each leaf.
//
// A Decoder is immutable and safe for concurrent use.
type Decoder[T comparable] struct {
	t *tree[T]
}

func newDecoder[T comparable](t *tree[T]) *Decoder[T] {
	return &Decoder[T]{t: t}
}

// Decode decodes bits into a sequence of symbols.  The returned pointers
// refer to symbols held by the Decoder itself; they remain valid for as long
// as the caller keeps them, and must not be written through.  Use
// DecodeOwned for copies.
//
// If bits ends partway through a codeword, Decode returns a
// TruncatedInputError and no symbols.
func (d *Decoder[T]) Decode(bits BitSequence) ([]*T, error) {
	var out []*T
	for pos := 0; pos < bits.Len(); {
		leaf, next, err := d.decodeOne(bits, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, &d.t.nodes[leaf].symbol)
		pos = next
	}
	return out, nil
}

// DecodeOwned is like Decode, but returns copies of the symbols.
func (d *Decoder[T]) DecodeOwned(bits BitSequence) ([]T, error) {
	var out []T
	for pos := 0; pos < bits.Len(); {
		leaf, next, err := d.decodeOne(bits, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, d.t.nodes[leaf].symbol)
		pos = next
	}
	return out, nil
}

// All returns an iterator over the symbols decoded from bits, yielding them
// lazily as each codeword completes.  If bits ends partway through a
// codeword, the final pair yielded is (nil, TruncatedInputError).
func (d *Decoder[T]) All(bits BitSequence) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for pos := 0; pos < bits.Len(); {
			leaf, next, err := d.decodeOne(bits, pos)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&d.t.nodes[leaf].symbol, nil) {
				return
			}
			pos = next
		}
	}
}

// decodeOne decodes the codeword that begins at bit offset pos, returning
// the leaf reached and the offset just past the codeword.
//
// A tree consisting of a single leaf consumes exactly one bit per symbol,
// whatever its value.
func (d *Decoder[T]) decodeOne(bits BitSequence, pos int) (int32, int, error) {
	t := d.t
	current := t.root
	if t.nodes[current].isLeaf() {
		return current, pos + 1, nil
	}

	start := pos
	for pos < bits.Len() {
		n := &t.nodes[current]
		if bits.Bit(pos) == 0 {
			current = n.left
		} else {
			current = n.right
		}
		pos++
		if t.nodes[current].isLeaf() {
			return current, pos, nil
		}
	}
	return noChild, pos, TruncatedInputError{Size: bits.Len(), Depth: pos - start}
}

// NumSymbols returns the number of symbols in the alphabet.
func (d *Decoder[T]) NumSymbols() int {
	return int(d.t.numLeaves)
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", d.t.root)
	for index := range d.t.nodes {
		n := &d.t.nodes[index]
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = Leaf(%#v, %d)\n", index, n.symbol, n.weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = Internal(%d, %d, %d)\n", index, n.left, n.right, n.weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d *Decoder[T]) DebugString() string {
	var buf bytes.Buffer
	_, _ = d.Dump(&buf)
	return buf.String()
}

// String returns a brief description of this Decoder.
func (d *Decoder[T]) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with %d tree nodes)", d.t.numLeaves, len(d.t.nodes))
}

var _ fmt.Stringer = (*Decoder[int])(nil)
