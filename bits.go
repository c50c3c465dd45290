package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

const bitsPerWord = 64

// BitSequence represents an ordered sequence of bits.  It is used both for
// individual codewords and for encoded output.
//
// The zero value is an empty sequence, ready to use.  Like a slice, a copy of
// a BitSequence shares storage with the original; use Clone before appending
// to a copy that must not affect the original.
type BitSequence struct {
	// words holds the bits.  The least significant bit of words[0] is the
	// first bit.  Bits at positions >= size are undefined.
	words []uint64
	size  int
}

// ParseBits constructs a BitSequence from a string of '0' and '1' characters.
func ParseBits(str string) (BitSequence, error) {
	var bs BitSequence
	bs.Grow(len(str))
	for index, ch := range str {
		switch ch {
		case '0':
			bs.Append(0)
		case '1':
			bs.Append(1)
		default:
			return BitSequence{}, fmt.Errorf("invalid character in bit string at index %d: got %q, expected '0' or '1'", index, ch)
		}
	}
	return bs, nil
}

// BitSequenceFromBytes unpacks the first size bits of data, most significant
// bit of each byte first.  This is the inverse of Bytes.
func BitSequenceFromBytes(data []byte, size int) (BitSequence, error) {
	return ReadBitSequence(bytes.NewReader(data), size)
}

// ReadBitSequence reads exactly size bits from r, most significant bit of
// each byte first.  Bits remaining in the last byte read are discarded.
//
// If r is not an io.ByteReader, it is wrapped in a buffer and may be read
// past the last byte needed.
func ReadBitSequence(r io.Reader, size int) (BitSequence, error) {
	if size < 0 {
		return BitSequence{}, fmt.Errorf("invalid BitSequence size: got %d, min 0", size)
	}

	br := bitio.NewReader(r)
	var bs BitSequence
	bs.Grow(size)
	for index := 0; index < size; index++ {
		bit, err := br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return BitSequence{}, fmt.Errorf("failed to read bit %d of %d: %w", index, size, err)
		}
		bs.AppendBool(bit)
	}
	return bs, nil
}

// Len returns the number of bits in the sequence.
func (bs BitSequence) Len() int {
	return bs.size
}

// Bit returns the bit at the given position, either 0 or 1.
func (bs BitSequence) Bit(index int) uint {
	assert.Assertf(index >= 0 && index < bs.size, "bit index %d out of range [0, %d)", index, bs.size)
	return uint(bs.words[index/bitsPerWord]>>(index%bitsPerWord)) & 1
}

// Grow ensures room for at least n more bits without reallocation.
func (bs *BitSequence) Grow(n int) {
	need := wordsFor(bs.size + n)
	if need <= cap(bs.words) {
		return
	}
	words := make([]uint64, len(bs.words), need)
	copy(words, bs.words)
	bs.words = words
}

// Append appends a single bit, which must be 0 or 1.
func (bs *BitSequence) Append(bit uint) {
	assert.Assertf(bit <= 1, "bit must be 0 or 1, got %d", bit)
	index := bs.size
	if index%bitsPerWord == 0 {
		bs.words = append(bs.words[:index/bitsPerWord], 0)
	}
	mask := uint64(1) << (index % bitsPerWord)
	if bit != 0 {
		bs.words[index/bitsPerWord] |= mask
	} else {
		bs.words[index/bitsPerWord] &^= mask
	}
	bs.size++
}

// AppendBool appends a 1 bit for true and a 0 bit for false.
func (bs *BitSequence) AppendBool(bit bool) {
	if bit {
		bs.Append(1)
	} else {
		bs.Append(0)
	}
}

// AppendSequence appends every bit of other, in order.
func (bs *BitSequence) AppendSequence(other BitSequence) {
	bs.Grow(other.size)
	for index := 0; index < other.size; index++ {
		bs.Append(other.Bit(index))
	}
}

// Clone returns a copy of this sequence that shares no storage with it.
func (bs BitSequence) Clone() BitSequence {
	if bs.size == 0 {
		return BitSequence{}
	}
	words := make([]uint64, wordsFor(bs.size))
	copy(words, bs.words)
	return BitSequence{words: words, size: bs.size}
}

// Equal returns true iff both sequences hold the same bits.
func (bs BitSequence) Equal(other BitSequence) bool {
	return bs.size == other.size && bs.HasPrefix(other)
}

// HasPrefix returns true iff the first prefix.Len() bits of this sequence
// are the bits of prefix.
func (bs BitSequence) HasPrefix(prefix BitSequence) bool {
	if prefix.size > bs.size {
		return false
	}
	full := prefix.size / bitsPerWord
	for i := 0; i < full; i++ {
		if bs.words[i] != prefix.words[i] {
			return false
		}
	}
	if rem := prefix.size % bitsPerWord; rem != 0 {
		mask := (uint64(1) << rem) - 1
		return (bs.words[full]^prefix.words[full])&mask == 0
	}
	return true
}

// Bytes packs the sequence into bytes, most significant bit first.  The last
// byte is padded with 0 bits.
func (bs BitSequence) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(wordsFor(bs.size) * 8)
	_, err := bs.WriteTo(&buf)
	assert.Assertf(err == nil, "bytes.Buffer.Write failed: %v", err)
	return buf.Bytes()
}

// WriteTo writes the packed form of the sequence to w, as Bytes does.
func (bs BitSequence) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bitio.NewWriter(cw)
	for index := 0; index < bs.size; index++ {
		if err := bw.WriteBool(bs.Bit(index) != 0); err != nil {
			return cw.n, err
		}
	}
	err := bw.Close()
	return cw.n, err
}

// String returns the quoted string representation of this sequence, e.g.
// "0110".
func (bs BitSequence) String() string {
	var sb strings.Builder
	sb.Grow(bs.size)
	for index := 0; index < bs.size; index++ {
		sb.WriteByte('0' + byte(bs.Bit(index)))
	}
	return strconv.Quote(sb.String())
}

var (
	_ fmt.Stringer = BitSequence{}
	_ io.WriterTo  = BitSequence{}
)
