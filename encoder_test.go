package huffman

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/exp/slices"
)

func makeTestHuffman() *Huffman[int] {
	h, err := Build([]WeightedSymbol[int]{
		Weighted(0, 5),
		Weighted(1, 9),
		Weighted(2, 12),
		Weighted(3, 13),
		Weighted(4, 16),
		Weighted(5, 45),
	})
	if err != nil {
		panic(err)
	}
	return h
}

func TestEncoder(t *testing.T) {
	e := makeTestHuffman().Encoder()

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()
	expectSizes := []int{4, 4, 3, 3, 3, 1}
	if !slices.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestEncoder_String(t *testing.T) {
	e := makeTestHuffman().Encoder()

	expectString := "(Huffman encoder with 6 symbols, with coded lengths of 1 .. 4 bits)"
	actualString := e.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestHuffman().Encoder()

	type testRow struct {
		name   string
		input  []int
		expect string
	}

	testData := [...]testRow{
		{name: "empty", input: nil, expect: ""},
		{name: "single", input: []int{5}, expect: "0"},
		{name: "mixed", input: []int{5, 0, 4}, expect: "01100111"},
		{name: "repeated", input: []int{2, 2, 3}, expect: "100100101"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			bits, err := e.Encode(row.input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			actual := bits.String()
			expect := `"` + row.expect + `"`
			if expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
			}
		})
	}
}

func TestEncoder_EncodeUnknownSymbol(t *testing.T) {
	e := makeTestHuffman().Encoder()

	bits, err := e.Encode([]int{5, 0, 42, 4})
	if err == nil {
		t.Fatalf("expected error, got %s", bits)
	}
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	var use UnknownSymbolError
	if !errors.As(err, &use) {
		t.Fatalf("expected UnknownSymbolError, got %T", err)
	}
	if use.Index != 2 || use.Symbol != 42 {
		t.Errorf("wrong error details:\n\texpect: index 2, symbol 42\n\tactual: index %d, symbol %v", use.Index, use.Symbol)
	}
	if bits.Len() != 0 {
		t.Errorf("expected no output, got %s", bits)
	}
}

func TestEncoder_AppendEncode(t *testing.T) {
	e := makeTestHuffman().Encoder()

	dst, err := ParseBits("11")
	if err != nil {
		t.Fatal(err)
	}

	out, err := e.AppendEncode(dst, []int{5, 2})
	if err != nil {
		t.Fatalf("AppendEncode failed: %v", err)
	}
	if expect, actual := `"110100"`, out.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	out, err = e.AppendEncode(dst, []int{5, -1})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if !out.Equal(dst) {
		t.Errorf("dst modified on error:\n\texpect: %s\n\tactual: %s", dst, out)
	}
}

func TestEncoder_Code(t *testing.T) {
	e := makeTestHuffman().Encoder()

	hc, ok := e.Code(1)
	if !ok {
		t.Fatal("Code(1) not found")
	}
	if expect, actual := `"1101"`, hc.String(); expect != actual {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	// The returned code is a copy.
	hc.Append(1)
	again, _ := e.Code(1)
	if again.Len() != 4 {
		t.Errorf("Code returned shared storage: %s", again)
	}

	if _, ok := e.Code(6); ok {
		t.Error("Code(6) unexpectedly found")
	}
}
