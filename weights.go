package huffman

import (
	"strconv"
)

// WeightedSymbol pairs a Symbol with its Weight, i.e. its relative frequency.
type WeightedSymbol[T comparable] struct {
	Symbol T
	Weight int
}

// Weighted is a convenience function that constructs a WeightedSymbol.
func Weighted[T comparable](symbol T, weight int) WeightedSymbol[T] {
	return WeightedSymbol[T]{Symbol: symbol, Weight: weight}
}

// WeightTable is a validated, immutable list of weighted symbols.  Every
// symbol is unique and every weight is strictly positive.  The input order is
// preserved, as it breaks ties between equal weights during tree
// construction.
type WeightTable[T comparable] struct {
	pairs []WeightedSymbol[T]
	index map[T]int
}

// NewWeightTable validates pairs and returns a WeightTable holding a copy of
// them.  It returns an InvalidInputError if pairs is empty, if any weight is
// not positive, or if any symbol appears more than once.
func NewWeightTable[T comparable](pairs []WeightedSymbol[T]) (WeightTable[T], error) {
	if len(pairs) == 0 {
		return WeightTable[T]{}, InvalidInputError{Index: -1, Reason: "empty alphabet"}
	}

	index := make(map[T]int, len(pairs))
	for i, pair := range pairs {
		if pair.Weight <= 0 {
			return WeightTable[T]{}, InvalidInputError{Index: i, Reason: "weight must be positive, got " + strconv.Itoa(pair.Weight)}
		}
		if j, found := index[pair.Symbol]; found {
			return WeightTable[T]{}, InvalidInputError{Index: i, Reason: "duplicate of symbol at pair " + strconv.Itoa(j)}
		}
		index[pair.Symbol] = i
	}

	copied := make([]WeightedSymbol[T], len(pairs))
	copy(copied, pairs)
	return WeightTable[T]{pairs: copied, index: index}, nil
}

// CountWeights tallies the occurrences of each symbol in sample.  The result
// lists symbols in order of first occurrence, so it is deterministic for a
// given sample and can be passed directly to NewWeightTable or Build.
func CountWeights[T comparable](sample []T) []WeightedSymbol[T] {
	index := make(map[T]int)
	var out []WeightedSymbol[T]
	for _, symbol := range sample {
		if i, found := index[symbol]; found {
			out[i].Weight = saturatingAdd(out[i].Weight, 1)
			continue
		}
		index[symbol] = len(out)
		out = append(out, WeightedSymbol[T]{Symbol: symbol, Weight: 1})
	}
	return out
}

// Len returns the number of symbols in the table.
func (wt WeightTable[T]) Len() int {
	return len(wt.pairs)
}

// At returns the i'th pair, in input order.
func (wt WeightTable[T]) At(i int) WeightedSymbol[T] {
	return wt.pairs[i]
}

// Symbols returns the symbols of the table, in input order.
func (wt WeightTable[T]) Symbols() []T {
	out := make([]T, len(wt.pairs))
	for i, pair := range wt.pairs {
		out[i] = pair.Symbol
	}
	return out
}

// Weight returns the weight of symbol, or false if it is not in the table.
func (wt WeightTable[T]) Weight(symbol T) (int, bool) {
	i, found := wt.index[symbol]
	if !found {
		return 0, false
	}
	return wt.pairs[i].Weight, true
}

// Total returns the sum of all weights, saturating at math.MaxInt.
func (wt WeightTable[T]) Total() int {
	var sum int
	for _, pair := range wt.pairs {
		sum = saturatingAdd(sum, pair.Weight)
	}
	return sum
}
