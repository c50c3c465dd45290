package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

const noChild = int32(-1)

// node is one entry in a tree's arena.  Leaves have no children; every
// internal node has exactly two.
type node[T comparable] struct {
	symbol T
	weight int
	left   int32
	right  int32
}

func (n *node[T]) isLeaf() bool {
	return n.left == noChild
}

// tree is a Huffman code tree stored as an arena of nodes.  The leaves occupy
// nodes[0:numLeaves] in weight table order; internal nodes follow in the
// order they were created, so the root is always the last node.
type tree[T comparable] struct {
	nodes     []node[T]
	numLeaves int32
	root      int32
}

// buildTree builds the optimal code tree for wt.
//
// Nodes are merged greedily: the two nodes that sort lowest by (weight, seq)
// are popped, the first becoming the left child and the second the right,
// and their parent is pushed back.  A leaf's seq is its index in wt, and each
// new internal node takes the next unused seq, so the order is total and the
// resulting tree depends only on the contents and order of wt.
func buildTree[T comparable](wt WeightTable[T]) *tree[T] {
	numLeaves := wt.Len()
	assert.Assertf(numLeaves > 0, "cannot build a tree with %d leaves", numLeaves)

	t := &tree[T]{
		nodes:     make([]node[T], 0, 2*numLeaves-1),
		numLeaves: int32(numLeaves),
	}

	h := weightHeap{list: make([]heapItem, 0, numLeaves)}
	for i := 0; i < numLeaves; i++ {
		pair := wt.At(i)
		t.nodes = append(t.nodes, node[T]{
			symbol: pair.Symbol,
			weight: pair.Weight,
			left:   noChild,
			right:  noChild,
		})
		h.list = append(h.list, heapItem{index: int32(i), weight: pair.Weight, seq: i})
	}
	h.Init()

	nextSeq := numLeaves
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		parent := int32(len(t.nodes))
		weight := saturatingAdd(a.weight, b.weight)
		t.nodes = append(t.nodes, node[T]{
			weight: weight,
			left:   a.index,
			right:  b.index,
		})
		heap.Push(&h, heapItem{index: parent, weight: weight, seq: nextSeq})
		nextSeq++
	}

	t.root = heap.Pop(&h).(heapItem).index
	assert.Assertf(int(t.root) == len(t.nodes)-1, "root %d is not the last node (%d nodes)", t.root, len(t.nodes))
	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "expected %d nodes, got %d", 2*numLeaves-1, len(t.nodes))
	return t
}

// walk visits every leaf in left-to-right order, passing the leaf's arena
// index and its path from the root.  The path is reused between calls, so
// visit must Clone it to retain it.
//
// A tree that consists of a single leaf reports that leaf with the path "0".
func (t *tree[T]) walk(visit func(leaf int32, path BitSequence)) {
	var path BitSequence

	root := &t.nodes[t.root]
	if root.isLeaf() {
		path.Append(0)
		visit(t.root, path)
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// The stack depth always equals path.Len() + 1.

	type stackItem struct {
		n int32
		x byte
	}

	stack := make([]stackItem, 0, 32)
	stack = append(stack, stackItem{n: t.root})

	processChild := func(child int32, bit uint) {
		path.Append(bit)
		if t.nodes[child].isLeaf() {
			visit(child, path)
			path = truncate(path, path.Len()-1)
			return
		}
		stack = append(stack, stackItem{n: child})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[top.n].left, 0)
		case 1:
			processChild(t.nodes[top.n].right, 1)
		case 2:
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				path = truncate(path, path.Len()-1)
			}
		}
	}
}

// cost returns the total weighted path length: the sum over all leaves of
// weight × depth.
func (t *tree[T]) cost() int {
	var sum int
	t.walk(func(leaf int32, path BitSequence) {
		sum = saturatingAdd(sum, saturatingMul(t.nodes[leaf].weight, path.Len()))
	})
	return sum
}

func truncate(bs BitSequence, size int) BitSequence {
	assert.Assertf(size >= 0 && size <= bs.size, "cannot truncate %d bits to %d", bs.size, size)
	bs.size = size
	return bs
}

// type heapItem + type weightHeap {{{

type heapItem struct {
	index  int32
	weight int
	seq    int
}

type weightHeap struct {
	list []heapItem
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *weightHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
