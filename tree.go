package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/chronos-tachyon/huffman/v2/minheap"
)

// node is a node of the prefix tree.  A node with no children is a leaf and
// carries a symbol; every other node has exactly two children and no symbol.
type node struct {
	symbol Symbol
	left   *node
	right  *node
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// weight is the priority of a subtree while the tree is being built.
//
// Equal frequencies are ordered by seq, so the subtree that entered the heap
// first is merged first.  Leaves are sequenced in ascending symbol order and
// every merged subtree takes the next number, which makes code assignment
// reproducible for a given distribution.
type weight struct {
	freq uint64
	seq  uint32
}

func (a weight) less(b weight) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

// buildTree builds the Huffman tree for freqs and returns its root, which is
// always an internal node.
func buildTree(freqs Frequencies) (*node, error) {
	if err := freqs.Validate(); err != nil {
		return nil, err
	}

	// Step 1: one leaf per symbol.  Nodes are distinct pointers, so they
	// can serve as the heap's values.

	h := minheap.New[weight, *node](weight.less, nil)
	var nextSeq uint32
	for _, symbol := range freqs.Symbols() {
		w := weight{freq: uint64(freqs[symbol]), seq: nextSeq}
		if err := h.Add(w, &node{symbol: symbol}); err != nil {
			return nil, err
		}
		nextSeq++
	}

	// Step 2: pop the two lightest subtrees, join them under a new
	// internal node, and push that back with the combined frequency.

	for h.Size() > 1 {
		a, err := h.ExtractMin()
		if err != nil {
			return nil, err
		}
		b, err := h.ExtractMin()
		if err != nil {
			return nil, err
		}

		joined := &node{symbol: InvalidSymbol, left: a.Value, right: b.Value}
		w := weight{freq: addSaturating(a.Key.freq, b.Key.freq), seq: nextSeq}
		if err := h.Add(w, joined); err != nil {
			return nil, err
		}
		nextSeq++
	}

	root, err := h.ExtractMin()
	if err != nil {
		return nil, fmt.Errorf("huffman: building tree: %w", err)
	}
	assert.Assertf(h.IsEmpty(), "heap still holds %d entries after building tree", h.Size())
	assert.Assertf(!root.Value.isLeaf(), "root of a %d-symbol tree is a leaf", len(freqs))
	return root.Value, nil
}

// buildCodes walks the tree rooted at root, left before right, and binds the
// path to each leaf ('0' for left, '1' for right) to the leaf's symbol.
func buildCodes(root *node, numSymbols int) map[Symbol]Code {
	codes := make(map[Symbol]Code, numSymbols)
	depthHint := log2uint32(uint32(numSymbols))

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path holds one bit per internal node on the stack, less the root.

	type stackItem struct {
		n *node
		x byte
	}

	stack := make([]stackItem, 0, depthHint)
	path := make([]byte, 0, depthHint)

	processChild := func(child *node, bit byte) {
		path = append(path, bit)
		if child.isLeaf() {
			codes[child.symbol] = Code(path)
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{n: child})
	}

	stack = append(stack, stackItem{n: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.n.left, '0')
		case 1:
			processChild(top.n.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	assert.Assertf(len(codes) == numSymbols, "derived %d codes for %d symbols", len(codes), numSymbols)
	return codes
}
