package huffman

import (
	"errors"
	"testing"
)

func TestBuildTree_Codes(t *testing.T) {
	freqs := Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
	root, err := buildTree(freqs)
	if err != nil {
		t.Fatalf("buildTree failed: %v", err)
	}
	codes := buildCodes(root, len(freqs))

	expect := map[Symbol]Code{
		'a': "1100",
		'b': "1101",
		'c': "100",
		'd': "101",
		'e': "111",
		'f': "0",
	}
	for symbol, hc := range expect {
		if codes[symbol] != hc {
			t.Errorf("wrong code for %q:\n\texpect: %s\n\tactual: %s", symbol, hc, codes[symbol])
		}
	}
}

func TestBuildTree_TwoSymbols(t *testing.T) {
	root, err := buildTree(Frequencies{'x': 7, 'y': 2})
	if err != nil {
		t.Fatalf("buildTree failed: %v", err)
	}
	if root.isLeaf() || !root.left.isLeaf() || !root.right.isLeaf() {
		t.Fatalf("expected one internal node with two leaves")
	}
	if root.left.symbol != 'y' || root.right.symbol != 'x' {
		t.Errorf("wrong leaves: left %q, right %q", root.left.symbol, root.right.symbol)
	}
}

func TestBuildTree_PrefixFree(t *testing.T) {
	freqs, err := CountFrequencies("the quick brown fox jumps over the lazy dog; THE QUICK BROWN FOX!")
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	root, err := buildTree(freqs)
	if err != nil {
		t.Fatalf("buildTree failed: %v", err)
	}
	codes := buildCodes(root, len(freqs))
	if len(codes) != len(freqs) {
		t.Fatalf("expected %d codes, got %d", len(freqs), len(codes))
	}

	// Kraft equality holds for every full binary tree.
	var kraft float64
	for a, ca := range codes {
		kraft += 1 / float64(uint64(1)<<ca.Size())
		for b, cb := range codes {
			if a != b && cb.HasPrefix(ca) {
				t.Errorf("code %s for %q is a prefix of code %s for %q", ca, a, cb, b)
			}
		}
	}
	if kraft != 1 {
		t.Errorf("Kraft sum is %v, expected 1", kraft)
	}
}

func TestBuildTree_OneSymbol(t *testing.T) {
	_, err := buildTree(Frequencies{'a': 10})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
